package identity

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	appErrors "github.com/lojatricolor/storefront/internal/errors"
	repository "github.com/lojatricolor/storefront/internal/repositories"
)

type State int

const (
	StateSignedOut State = iota
	StateAuthenticating
	StateSignedInNoAccess
	StateSignedInWithAccess
)

func (s State) String() string {
	switch s {
	case StateSignedOut:
		return "signed_out"
	case StateAuthenticating:
		return "authenticating"
	case StateSignedInNoAccess:
		return "signed_in_no_access"
	case StateSignedInWithAccess:
		return "signed_in_with_access"
	default:
		return "unknown"
	}
}

// Gate layers the admin access check over the identity provider. A
// provider-authenticated principal without a UserData record, or with
// access false, is signed back out so no half-authenticated session leaks
// into the rest of the application.
type Gate struct {
	provider Provider
	users    repository.UserRepository

	mu          sync.Mutex
	state       State
	principal   *Principal
	unsubscribe func()
}

func NewGate(provider Provider, users repository.UserRepository) *Gate {
	g := &Gate{
		provider: provider,
		users:    users,
		state:    StateSignedOut,
	}

	// Session observation: fires on load and on any out-of-band session
	// change; the access flag is re-resolved each time.
	g.unsubscribe = provider.Subscribe(func(principal *Principal) {
		g.resolve(context.Background(), principal)
	})

	return g
}

func (g *Gate) Close() {
	if g.unsubscribe != nil {
		g.unsubscribe()
	}
}

func (g *Gate) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

func (g *Gate) Principal() *Principal {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.principal
}

func (g *Gate) Login(ctx context.Context, email, password string) (*Principal, error) {

	g.setState(StateAuthenticating, nil)

	principal, err := g.provider.SignIn(ctx, email, password)
	if err != nil {
		g.setState(StateSignedOut, nil)

		if errors.Is(err, ErrInvalidCredentials) {
			return nil, appErrors.UnauthorizedError("Invalid email or password")
		}

		return nil, appErrors.StoreUnavailableError("Sign-in failed").WithError(err)
	}

	userData, found, err := g.users.Get(ctx, principal.UID)
	if err != nil {
		g.forceSignOut(ctx, principal, "access lookup failed")

		return nil, appErrors.StoreUnavailableError("Could not verify access").WithError(err)
	}

	if !found {
		g.forceSignOut(ctx, principal, "no user record")

		return nil, appErrors.UnauthorizedError("User is not authorized")
	}

	if !userData.Access {
		g.forceSignOut(ctx, principal, "access flag is false")

		return nil, appErrors.AccessDeniedError("Access denied")
	}

	g.setState(StateSignedInWithAccess, principal)

	return principal, nil
}

func (g *Gate) Logout(ctx context.Context) error {

	if err := g.provider.SignOut(ctx); err != nil {
		return appErrors.InternalError("Sign-out failed").WithError(err)
	}

	g.setState(StateSignedOut, nil)

	return nil
}

// CheckAccess re-resolves the access flag for a subject id from its
// UserData record. Absence means no access.
func (g *Gate) CheckAccess(ctx context.Context, uid string) (bool, error) {

	userData, found, err := g.users.Get(ctx, uid)
	if err != nil {
		return false, err
	}

	return found && userData.Access, nil
}

// resolve maps a session-observation event onto a gate state.
func (g *Gate) resolve(ctx context.Context, principal *Principal) {

	if principal == nil {
		g.setState(StateSignedOut, nil)

		return
	}

	hasAccess, err := g.CheckAccess(ctx, principal.UID)
	if err != nil {
		slog.Warn("Access re-resolution failed",
			slog.String("uid", principal.UID),
			slog.String("error", err.Error()),
		)

		g.setState(StateSignedInNoAccess, principal)

		return
	}

	if hasAccess {
		g.setState(StateSignedInWithAccess, principal)
	} else {
		g.setState(StateSignedInNoAccess, principal)
	}
}

// forceSignOut terminates the provider session after an authorization
// failure, before the failure is reported.
func (g *Gate) forceSignOut(ctx context.Context, principal *Principal, reason string) {

	slog.Warn("Terminating session of unauthorized principal",
		slog.String("uid", principal.UID),
		slog.String("reason", reason),
	)

	if err := g.provider.SignOut(ctx); err != nil {
		slog.Error("Forced sign-out failed", slog.String("error", err.Error()))
	}

	g.setState(StateSignedOut, nil)
}

func (g *Gate) setState(state State, principal *Principal) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = state
	g.principal = principal
}
