package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lojatricolor/storefront/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const accountsPath = "auth/accounts"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
)

// Principal is an authenticated identity-provider subject.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Provider is the external identity provider: authenticate, terminate, and
// observe the current session. Subscribers are notified on every session
// change, including once on subscription with the session as of that
// moment.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Principal, error)
	SignOut(ctx context.Context) error
	// Current returns the signed-in principal, or nil when signed out.
	Current(ctx context.Context) (*Principal, error)
	CreateAccount(ctx context.Context, email, password string) (string, error)
	Subscribe(fn func(*Principal)) (unsubscribe func())
}

type account struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// storeProvider keeps bcrypt credential records in the remote store and a
// single in-process session.
type storeProvider struct {
	kv store.Store

	mu          sync.Mutex
	current     *Principal
	subscribers map[int]func(*Principal)
	nextSubID   int
}

func NewStoreProvider(kv store.Store) Provider {
	return &storeProvider{
		kv:          kv,
		subscribers: make(map[int]func(*Principal)),
	}
}

func accountPath(email string) string {
	return accountsPath + "/" + strings.ToLower(email)
}

func (p *storeProvider) SignIn(ctx context.Context, email, password string) (*Principal, error) {

	acc := &account{}

	found, err := p.kv.Get(ctx, accountPath(email), acc)
	if err != nil {
		return nil, fmt.Errorf("reading account for %s: %w", email, err)
	}

	if !found || bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	principal := &Principal{UID: acc.UID, Email: acc.Email}

	p.setSession(principal)

	return principal, nil
}

func (p *storeProvider) SignOut(_ context.Context) error {
	p.setSession(nil)

	return nil
}

func (p *storeProvider) Current(_ context.Context) (*Principal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.current, nil
}

func (p *storeProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {

	exists, err := p.kv.Exists(ctx, accountPath(email))
	if err != nil {
		return "", fmt.Errorf("checking account for %s: %w", email, err)
	}

	if exists {
		return "", ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	acc := &account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := p.kv.Set(ctx, accountPath(email), acc); err != nil {
		return "", fmt.Errorf("creating account for %s: %w", email, err)
	}

	return acc.UID, nil
}

func (p *storeProvider) Subscribe(fn func(*Principal)) func() {
	p.mu.Lock()
	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn
	current := p.current
	p.mu.Unlock()

	// Fires once on load, like the provider's session observation.
	fn(current)

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		delete(p.subscribers, id)
	}
}

func (p *storeProvider) setSession(principal *Principal) {
	p.mu.Lock()
	p.current = principal

	fns := make([]func(*Principal), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	// Notify outside the lock so a subscriber may call back in.
	for _, fn := range fns {
		fn(principal)
	}
}
