package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appErrors "github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/identity"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	service "github.com/lojatricolor/storefront/internal/services"
	"github.com/lojatricolor/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTKey = []byte("test-signing-key")

func newUserFixture(t *testing.T) (*service.UserService, repository.UserRepository, identity.Provider) {
	t.Helper()

	kv := testutils.NewMemStore()
	users := repository.NewUserRepo(kv)
	provider := identity.NewStoreProvider(kv)
	gate := identity.NewGate(provider, users)
	t.Cleanup(gate.Close)

	return service.NewUserService(users, provider, gate, testJWTKey), users, provider
}

func TestUserLogin(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Issues Verifiable Token", func(t *testing.T) {
		svc, users, provider := newUserFixture(t)

		uid, err := provider.CreateAccount(ctx, "admin@loja.com", "segredo123")
		require.NoError(t, err)
		require.NoError(t, users.Save(ctx, &models.UserData{UID: uid, Email: "admin@loja.com", Access: true, CreatedAt: time.Now().UTC()}))

		resp, err := svc.Login(ctx, &models.LoginRequest{Email: "admin@loja.com", Password: "segredo123"})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Positive(t, resp.ExpiresIn)

		claims := &models.Claims{}
		token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (any, error) {
			return testJWTKey, nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, uid, claims.UID)
		assert.Equal(t, "admin@loja.com", claims.Email)
	})

	t.Run("Failure - No User Record Means No Token", func(t *testing.T) {
		svc, _, provider := newUserFixture(t)

		_, err := provider.CreateAccount(ctx, "admin@loja.com", "segredo123")
		require.NoError(t, err)

		_, err = svc.Login(ctx, &models.LoginRequest{Email: "admin@loja.com", Password: "segredo123"})

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnauthorized, appErr.Code)
	})
}

func TestUserCreate(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Provider Account Then User Record", func(t *testing.T) {
		svc, users, _ := newUserFixture(t)

		user, err := svc.Create(ctx, &models.CreateUserRequest{Email: "novo@loja.com", Password: "segredo123", Access: true})

		require.NoError(t, err)
		assert.NotEmpty(t, user.UID)
		assert.True(t, user.Access)

		stored, found, err := users.Get(ctx, user.UID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "novo@loja.com", stored.Email)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		svc, _, _ := newUserFixture(t)

		_, err := svc.Create(ctx, &models.CreateUserRequest{Email: "novo@loja.com", Password: "segredo123"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, &models.CreateUserRequest{Email: "novo@loja.com", Password: "outra"})

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
	})
}

func TestUserUpdateAccess(t *testing.T) {
	ctx := t.Context()

	svc, users, _ := newUserFixture(t)

	user, err := svc.Create(ctx, &models.CreateUserRequest{Email: "novo@loja.com", Password: "segredo123", Access: true})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAccess(ctx, user.UID, false))

	stored, _, err := users.Get(ctx, user.UID)
	require.NoError(t, err)
	assert.False(t, stored.Access)

	err = svc.UpdateAccess(ctx, "missing", true)
	require.Error(t, err)
	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
}

func TestUserDelete(t *testing.T) {
	ctx := t.Context()

	svc, users, provider := newUserFixture(t)

	user, err := svc.Create(ctx, &models.CreateUserRequest{Email: "novo@loja.com", Password: "segredo123", Access: true})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.UID))

	_, found, err := users.Get(ctx, user.UID)
	require.NoError(t, err)
	assert.False(t, found)

	// The provider account remains, but without a record the gate fails.
	principal, err := provider.SignIn(ctx, "novo@loja.com", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, user.UID, principal.UID)
}
