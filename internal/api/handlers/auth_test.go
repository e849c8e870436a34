package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lojatricolor/storefront/internal/api/handlers"
	"github.com/lojatricolor/storefront/internal/identity"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	service "github.com/lojatricolor/storefront/internal/services"
	"github.com/lojatricolor/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*handlers.AuthHandler, *service.UserService) {
	t.Helper()

	kv := testutils.NewMemStore()
	users := repository.NewUserRepo(kv)
	provider := identity.NewStoreProvider(kv)
	gate := identity.NewGate(provider, users)
	t.Cleanup(gate.Close)

	svc := service.NewUserService(users, provider, gate, []byte("test-signing-key"))

	return handlers.NewAuthHandler(svc), svc
}

func TestLogin(t *testing.T) {
	authHandler, userService := newAuthFixture(t)
	ctx := context.Background()

	_, err := userService.Create(ctx, &models.CreateUserRequest{
		Email:    "admin@example.com",
		Password: "segredo123",
		Access:   true,
	})
	require.NoError(t, err)

	t.Run("Success - Token Issued", func(t *testing.T) {
		// Arrange
		body, _ := json.Marshal(models.LoginRequest{Email: "admin@example.com", Password: "segredo123"})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/auth/login", body)

		// Act
		authHandler.Login().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var result models.LoginResponse
		decodeData(t, rr.Body.Bytes(), &result)
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Token)
		assert.Positive(t, result.ExpiresIn)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Email: "admin@example.com", Password: "errada"})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/auth/login", body)

		authHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Failure - Access Revoked", func(t *testing.T) {
		revoked, err := userService.Create(ctx, &models.CreateUserRequest{
			Email:    "viewer@example.com",
			Password: "segredo123",
			Access:   false,
		})
		require.NoError(t, err)
		require.False(t, revoked.Access)

		body, _ := json.Marshal(models.LoginRequest{Email: "viewer@example.com", Password: "segredo123"})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/auth/login", body)

		authHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Failure - Malformed Email", func(t *testing.T) {
		body, _ := json.Marshal(models.LoginRequest{Email: "not-an-email", Password: "segredo123"})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/auth/login", body)

		authHandler.Login().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogout(t *testing.T) {
	authHandler, _ := newAuthFixture(t)

	rr := httptest.NewRecorder()
	req := newTestRequest(http.MethodPost, "/api/v1/auth/logout", nil)

	authHandler.Logout().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
