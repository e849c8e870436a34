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

func newUserFixture(t *testing.T) (*handlers.UserHandler, *testutils.MemStore) {
	t.Helper()

	kv := testutils.NewMemStore()
	users := repository.NewUserRepo(kv)
	provider := identity.NewStoreProvider(kv)
	gate := identity.NewGate(provider, users)
	t.Cleanup(gate.Close)

	svc := service.NewUserService(users, provider, gate, []byte("test-signing-key"))

	return handlers.NewUserHandler(svc), kv
}

func TestCreateUser(t *testing.T) {
	userHandler, kv := newUserFixture(t)

	t.Run("Success - Account And Record Created", func(t *testing.T) {
		// Arrange
		body, _ := json.Marshal(models.CreateUserRequest{
			Email:    "novo@example.com",
			Password: "segredo123",
			Access:   true,
		})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/admin/users", body)

		// Act
		userHandler.CreateUser().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var created models.UserData
		decodeData(t, rr.Body.Bytes(), &created)
		assert.NotEmpty(t, created.UID)
		assert.True(t, created.Access)

		_, ok := kv.Raw("users/" + created.UID)
		assert.True(t, ok)
		_, ok = kv.Raw("auth/accounts/novo@example.com")
		assert.True(t, ok)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		body, _ := json.Marshal(models.CreateUserRequest{
			Email:    "novo@example.com",
			Password: "outra-senha",
		})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/admin/users", body)

		userHandler.CreateUser().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Short Password", func(t *testing.T) {
		body, _ := json.Marshal(models.CreateUserRequest{
			Email:    "curto@example.com",
			Password: "abc",
		})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPost, "/api/v1/admin/users", body)

		userHandler.CreateUser().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdateAccess(t *testing.T) {
	userHandler, kv := newUserFixture(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "users/u1", models.UserData{UID: "u1", Email: "u1@example.com", Access: false}))

	t.Run("Success - Access Granted", func(t *testing.T) {
		body, _ := json.Marshal(models.UpdateAccessRequest{Access: true})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/admin/users/u1/access", body)
		req.SetPathValue("uid", "u1")

		userHandler.UpdateAccess().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var stored models.UserData
		raw, ok := kv.Raw("users/u1")
		require.True(t, ok)
		require.NoError(t, json.Unmarshal(raw, &stored))
		assert.True(t, stored.Access)
	})

	t.Run("Failure - Unknown User", func(t *testing.T) {
		body, _ := json.Marshal(models.UpdateAccessRequest{Access: true})

		rr := httptest.NewRecorder()
		req := newTestRequest(http.MethodPatch, "/api/v1/admin/users/ghost/access", body)
		req.SetPathValue("uid", "ghost")

		userHandler.UpdateAccess().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	userHandler, kv := newUserFixture(t)
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "users/u1", models.UserData{UID: "u1", Email: "u1@example.com", Access: true}))
	require.NoError(t, kv.Set(ctx, "auth/accounts/u1@example.com", map[string]string{"uid": "u1"}))

	rr := httptest.NewRecorder()
	req := newTestRequest(http.MethodDelete, "/api/v1/admin/users/u1", nil)
	req.SetPathValue("uid", "u1")

	userHandler.DeleteUser().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// record gone, provider account untouched
	_, ok := kv.Raw("users/u1")
	assert.False(t, ok)
	_, ok = kv.Raw("auth/accounts/u1@example.com")
	assert.True(t, ok)
}
