package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lojatricolor/storefront/internal/api/middleware"
	"github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	service "github.com/lojatricolor/storefront/internal/services"
	"github.com/lojatricolor/storefront/internal/utils"
	"github.com/lojatricolor/storefront/internal/utils/response"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) ListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		users, err := h.userService.List(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Listing users failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, users)
	}
}

func (h *UserHandler) CreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateUserRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		user, err := h.userService.Create(r.Context(), &req)
		if err != nil {
			logger.Error("User creation failed", slog.String("email", req.Email), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("User created", slog.String("uid", user.UID), slog.String("email", user.Email))
		response.Success(w, http.StatusCreated, user)
	}
}

func (h *UserHandler) UpdateAccess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		uid := r.PathValue("uid")
		if uid == "" {
			response.Error(w, errors.BadRequestError("User id is required"))

			return
		}

		var req models.UpdateAccessRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError("Invalid request body"))

			return
		}

		if err := h.userService.UpdateAccess(r.Context(), uid, req.Access); err != nil {
			logger.Error("Updating user access failed", slog.String("uid", uid), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("User access updated", slog.String("uid", uid), slog.Bool("access", req.Access))
		response.Success(w, http.StatusOK, map[string]any{"uid": uid, "access": req.Access})
	}
}

// DeleteUser removes the authorization record. The underlying account stays
// registered with the identity provider; without a record the gate refuses
// it on the next sign-in.
func (h *UserHandler) DeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		uid := r.PathValue("uid")
		if uid == "" {
			response.Error(w, errors.BadRequestError("User id is required"))

			return
		}

		if err := h.userService.Delete(r.Context(), uid); err != nil {
			logger.Error("User delete failed", slog.String("uid", uid), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("User deleted", slog.String("uid", uid))
		response.Success(w, http.StatusOK, map[string]string{"uid": uid})
	}
}
