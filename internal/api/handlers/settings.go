package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lojatricolor/storefront/internal/api/middleware"
	"github.com/lojatricolor/storefront/internal/models"
	service "github.com/lojatricolor/storefront/internal/services"
	"github.com/lojatricolor/storefront/internal/utils"
	"github.com/lojatricolor/storefront/internal/utils/response"
)

type SettingsHandler struct {
	settingsService *service.SettingsService
	validator       *validator.Validate
}

func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, validator: validator.New()}
}

// GetWhatsAppNumber is the public endpoint the storefront uses to build
// contact links. It never fails; a broken store falls back to the default
// number.
func (h *SettingsHandler) GetWhatsAppNumber() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		number := h.settingsService.WhatsAppNumber(r.Context())

		response.Success(w, http.StatusOK, map[string]string{"whatsappNumber": number})
	}
}

func (h *SettingsHandler) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		settings, err := h.settingsService.Get(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Loading settings failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, settings)
	}
}

func (h *SettingsHandler) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateSettingsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		settings, err := h.settingsService.Update(r.Context(), &req)
		if err != nil {
			logger.Error("Updating settings failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Settings updated", slog.String("whatsappNumber", settings.WhatsAppNumber))
		response.Success(w, http.StatusOK, settings)
	}
}
