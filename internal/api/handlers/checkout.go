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

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout turns the current cart into a pre-filled WhatsApp conversation
// link and empties the cart.
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		cartID := r.Header.Get(CartIDHeader)
		if cartID == "" {
			response.Error(w, errors.BadRequestError("Cart id is required"))

			return
		}

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.checkoutService.Checkout(r.Context(), cartID, &req)
		if err != nil {
			logger.Error("Checkout failed", slog.String("cartId", cartID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Checkout completed",
			slog.String("cartId", cartID),
			slog.String("paymentMethod", string(req.PaymentMethod)),
			slog.Float64("total", result.Quote.Total))
		response.Success(w, http.StatusOK, result)
	}
}
