package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lojatricolor/storefront/internal/api/middleware"
	"github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	service "github.com/lojatricolor/storefront/internal/services"
	"github.com/lojatricolor/storefront/internal/utils"
	"github.com/lojatricolor/storefront/internal/utils/response"
)

// CartIDHeader identifies the anonymous cart. Clients persist the value the
// server hands back and replay it on every cart request.
const CartIDHeader = "X-Cart-ID"

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// cartID reads the cart identifier from the request, minting a fresh one when
// the client has none yet. The effective id is always echoed back so the
// client can persist it.
func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) string {

	id := r.Header.Get(CartIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	w.Header().Set(CartIDHeader, id)

	return id
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		cartID := h.cartID(w, r)

		view, err := h.cartService.Get(r.Context(), cartID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Loading cart failed", slog.String("cartId", cartID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		cartID := h.cartID(w, r)

		var req models.AddCartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.AddItem(r.Context(), cartID, req.ProductID)
		if err != nil {
			logger.Error("Adding cart item failed",
				slog.String("cartId", cartID),
				slog.String("productId", req.ProductID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		cartID := h.cartID(w, r)

		productID := r.PathValue("productId")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))

			return
		}

		var req models.UpdateCartQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		view, err := h.cartService.UpdateQuantity(r.Context(), cartID, productID, req.Quantity)
		if err != nil {
			logger.Error("Updating cart quantity failed",
				slog.String("cartId", cartID),
				slog.String("productId", productID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		cartID := h.cartID(w, r)

		productID := r.PathValue("productId")
		if productID == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))

			return
		}

		view, err := h.cartService.RemoveItem(r.Context(), cartID, productID)
		if err != nil {
			logger.Error("Removing cart item failed",
				slog.String("cartId", cartID),
				slog.String("productId", productID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		cartID := h.cartID(w, r)

		if err := h.cartService.Clear(r.Context(), cartID); err != nil {
			logger.Error("Clearing cart failed", slog.String("cartId", cartID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"cartId": cartID})
	}
}
