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

type ProductHandler struct {
	productService *service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		category := r.URL.Query().Get("category")

		products, err := h.productService.List(r.Context(), category)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Listing products failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))

			return
		}

		product, err := h.productService.Get(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.Create(r.Context(), &req)
		if err != nil {
			logger.Error("Product creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.String("productId", product.ID))
		response.Success(w, http.StatusCreated, product)
	}
}

// SaveProduct is the full-overwrite upsert; partial edits go through
// UpdateProduct.
func (h *ProductHandler) SaveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))

			return
		}

		var product models.Product
		if !utils.ParseAndValidate(r, w, &product, h.validator) {
			return
		}

		product.ID = id

		if err := h.productService.Save(r.Context(), &product); err != nil {
			logger.Error("Product save failed", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product saved", slog.String("productId", id))
		response.Success(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))

			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.productService.Update(r.Context(), id, &req); err != nil {
			logger.Error("Product update failed", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product updated", slog.String("productId", id))
		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Product id is required"))

			return
		}

		if err := h.productService.Delete(r.Context(), id); err != nil {
			logger.Error("Product delete failed", slog.String("productId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product deleted", slog.String("productId", id))
		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}
