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

type CatalogHandler struct {
	catalogService *service.CatalogService
	validator      *validator.Validate
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, validator: validator.New()}
}

func (h *CatalogHandler) ListCatalogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		catalogs, err := h.catalogService.List(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Listing catalogs failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, catalogs)
	}
}

// GetCatalog returns the catalog with its product references resolved into
// full product records.
func (h *CatalogHandler) GetCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Catalog id is required"))

			return
		}

		view, err := h.catalogService.Resolve(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, view)
	}
}

func (h *CatalogHandler) CreateCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCatalogRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		catalog, err := h.catalogService.Create(r.Context(), &req)
		if err != nil {
			logger.Error("Catalog creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog created", slog.String("catalogId", catalog.ID))
		response.Success(w, http.StatusCreated, catalog)
	}
}

func (h *CatalogHandler) UpdateCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Catalog id is required"))

			return
		}

		var req models.UpdateCatalogRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		catalog, err := h.catalogService.Update(r.Context(), id, &req)
		if err != nil {
			logger.Error("Catalog update failed", slog.String("catalogId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog updated", slog.String("catalogId", id))
		response.Success(w, http.StatusOK, catalog)
	}
}

func (h *CatalogHandler) DeleteCatalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Catalog id is required"))

			return
		}

		if err := h.catalogService.Delete(r.Context(), id); err != nil {
			logger.Error("Catalog delete failed", slog.String("catalogId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Catalog deleted", slog.String("catalogId", id))
		response.Success(w, http.StatusOK, map[string]string{"id": id})
	}
}

func (h *CatalogHandler) AddProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		catalogID := r.PathValue("id")
		productID := r.PathValue("productId")
		if catalogID == "" || productID == "" {
			response.Error(w, errors.BadRequestError("Catalog id and product id are required"))

			return
		}

		if err := h.catalogService.AddProduct(r.Context(), catalogID, productID); err != nil {
			logger.Error("Adding product to catalog failed",
				slog.String("catalogId", catalogID),
				slog.String("productId", productID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"catalogId": catalogID, "productId": productID})
	}
}

func (h *CatalogHandler) RemoveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		catalogID := r.PathValue("id")
		productID := r.PathValue("productId")
		if catalogID == "" || productID == "" {
			response.Error(w, errors.BadRequestError("Catalog id and product id are required"))

			return
		}

		if err := h.catalogService.RemoveProduct(r.Context(), catalogID, productID); err != nil {
			logger.Error("Removing product from catalog failed",
				slog.String("catalogId", catalogID),
				slog.String("productId", productID),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]string{"catalogId": catalogID, "productId": productID})
	}
}
