package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	appErrors "github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService struct {
	repo      repository.CatalogRepository
	products  repository.ProductRepository
	sanitizer *bluemonday.Policy
}

func NewCatalogService(repo repository.CatalogRepository, products repository.ProductRepository) *CatalogService {
	return &CatalogService{
		repo:      repo,
		products:  products,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Catalog, error) {

	catalogs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, appErrors.StoreUnavailableError("Failed to load catalogs").WithError(err)
	}

	return catalogs, nil
}

// Resolve returns the catalog with its product references materialized.
// References to deleted products are dropped, never surfaced as errors.
func (s *CatalogService) Resolve(ctx context.Context, id string) (*models.CatalogView, error) {

	catalog, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.StoreUnavailableError("Failed to load catalog").WithError(err)
	}

	if !found {
		return nil, appErrors.NotFoundError("Catalog not found")
	}

	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, appErrors.StoreUnavailableError("Failed to load catalog products").WithError(err)
	}

	byID := make(map[string]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	resolved := make([]models.Product, 0, len(catalog.ProductIDs))

	for _, productID := range catalog.ProductIDs {
		if product, ok := byID[productID]; ok {
			resolved = append(resolved, product)
		}
	}

	return &models.CatalogView{Catalog: *catalog, Products: resolved}, nil
}

func (s *CatalogService) Create(ctx context.Context, req *models.CreateCatalogRequest) (*models.Catalog, error) {

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	catalog := &models.Catalog{
		ID:          id,
		Name:        s.sanitizer.Sanitize(req.Name),
		Description: s.sanitizer.Sanitize(req.Description),
		ProductIDs:  req.ProductIDs,
	}

	if catalog.ProductIDs == nil {
		catalog.ProductIDs = []string{}
	}

	if err := s.repo.Save(ctx, catalog); err != nil {
		return nil, appErrors.WriteFailedError("Failed to save catalog").WithError(err)
	}

	return catalog, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, patch *models.UpdateCatalogRequest) (*models.Catalog, error) {

	catalog, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.StoreUnavailableError("Failed to load catalog").WithError(err)
	}

	if !found {
		return nil, appErrors.NotFoundError("Catalog not found")
	}

	patch.ApplyTo(catalog)
	catalog.Name = s.sanitizer.Sanitize(catalog.Name)
	catalog.Description = s.sanitizer.Sanitize(catalog.Description)

	if err := s.repo.Save(ctx, catalog); err != nil {
		return nil, appErrors.WriteFailedError("Failed to update catalog").WithError(err)
	}

	return catalog, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.WriteFailedError("Failed to delete catalog").WithError(err)
	}

	return nil
}

func (s *CatalogService) AddProduct(ctx context.Context, catalogID, productID string) error {

	if err := s.repo.AddProduct(ctx, catalogID, productID); err != nil {

		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Catalog not found")
		}

		return appErrors.WriteFailedError("Failed to add product to catalog").WithError(err)
	}

	return nil
}

func (s *CatalogService) RemoveProduct(ctx context.Context, catalogID, productID string) error {

	if err := s.repo.RemoveProduct(ctx, catalogID, productID); err != nil {

		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Catalog not found")
		}

		return appErrors.WriteFailedError("Failed to remove product from catalog").WithError(err)
	}

	return nil
}
