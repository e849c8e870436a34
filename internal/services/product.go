package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService struct {
	repo      repository.ProductRepository
	sanitizer *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// List returns the full catalog of products, optionally narrowed to one
// category.
func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load products").WithError(err)
	}

	if category == "" {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))

	for _, product := range products {
		if product.Category == category {
			filtered = append(filtered, product)
		}
	}

	return filtered, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {

	product, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load product").WithError(err)
	}

	if !found {
		return nil, errors.NotFoundError("Product not found")
	}

	return product, nil
}

func (s *ProductService) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	product := &models.Product{
		ID:          id,
		Name:        s.sanitizer.Sanitize(req.Name),
		Description: s.sanitizer.Sanitize(req.Description),
		Price:       req.Price,
		Image:       req.Image,
		Category:    s.sanitizer.Sanitize(req.Category),
		InStock:     inStock,
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, errors.WriteFailedError("Failed to save product").WithError(err)
	}

	return product, nil
}

// Save upserts the full record, admin edit semantics: whatever is sent
// replaces the stored product wholesale.
func (s *ProductService) Save(ctx context.Context, product *models.Product) error {

	product.Name = s.sanitizer.Sanitize(product.Name)
	product.Description = s.sanitizer.Sanitize(product.Description)
	product.Category = s.sanitizer.Sanitize(product.Category)

	if err := s.repo.Save(ctx, product); err != nil {
		return errors.WriteFailedError("Failed to save product").WithError(err)
	}

	return nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch *models.UpdateProductRequest) error {

	if patch.Name != nil {
		clean := s.sanitizer.Sanitize(*patch.Name)
		patch.Name = &clean
	}

	if patch.Description != nil {
		clean := s.sanitizer.Sanitize(*patch.Description)
		patch.Description = &clean
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return errors.WriteFailedError("Failed to update product").WithError(err)
	}

	return nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.WriteFailedError("Failed to delete product").WithError(err)
	}

	return nil
}
