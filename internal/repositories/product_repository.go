package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lojatricolor/storefront/internal/models"
	"github.com/lojatricolor/storefront/internal/store"
)

const productsPath = "products"

type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, bool, error)
	Save(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, patch *models.UpdateProductRequest) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	kv store.Store
}

func NewProductRepo(kv store.Store) ProductRepository {
	return &productRepository{kv: kv}
}

func (r *productRepository) GetAll(ctx context.Context) ([]models.Product, error) {

	docs, err := r.kv.List(ctx, productsPath)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}

	products := make([]models.Product, 0, len(docs))

	for id, raw := range docs {

		var product models.Product

		if err := json.Unmarshal(raw, &product); err != nil {
			return nil, fmt.Errorf("decoding product %s: %w", id, err)
		}

		// The path's final segment is the identity; the stored value does
		// not need to repeat it.
		product.ID = id
		products = append(products, product)
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, bool, error) {

	product := &models.Product{}

	found, err := r.kv.Get(ctx, productsPath+"/"+id, product)
	if err != nil {
		return nil, false, fmt.Errorf("reading product %s: %w", id, err)
	}

	if !found {
		return nil, false, nil
	}

	product.ID = id

	return product, true, nil
}

// Save upserts the full record under the product's id. Partial updates go
// through Update.
func (r *productRepository) Save(ctx context.Context, product *models.Product) error {

	if err := r.kv.Set(ctx, productsPath+"/"+product.ID, product); err != nil {
		return fmt.Errorf("saving product %s: %w", product.ID, err)
	}

	return nil
}

// Update merge-patches the stored record. Updating an id that does not
// exist silently creates a partial record; existence is intentionally not
// checked here.
func (r *productRepository) Update(ctx context.Context, id string, patch *models.UpdateProductRequest) error {

	product := &models.Product{}

	if _, err := r.kv.Get(ctx, productsPath+"/"+id, product); err != nil {
		return fmt.Errorf("reading product %s for update: %w", id, err)
	}

	product.ID = id
	patch.ApplyTo(product)

	if err := r.kv.Set(ctx, productsPath+"/"+id, product); err != nil {
		return fmt.Errorf("updating product %s: %w", id, err)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {

	if err := r.kv.Delete(ctx, productsPath+"/"+id); err != nil {
		return fmt.Errorf("deleting product %s: %w", id, err)
	}

	return nil
}
