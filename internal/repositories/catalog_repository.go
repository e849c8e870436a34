package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/lojatricolor/storefront/internal/models"
	"github.com/lojatricolor/storefront/internal/store"
)

const catalogsPath = "catalogs"

type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.Catalog, error)
	GetByID(ctx context.Context, id string) (*models.Catalog, bool, error)
	Save(ctx context.Context, catalog *models.Catalog) error
	Delete(ctx context.Context, id string) error
	AddProduct(ctx context.Context, catalogID, productID string) error
	RemoveProduct(ctx context.Context, catalogID, productID string) error
	UpdateProducts(ctx context.Context, catalogID string, productIDs []string) error
}

type catalogRepository struct {
	kv store.Store
}

func NewCatalogRepo(kv store.Store) CatalogRepository {
	return &catalogRepository{kv: kv}
}

func (r *catalogRepository) GetAll(ctx context.Context) ([]models.Catalog, error) {

	docs, err := r.kv.List(ctx, catalogsPath)
	if err != nil {
		return nil, fmt.Errorf("listing catalogs: %w", err)
	}

	catalogs := make([]models.Catalog, 0, len(docs))

	for id, raw := range docs {

		var catalog models.Catalog

		if err := json.Unmarshal(raw, &catalog); err != nil {
			return nil, fmt.Errorf("decoding catalog %s: %w", id, err)
		}

		catalog.ID = id
		catalogs = append(catalogs, catalog)
	}

	sort.Slice(catalogs, func(i, j int) bool { return catalogs[i].ID < catalogs[j].ID })

	return catalogs, nil
}

func (r *catalogRepository) GetByID(ctx context.Context, id string) (*models.Catalog, bool, error) {

	catalog := &models.Catalog{}

	found, err := r.kv.Get(ctx, catalogsPath+"/"+id, catalog)
	if err != nil {
		return nil, false, fmt.Errorf("reading catalog %s: %w", id, err)
	}

	if !found {
		return nil, false, nil
	}

	catalog.ID = id

	return catalog, true, nil
}

// Save upserts the catalog, stamping UpdatedAt. CreatedAt is immutable: on
// an existing record the stored value always wins, whatever the caller
// passed in.
func (r *catalogRepository) Save(ctx context.Context, catalog *models.Catalog) error {

	existing := &models.Catalog{}

	found, err := r.kv.Get(ctx, catalogsPath+"/"+catalog.ID, existing)
	if err != nil {
		return fmt.Errorf("reading catalog %s before save: %w", catalog.ID, err)
	}

	now := time.Now().UTC()

	if found {
		catalog.CreatedAt = existing.CreatedAt
	} else if catalog.CreatedAt.IsZero() {
		catalog.CreatedAt = now
	}

	catalog.UpdatedAt = now

	if err := r.kv.Set(ctx, catalogsPath+"/"+catalog.ID, catalog); err != nil {
		return fmt.Errorf("saving catalog %s: %w", catalog.ID, err)
	}

	return nil
}

func (r *catalogRepository) Delete(ctx context.Context, id string) error {

	if err := r.kv.Delete(ctx, catalogsPath+"/"+id); err != nil {
		return fmt.Errorf("deleting catalog %s: %w", id, err)
	}

	return nil
}

// AddProduct appends productID to the catalog's references. Ids already
// present are left alone, so membership stays set-like through this entry
// point.
func (r *catalogRepository) AddProduct(ctx context.Context, catalogID, productID string) error {

	catalog, found, err := r.GetByID(ctx, catalogID)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("catalog %s: %w", catalogID, ErrNotFound)
	}

	if slices.Contains(catalog.ProductIDs, productID) {
		return nil
	}

	catalog.ProductIDs = append(catalog.ProductIDs, productID)

	return r.Save(ctx, catalog)
}

func (r *catalogRepository) RemoveProduct(ctx context.Context, catalogID, productID string) error {

	catalog, found, err := r.GetByID(ctx, catalogID)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("catalog %s: %w", catalogID, ErrNotFound)
	}

	catalog.ProductIDs = slices.DeleteFunc(catalog.ProductIDs, func(id string) bool {
		return id == productID
	})

	return r.Save(ctx, catalog)
}

// UpdateProducts replaces the reference list wholesale.
func (r *catalogRepository) UpdateProducts(ctx context.Context, catalogID string, productIDs []string) error {

	catalog, found, err := r.GetByID(ctx, catalogID)
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("catalog %s: %w", catalogID, ErrNotFound)
	}

	catalog.ProductIDs = productIDs

	return r.Save(ctx, catalog)
}
