package repository

import (
	"errors"

	"github.com/lojatricolor/storefront/internal/store"
)

// ErrNotFound marks reads that required an existing record.
var ErrNotFound = errors.New("record not found")

// Repositories bundles every store-backed repository behind one
// constructor, the way main wires them.
type Repositories struct {
	kv store.Store

	Product  ProductRepository
	Catalog  CatalogRepository
	Cart     CartRepository
	Settings SettingsRepository
	User     UserRepository
}

func New(kv store.Store) *Repositories {
	return &Repositories{
		kv:       kv,
		Product:  NewProductRepo(kv),
		Catalog:  NewCatalogRepo(kv),
		Cart:     NewCartRepo(kv),
		Settings: NewSettingsRepo(kv),
		User:     NewUserRepo(kv),
	}
}

func (r *Repositories) Close() error {
	return r.kv.Close()
}
