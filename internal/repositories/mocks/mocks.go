package mocks

import (
	"context"

	"github.com/lojatricolor/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, bool, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*models.Product), args.Bool(1), args.Error(2)
}

func (m *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, id string, patch *models.UpdateProductRequest) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type CatalogRepository struct {
	mock.Mock
}

func (m *CatalogRepository) GetAll(ctx context.Context) ([]models.Catalog, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Catalog), args.Error(1)
}

func (m *CatalogRepository) GetByID(ctx context.Context, id string) (*models.Catalog, bool, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*models.Catalog), args.Bool(1), args.Error(2)
}

func (m *CatalogRepository) Save(ctx context.Context, catalog *models.Catalog) error {
	return m.Called(ctx, catalog).Error(0)
}

func (m *CatalogRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *CatalogRepository) AddProduct(ctx context.Context, catalogID, productID string) error {
	return m.Called(ctx, catalogID, productID).Error(0)
}

func (m *CatalogRepository) RemoveProduct(ctx context.Context, catalogID, productID string) error {
	return m.Called(ctx, catalogID, productID).Error(0)
}

func (m *CatalogRepository) UpdateProducts(ctx context.Context, catalogID string, productIDs []string) error {
	return m.Called(ctx, catalogID, productIDs).Error(0)
}

type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) Get(ctx context.Context, cartID string) ([]models.CartItem, error) {
	args := m.Called(ctx, cartID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *CartRepository) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	return m.Called(ctx, cartID, items).Error(0)
}

func (m *CartRepository) Clear(ctx context.Context, cartID string) error {
	return m.Called(ctx, cartID).Error(0)
}

type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *SettingsRepository) Update(ctx context.Context, patch *models.UpdateSettingsRequest) (*models.Settings, error) {
	args := m.Called(ctx, patch)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Settings), args.Error(1)
}

func (m *SettingsRepository) WhatsAppNumber(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetAll(ctx context.Context) ([]models.UserData, error) {
	args := m.Called(ctx)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.UserData), args.Error(1)
}

func (m *UserRepository) Get(ctx context.Context, uid string) (*models.UserData, bool, error) {
	args := m.Called(ctx, uid)

	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}

	return args.Get(0).(*models.UserData), args.Bool(1), args.Error(2)
}

func (m *UserRepository) Save(ctx context.Context, user *models.UserData) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) UpdateAccess(ctx context.Context, uid string, access bool) error {
	return m.Called(ctx, uid, access).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, uid string) error {
	return m.Called(ctx, uid).Error(0)
}
