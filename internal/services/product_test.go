package service_test

import (
	"testing"

	appErrors "github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	"github.com/lojatricolor/storefront/internal/repositories/mocks"
	service "github.com/lojatricolor/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductList(t *testing.T) {
	ctx := t.Context()

	catalog := []models.Product{
		{ID: "p1", Name: "Camisa Titular", Category: "camisas"},
		{ID: "p2", Name: "Caneca", Category: "acessorios"},
		{ID: "p3", Name: "Camisa Reserva", Category: "camisas"},
	}

	t.Run("Success - All Products", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo)

		mockRepo.On("GetAll", mock.Anything).Return(catalog, nil).Once()

		products, err := svc.List(ctx, "")

		require.NoError(t, err)
		assert.Len(t, products, 3)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Category Filter", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo)

		mockRepo.On("GetAll", mock.Anything).Return(catalog, nil).Once()

		products, err := svc.List(ctx, "camisas")

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, "p3", products[1].ID)
	})

	t.Run("Failure - Read Failure Maps To StoreUnavailable", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo)

		mockRepo.On("GetAll", mock.Anything).Return(nil, assert.AnError).Once()

		_, err := svc.List(ctx, "")

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeStoreUnavailable, appErr.Code)
	})
}

func TestProductCreate(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Generates Id And Defaults InStock", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo)

		mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.ID != "" && p.InStock
		})).Return(nil).Once()

		product, err := svc.Create(ctx, &models.CreateProductRequest{
			Name:     "Camisa Titular",
			Price:    299.90,
			Category: "camisas",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, product.ID)
		assert.True(t, product.InStock)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Markup In Admin Input Is Stripped", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo)

		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil).Once()

		product, err := svc.Create(ctx, &models.CreateProductRequest{
			Name:        "Camisa <script>alert(1)</script>Titular",
			Description: "<b>Oficial</b> 24/25",
			Price:       299.90,
			Category:    "camisas",
		})

		require.NoError(t, err)
		assert.Equal(t, "Camisa Titular", product.Name)
		assert.Equal(t, "Oficial 24/25", product.Description)
	})

	t.Run("Failure - Write Failure Surfaces", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo)

		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*models.Product")).Return(assert.AnError).Once()

		_, err := svc.Create(ctx, &models.CreateProductRequest{Name: "Camisa", Price: 1, Category: "camisas"})

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeWriteFailed, appErr.Code)
	})
}

func TestProductGet(t *testing.T) {
	ctx := t.Context()

	t.Run("Failure - Absent Product Maps To NotFound", func(t *testing.T) {
		mockRepo := new(mocks.ProductRepository)
		svc := service.NewProductService(mockRepo)

		mockRepo.On("GetByID", mock.Anything, "ghost").Return(nil, false, nil).Once()

		_, err := svc.Get(ctx, "ghost")

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
