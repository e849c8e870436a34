package repository_test

import (
	"errors"
	"testing"

	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	"github.com/lojatricolor/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestProductGetAll(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Returns Every Product Keyed By Path Segment", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewProductRepo(kv)

		require.NoError(t, repo.Save(ctx, &models.Product{ID: "p1", Name: "Camisa Titular", Price: 299.90, Category: "camisas", InStock: true}))
		require.NoError(t, repo.Save(ctx, &models.Product{ID: "p2", Name: "Caneca", Price: 49.90, Category: "acessorios", InStock: true}))

		products, err := repo.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "p1", products[0].ID)
		assert.Equal(t, "Camisa Titular", products[0].Name)
		assert.Equal(t, "p2", products[1].ID)
	})

	t.Run("Success - Empty Store Is Not An Error", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewProductRepo(kv)

		products, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Failure - Backing Read Error Surfaces", func(t *testing.T) {
		kv := testutils.NewMemStore()
		kv.FailReads["products"] = errors.New("connection refused")
		repo := repository.NewProductRepo(kv)

		products, err := repo.GetAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, products)
	})
}

func TestProductUpdate(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Nil Fields Leave Target Untouched", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewProductRepo(kv)

		require.NoError(t, repo.Save(ctx, &models.Product{ID: "p1", Name: "Camisa", Description: "Modelo 24/25", Price: 299.90, Category: "camisas", InStock: true}))

		err := repo.Update(ctx, "p1", &models.UpdateProductRequest{Price: floatPtr(249.90)})

		require.NoError(t, err)

		product, found, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 249.90, product.Price)
		assert.Equal(t, "Camisa", product.Name)
		assert.Equal(t, "Modelo 24/25", product.Description)
		assert.True(t, product.InStock)
	})

	t.Run("Edge Case - Updating Absent Id Creates Partial Record", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewProductRepo(kv)

		err := repo.Update(ctx, "ghost", &models.UpdateProductRequest{Name: strPtr("Parcial")})

		require.NoError(t, err)

		product, found, err := repo.GetByID(ctx, "ghost")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Parcial", product.Name)
		assert.Zero(t, product.Price)
	})
}

func TestProductDelete(t *testing.T) {
	ctx := t.Context()

	kv := testutils.NewMemStore()
	repo := repository.NewProductRepo(kv)

	require.NoError(t, repo.Save(ctx, &models.Product{ID: "p1", Name: "Camisa"}))
	require.NoError(t, repo.Delete(ctx, "p1"))

	_, found, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting again is idempotent.
	assert.NoError(t, repo.Delete(ctx, "p1"))
}
