package repository_test

import (
	"testing"
	"time"

	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
	"github.com/lojatricolor/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSave(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - First Save Stamps Timestamps", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewCatalogRepo(kv)

		catalog := &models.Catalog{ID: "c1", Name: "Lançamentos", ProductIDs: []string{"p1"}}
		require.NoError(t, repo.Save(ctx, catalog))

		stored, found, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		require.True(t, found)
		assert.False(t, stored.CreatedAt.IsZero())
		assert.False(t, stored.UpdatedAt.IsZero())
	})

	t.Run("Invariant - CreatedAt Survives Any Number Of Saves", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewCatalogRepo(kv)

		require.NoError(t, repo.Save(ctx, &models.Catalog{ID: "c1", Name: "Lançamentos"}))

		original, _, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			// Callers routinely pass a zero or stale CreatedAt; the stored
			// value must win regardless.
			err := repo.Save(ctx, &models.Catalog{
				ID:          "c1",
				Name:        "Lançamentos 24/25",
				Description: "Coleção nova",
				ProductIDs:  []string{"p1", "p2"},
				CreatedAt:   time.Now().Add(time.Hour),
			})
			require.NoError(t, err)
		}

		stored, _, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.True(t, stored.CreatedAt.Equal(original.CreatedAt))
		assert.Equal(t, "Lançamentos 24/25", stored.Name)
		assert.Equal(t, []string{"p1", "p2"}, stored.ProductIDs)
	})
}

func TestCatalogAddProduct(t *testing.T) {
	ctx := t.Context()

	t.Run("Invariant - Adding Twice Keeps Single Reference", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewCatalogRepo(kv)

		require.NoError(t, repo.Save(ctx, &models.Catalog{ID: "c1", Name: "Lançamentos"}))

		require.NoError(t, repo.AddProduct(ctx, "c1", "p1"))
		require.NoError(t, repo.AddProduct(ctx, "c1", "p1"))

		stored, _, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, []string{"p1"}, stored.ProductIDs)
	})

	t.Run("Success - Preserves Insertion Order", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewCatalogRepo(kv)

		require.NoError(t, repo.Save(ctx, &models.Catalog{ID: "c1", Name: "Lançamentos"}))

		require.NoError(t, repo.AddProduct(ctx, "c1", "p2"))
		require.NoError(t, repo.AddProduct(ctx, "c1", "p1"))
		require.NoError(t, repo.AddProduct(ctx, "c1", "p3"))

		stored, _, err := repo.GetByID(ctx, "c1")
		require.NoError(t, err)
		assert.Equal(t, []string{"p2", "p1", "p3"}, stored.ProductIDs)
	})

	t.Run("Failure - Absent Catalog", func(t *testing.T) {
		kv := testutils.NewMemStore()
		repo := repository.NewCatalogRepo(kv)

		err := repo.AddProduct(ctx, "missing", "p1")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCatalogRemoveProduct(t *testing.T) {
	ctx := t.Context()

	kv := testutils.NewMemStore()
	repo := repository.NewCatalogRepo(kv)

	require.NoError(t, repo.Save(ctx, &models.Catalog{ID: "c1", Name: "Lançamentos", ProductIDs: []string{"p1", "p2"}}))

	require.NoError(t, repo.RemoveProduct(ctx, "c1", "p1"))

	stored, _, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, stored.ProductIDs)

	// Removing an absent id is a no-op.
	require.NoError(t, repo.RemoveProduct(ctx, "c1", "p1"))

	stored, _, err = repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, stored.ProductIDs)
}

func TestCatalogUpdateProducts(t *testing.T) {
	ctx := t.Context()

	kv := testutils.NewMemStore()
	repo := repository.NewCatalogRepo(kv)

	require.NoError(t, repo.Save(ctx, &models.Catalog{ID: "c1", Name: "Lançamentos", ProductIDs: []string{"p1"}}))

	original, _, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateProducts(ctx, "c1", []string{"p3", "p4"}))

	stored, _, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p4"}, stored.ProductIDs)
	assert.True(t, stored.CreatedAt.Equal(original.CreatedAt))
}
