package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lojatricolor/storefront/internal/models"
	"github.com/lojatricolor/storefront/internal/store"
)

const cartsPath = "carts"

type CartRepository interface {
	// Get is best-effort: a read failure is logged and an empty cart is
	// returned, so a broken store never blocks page render.
	Get(ctx context.Context, cartID string) ([]models.CartItem, error)
	// Save replaces the stored line-item list wholesale.
	Save(ctx context.Context, cartID string, items []models.CartItem) error
	// Clear removes the record entirely, not just an empty list.
	Clear(ctx context.Context, cartID string) error
}

type cartRepository struct {
	kv store.Store
}

func NewCartRepo(kv store.Store) CartRepository {
	return &cartRepository{kv: kv}
}

func (r *cartRepository) Get(ctx context.Context, cartID string) ([]models.CartItem, error) {

	record := &models.CartRecord{}

	found, err := r.kv.Get(ctx, cartsPath+"/"+cartID, record)
	if err != nil {
		slog.Warn("Cart read failed, serving empty cart",
			slog.String("cartId", cartID),
			slog.String("error", err.Error()),
		)

		return []models.CartItem{}, nil
	}

	if !found || record.Items == nil {
		return []models.CartItem{}, nil
	}

	return record.Items, nil
}

func (r *cartRepository) Save(ctx context.Context, cartID string, items []models.CartItem) error {

	record := &models.CartRecord{
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}

	if err := r.kv.Set(ctx, cartsPath+"/"+cartID, record); err != nil {
		return fmt.Errorf("saving cart %s: %w", cartID, err)
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, cartID string) error {

	if err := r.kv.Delete(ctx, cartsPath+"/"+cartID); err != nil {
		return fmt.Errorf("clearing cart %s: %w", cartID, err)
	}

	return nil
}
