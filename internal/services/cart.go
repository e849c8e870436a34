package service

import (
	"context"
	"math"

	"github.com/lojatricolor/storefront/internal/errors"
	"github.com/lojatricolor/storefront/internal/models"
	repository "github.com/lojatricolor/storefront/internal/repositories"
)

// CartService applies the cart merge rules and persists every mutation.
// Writes for one cart are serialized by the caller; two sessions writing
// the same cart race and the later write wins, an accepted trade-off of
// the remote variant.
type CartService struct {
	repo     repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{repo: repo, products: products}
}

func (s *CartService) Get(ctx context.Context, cartID string) (*models.CartView, error) {

	items, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load cart").WithError(err)
	}

	return s.view(cartID, items), nil
}

// AddItem merges a product into the cart: an existing line for the same
// product id gets its quantity incremented, otherwise a new line with
// quantity 1 is appended.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string) (*models.CartView, error) {

	product, found, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load product").WithError(err)
	}

	if !found {
		return nil, errors.NotFoundError("Product not found")
	}

	items, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load cart").WithError(err)
	}

	merged := false

	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			merged = true

			break
		}
	}

	if !merged {
		items = append(items, models.CartItem{Product: *product, Quantity: 1})
	}

	if err := s.repo.Save(ctx, cartID, items); err != nil {
		return nil, errors.WriteFailedError("Failed to save cart").WithError(err)
	}

	return s.view(cartID, items), nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartID, productID string) (*models.CartView, error) {

	items, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load cart").WithError(err)
	}

	kept := items[:0]

	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}

	if err := s.repo.Save(ctx, cartID, kept); err != nil {
		return nil, errors.WriteFailedError("Failed to save cart").WithError(err)
	}

	return s.view(cartID, kept), nil
}

// UpdateQuantity sets the quantity of an existing line. A requested
// quantity of zero or below removes the line; a non-positive quantity is
// never persisted.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*models.CartView, error) {

	if quantity <= 0 {
		return s.RemoveItem(ctx, cartID, productID)
	}

	items, err := s.repo.Get(ctx, cartID)
	if err != nil {
		return nil, errors.StoreUnavailableError("Failed to load cart").WithError(err)
	}

	updated := false

	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			updated = true

			break
		}
	}

	if !updated {
		return nil, errors.NotFoundError("Item not found in the cart")
	}

	if err := s.repo.Save(ctx, cartID, items); err != nil {
		return nil, errors.WriteFailedError("Failed to save cart").WithError(err)
	}

	return s.view(cartID, items), nil
}

func (s *CartService) Clear(ctx context.Context, cartID string) error {

	if err := s.repo.Clear(ctx, cartID); err != nil {
		return errors.WriteFailedError("Failed to clear cart").WithError(err)
	}

	return nil
}

func (s *CartService) view(cartID string, items []models.CartItem) *models.CartView {

	view := &models.CartView{
		CartID: cartID,
		Items:  items,
	}

	if view.Items == nil {
		view.Items = []models.CartItem{}
	}

	for _, item := range items {
		view.TotalItems += item.Quantity
		view.TotalPrice += item.Price * float64(item.Quantity)
	}

	view.TotalPrice = math.Round(view.TotalPrice*100) / 100

	return view
}
