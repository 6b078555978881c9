package services

import (
	"context"
	"errors"
	"time"

	"kickshop/internal/models"
	"kickshop/internal/repositories"

	"github.com/sirupsen/logrus"
)

// AddCartItemInput is a request to put a product in the cart.
type AddCartItemInput struct {
	ProductID string
	Size      float64 // not checked against the product's sizes
	Quantity  int     // 0 means 1
}

// CartService manages the cart lines of authenticated users.
type CartService struct {
	carts     repositories.CartRepository
	products  repositories.ProductRepository
	publisher EventPublisher
	log       *logrus.Logger
}

// NewCartService creates a new CartService. publisher may be nil.
func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository, publisher EventPublisher, log *logrus.Logger) *CartService {
	return &CartService{
		carts:     carts,
		products:  products,
		publisher: publisher,
		log:       log,
	}
}

// AddItem adds quantity of a product in a size to the user's cart, growing the
// existing line for the same product and size instead of creating a second one.
func (s *CartService) AddItem(ctx context.Context, userID string, in AddCartItemInput) (models.AddOutcome, error) {
	qty := in.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return models.CartItemAdded, newError(ErrValidation, "quantity must be positive")
	}

	if _, err := s.products.GetByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.CartItemAdded, newError(ErrNotFound, "Product not found")
		}
		return models.CartItemAdded, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: in.ProductID,
		Size:      in.Size,
		Quantity:  qty,
		CreatedAt: time.Now().UTC(),
	}
	merged, err := s.carts.AddOrIncrement(ctx, item)
	if err != nil {
		return models.CartItemAdded, err
	}

	outcome := models.CartItemAdded
	if merged {
		outcome = models.CartItemMerged
	}
	publish(ctx, s.publisher, s.log, EventCartItemAdded, CartEvent{
		UserID:    userID,
		ItemID:    item.ID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Quantity:  qty,
		Merged:    merged,
		At:        item.CreatedAt,
	})
	return outcome, nil
}

// ListItems returns up to 100 lines of the user's cart.
func (s *CartService) ListItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.carts.ListByUser(ctx, userID, repositories.ListLimit)
}

// RemoveItem deletes a line; lines of other users are reported as not found.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	if err := s.carts.DeleteForUser(ctx, userID, itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return newError(ErrNotFound, "Cart item not found")
		}
		return err
	}
	publish(ctx, s.publisher, s.log, EventCartItemRemoved, CartEvent{
		UserID: userID,
		ItemID: itemID,
		At:     time.Now().UTC(),
	})
	return nil
}
