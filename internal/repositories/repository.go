package repositories

import (
	"context"
	"errors"

	"kickshop/internal/models"
)

// ListLimit caps every listing query.
const ListLimit = 100

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts user and fails with ErrDuplicateKey if the email is taken.
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	List(ctx context.Context, filter models.ProductFilter, limit int) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// ReplaceAll deletes every product and inserts products.
	ReplaceAll(ctx context.Context, products []models.Product) error
}

// CartRepository defines the interface for cart line data access.
type CartRepository interface {
	// AddOrIncrement grows the quantity of the (user, product, size) line by item.Quantity,
	// or inserts item when no such line exists. It reports whether an existing line was grown
	// and sets item.ID to the id of the line either way.
	AddOrIncrement(ctx context.Context, item *models.CartItem) (bool, error)
	// ListByUser returns the lines of userID; a limit of 0 means all of them.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.CartItem, error)
	// DeleteForUser removes the line only if it belongs to userID.
	DeleteForUser(ctx context.Context, userID, itemID string) error
	// DeleteLines removes the listed lines that belong to userID; other ids are ignored.
	DeleteLines(ctx context.Context, userID string, itemIDs []string) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Order, error)
	GetForUser(ctx context.Context, userID, orderID string) (*models.Order, error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Users    UserRepository
	Products ProductRepository
	Carts    CartRepository
	Orders   OrderRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
