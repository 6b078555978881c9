package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"kickshop/internal/models"

	"github.com/google/uuid"
)

// MemoryOrderRepository is an in-memory implementation of OrderRepository.
type MemoryOrderRepository struct {
	orders []models.Order
	mu     sync.RWMutex
}

// NewMemoryOrderRepository creates a new instance of MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

// Create adds a new order.
func (r *MemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	r.orders = append(r.orders, *order)
	return nil
}

// ListByUser returns the orders of userID.
func (r *MemoryOrderRepository) ListByUser(_ context.Context, userID string, limit int) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Order{}
	for _, o := range r.orders {
		if limit > 0 && len(out) == limit {
			break
		}
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

// GetForUser returns an order owned by userID.
func (r *MemoryOrderRepository) GetForUser(_ context.Context, userID, orderID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == orderID && o.UserID == userID {
			order := o
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s: %w", orderID, ErrNotFound)
}
