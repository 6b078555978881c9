package repositories

import (
	"context"
	"fmt"

	"kickshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// Create stores a new order.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", translateGORMError(err))
	}
	return nil
}

// ListByUser returns the orders placed by userID, oldest first.
func (r *GORMOrderRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Order, error) {
	orders := []models.Order{}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetForUser returns an order by id if it belongs to userID.
func (r *GORMOrderRepository) GetForUser(ctx context.Context, userID, orderID string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).First(&order, "id = ? AND user_id = ?", orderID, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderID, translateGORMError(err))
	}
	return &order, nil
}
