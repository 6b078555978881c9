package repositories

import (
	"context"
	"errors"
	"fmt"

	"kickshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
// It relies on the idx_cart_line unique index over (user_id, product_id, size).
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

func (r *GORMCartRepository) line(ctx context.Context, item *models.CartItem) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ? AND size = ?", item.UserID, item.ProductID, item.Size)
}

// increment grows the matching line and copies its id into item.
func (r *GORMCartRepository) increment(ctx context.Context, item *models.CartItem) (bool, error) {
	res := r.line(ctx, item).UpdateColumn("quantity", gorm.Expr("quantity + ?", item.Quantity))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}

	var existing models.CartItem
	if err := r.line(ctx, item).Select("id").Take(&existing).Error; err != nil {
		return false, err
	}
	item.ID = existing.ID
	return true, nil
}

// AddOrIncrement grows an existing line in one statement or inserts a new one.
func (r *GORMCartRepository) AddOrIncrement(ctx context.Context, item *models.CartItem) (bool, error) {
	merged, err := r.increment(ctx, item)
	if err != nil {
		return false, fmt.Errorf("failed to update cart item: %w", err)
	}
	if merged {
		return true, nil
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	err = r.db.WithContext(ctx).Create(item).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, fmt.Errorf("failed to create cart item: %w", err)
	}

	// A concurrent request inserted the same line first.
	merged, err = r.increment(ctx, item)
	if err != nil {
		return false, fmt.Errorf("failed to update cart item: %w", err)
	}
	if !merged {
		return false, fmt.Errorf("failed to add cart item: %w", ErrNotFound)
	}
	return true, nil
}

// ListByUser returns the lines owned by userID.
func (r *GORMCartRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.CartItem, error) {
	items := []models.CartItem{}
	q := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

// DeleteForUser deletes a line by id if it is owned by userID.
func (r *GORMCartRepository) DeleteForUser(ctx context.Context, userID, itemID string) error {
	res := r.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ? AND user_id = ?", itemID, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
	}
	return nil
}

// DeleteLines deletes the listed lines of userID.
func (r *GORMCartRepository) DeleteLines(ctx context.Context, userID string, itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&models.CartItem{}, "user_id = ? AND id IN ?", userID, itemIDs).Error; err != nil {
		return fmt.Errorf("failed to delete cart items: %w", err)
	}
	return nil
}
