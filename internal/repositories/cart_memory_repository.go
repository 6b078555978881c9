package repositories

import (
	"context"
	"fmt"
	"sync"

	"kickshop/internal/models"

	"github.com/google/uuid"
)

// MemoryCartRepository is an in-memory implementation of CartRepository.
type MemoryCartRepository struct {
	items []models.CartItem
	mu    sync.Mutex
}

// NewMemoryCartRepository creates a new instance of MemoryCartRepository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{}
}

// AddOrIncrement merges or inserts the line under one lock.
func (r *MemoryCartRepository) AddOrIncrement(_ context.Context, item *models.CartItem) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		it := &r.items[i]
		if it.UserID == item.UserID && it.ProductID == item.ProductID && it.Size == item.Size {
			it.Quantity += item.Quantity
			item.ID = it.ID
			return true, nil
		}
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items = append(r.items, *item)
	return false, nil
}

// ListByUser returns the lines owned by userID.
func (r *MemoryCartRepository) ListByUser(_ context.Context, userID string, limit int) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.CartItem{}
	for _, it := range r.items {
		if limit > 0 && len(out) == limit {
			break
		}
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

// DeleteForUser removes a line owned by userID.
func (r *MemoryCartRepository) DeleteForUser(_ context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range r.items {
		if it.ID == itemID && it.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("cart item %s: %w", itemID, ErrNotFound)
}

// DeleteLines drops the listed lines owned by userID.
func (r *MemoryCartRepository) DeleteLines(_ context.Context, userID string, itemIDs []string) error {
	drop := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, it := range r.items {
		if _, ok := drop[it.ID]; ok && it.UserID == userID {
			continue
		}
		kept = append(kept, it)
	}
	r.items = kept
	return nil
}
