package repositories

import (
	"context"
	"fmt"
	"sync"

	"kickshop/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Products are kept in insertion order.
type MemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

// List returns products matching filter.
func (r *MemoryProductRepository) List(_ context.Context, filter models.ProductFilter, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if limit > 0 && len(productList) == limit {
			break
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MemoryProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
}

// ReplaceAll swaps the catalog under the write lock.
func (r *MemoryProductRepository) ReplaceAll(_ context.Context, products []models.Product) error {
	next := make([]models.Product, len(products))
	for i := range products {
		if products[i].ID == "" {
			products[i].ID = uuid.New().String()
		}
		next[i] = products[i]
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = next
	return nil
}
