package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kickshop/internal/catalog"
	"kickshop/internal/models"
	"kickshop/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
	log  *logrus.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, log *logrus.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		log:  log,
	}
}

// ListProducts returns up to 100 products matching filter.
func (s *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, newError(ErrValidation, fmt.Sprintf("unknown category %q", filter.Category))
	}
	if filter.Brand != "" && !filter.Brand.Valid() {
		return nil, newError(ErrValidation, fmt.Sprintf("unknown brand %q", filter.Brand))
	}
	return s.repo.List(ctx, filter, repositories.ListLimit)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrNotFound, "Product not found")
		}
		return nil, err
	}
	return product, nil
}

// SeedCatalog replaces every product with the built-in list and returns how many were stored.
func (s *ProductService) SeedCatalog(ctx context.Context) (int, error) {
	products := catalog.Products(time.Now().UTC())
	if err := s.repo.ReplaceAll(ctx, products); err != nil {
		return 0, err
	}
	s.log.WithField("count", len(products)).Info("catalog seeded")
	return len(products), nil
}
