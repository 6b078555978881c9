package catalog_test

import (
	"testing"
	"time"

	"kickshop/internal/catalog"
	"kickshop/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_AreValid(t *testing.T) {
	v := validator.New()
	now := time.Now()

	products := catalog.Products(now)
	require.Len(t, products, 8)

	for _, p := range products {
		assert.NoError(t, v.Struct(p), p.Name)
		assert.True(t, p.Brand.Valid(), p.Name)
		assert.True(t, p.Category.Valid(), p.Name)
		assert.NotEmpty(t, p.Sizes, p.Name)
		assert.Equal(t, models.DefaultStock, p.Stock)
		assert.Equal(t, now, p.CreatedAt)
		assert.Empty(t, p.ID)
	}
}

func TestProducts_ReturnsIndependentCopies(t *testing.T) {
	a := catalog.Products(time.Now())
	a[0].Name = "changed"
	a[0].Sizes[0] = 1

	b := catalog.Products(time.Now())
	assert.Equal(t, "Nike Air Force 1", b[0].Name)
	assert.Equal(t, float64(36), b[0].Sizes[0])
}

func TestProducts_ImageURLs(t *testing.T) {
	products := catalog.Products(time.Now())

	assert.Equal(t,
		"https://images.unsplash.com/photo-1542291026-7eec264c27ff?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzh8MHwxfHNlYXJjaHwxfHxzaG9lc3xlbnwwfHx8fDE3NTg2Mjg2NTR8MA&ixlib=rb-4.1.0&q=85",
		products[0].ImageURL)
	for _, p := range products {
		assert.Contains(t, p.ImageURL, "&ixid=", p.Name)
		assert.Contains(t, p.ImageURL, "&ixlib=rb-4.1.0&q=85", p.Name)
	}
}
