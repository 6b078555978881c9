package repositories_test

import (
	"context"
	"testing"
	"time"

	"kickshop/internal/models"
	"kickshop/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore exercises the behavior every Store backend must share.
func testStore(t *testing.T, newStore func(t *testing.T) *repositories.Store) {
	t.Run("users", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		user := &models.User{Email: "jane@example.com", FullName: "Jane", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
		require.NoError(t, store.Users.Create(ctx, user))
		assert.NotEmpty(t, user.ID)

		got, err := store.Users.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "hash", got.PasswordHash)

		dup := &models.User{Email: "jane@example.com", PasswordHash: "other", CreatedAt: time.Now().UTC()}
		assert.ErrorIs(t, store.Users.Create(ctx, dup), repositories.ErrDuplicateKey)

		_, err = store.Users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("products", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		batch := []models.Product{
			{Name: "A", Price: 10, Brand: models.BrandNike, Category: models.CategorySneakers, Sizes: []float64{40, 41}, Stock: 100},
			{Name: "B", Price: 20, Brand: models.BrandVans, Category: models.CategorySneakers, Stock: 100},
			{Name: "C", Price: 30, Brand: models.BrandNike, Category: models.CategoryBoots, Stock: 100},
		}
		require.NoError(t, store.Products.ReplaceAll(ctx, batch))

		all, err := store.Products.List(ctx, models.ProductFilter{}, repositories.ListLimit)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		nikes, err := store.Products.List(ctx, models.ProductFilter{Brand: models.BrandNike}, repositories.ListLimit)
		require.NoError(t, err)
		assert.Len(t, nikes, 2)

		nikeSneakers, err := store.Products.List(ctx, models.ProductFilter{Brand: models.BrandNike, Category: models.CategorySneakers}, repositories.ListLimit)
		require.NoError(t, err)
		require.Len(t, nikeSneakers, 1)
		assert.Equal(t, "A", nikeSneakers[0].Name)
		assert.Equal(t, []float64{40, 41}, nikeSneakers[0].Sizes)

		limited, err := store.Products.List(ctx, models.ProductFilter{}, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		got, err := store.Products.GetByID(ctx, batch[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "B", got.Name)

		require.NoError(t, store.Products.ReplaceAll(ctx, []models.Product{{Name: "D", Price: 5, Stock: 100}}))
		all, err = store.Products.List(ctx, models.ProductFilter{}, repositories.ListLimit)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "D", all[0].Name)

		_, err = store.Products.GetByID(ctx, batch[1].ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("carts", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		productID := uuid.New().String()

		line := func(user string, size float64, qty int) *models.CartItem {
			return &models.CartItem{UserID: user, ProductID: productID, Size: size, Quantity: qty, CreatedAt: time.Now().UTC()}
		}

		first := line("u1", 42, 2)
		merged, err := store.Carts.AddOrIncrement(ctx, first)
		require.NoError(t, err)
		assert.False(t, merged)
		require.NotEmpty(t, first.ID)

		again := line("u1", 42, 3)
		merged, err = store.Carts.AddOrIncrement(ctx, again)
		require.NoError(t, err)
		assert.True(t, merged)
		assert.Equal(t, first.ID, again.ID)

		merged, err = store.Carts.AddOrIncrement(ctx, line("u1", 43, 1))
		require.NoError(t, err)
		assert.False(t, merged)

		merged, err = store.Carts.AddOrIncrement(ctx, line("u2", 42, 1))
		require.NoError(t, err)
		assert.False(t, merged)

		items, err := store.Carts.ListByUser(ctx, "u1", repositories.ListLimit)
		require.NoError(t, err)
		require.Len(t, items, 2)
		quantities := map[float64]int{}
		for _, it := range items {
			quantities[it.Size] = it.Quantity
		}
		assert.Equal(t, map[float64]int{42: 5, 43: 1}, quantities)

		err = store.Carts.DeleteForUser(ctx, "u2", items[0].ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)
		require.NoError(t, store.Carts.DeleteForUser(ctx, "u1", items[0].ID))
		assert.ErrorIs(t, store.Carts.DeleteForUser(ctx, "u1", items[0].ID), repositories.ErrNotFound)

		remaining, err := store.Carts.ListByUser(ctx, "u1", repositories.ListLimit)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		others, err := store.Carts.ListByUser(ctx, "u2", repositories.ListLimit)
		require.NoError(t, err)
		require.Len(t, others, 1)

		// Ids of other users are ignored.
		require.NoError(t, store.Carts.DeleteLines(ctx, "u1", []string{remaining[0].ID, others[0].ID}))
		items, err = store.Carts.ListByUser(ctx, "u1", repositories.ListLimit)
		require.NoError(t, err)
		assert.Empty(t, items)

		items, err = store.Carts.ListByUser(ctx, "u2", repositories.ListLimit)
		require.NoError(t, err)
		assert.Len(t, items, 1)

		require.NoError(t, store.Carts.DeleteLines(ctx, "u2", nil))
	})

	t.Run("unbounded cart listing", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)
		productID := uuid.New().String()

		for i := 0; i < repositories.ListLimit+20; i++ {
			_, err := store.Carts.AddOrIncrement(ctx, &models.CartItem{UserID: "u1", ProductID: productID, Size: float64(i), Quantity: 1, CreatedAt: time.Now().UTC()})
			require.NoError(t, err)
		}

		capped, err := store.Carts.ListByUser(ctx, "u1", repositories.ListLimit)
		require.NoError(t, err)
		assert.Len(t, capped, repositories.ListLimit)

		all, err := store.Carts.ListByUser(ctx, "u1", 0)
		require.NoError(t, err)
		assert.Len(t, all, repositories.ListLimit+20)
	})

	t.Run("orders", func(t *testing.T) {
		ctx := context.Background()
		store := newStore(t)

		order := &models.Order{
			ID:     uuid.New().String(),
			UserID: "u1",
			Items: []models.OrderItem{{
				CartItem:    models.CartItem{ID: "line-1", UserID: "u1", ProductID: "p1", Size: 42, Quantity: 2},
				ProductName: "Air Max",
				UnitPrice:   89.99,
			}},
			TotalAmount: 179.98,
			Status:      models.OrderStatusPending,
			CreatedAt:   time.Now().UTC(),
		}
		require.NoError(t, store.Orders.Create(ctx, order))

		got, err := store.Orders.GetForUser(ctx, "u1", order.ID)
		require.NoError(t, err)
		assert.Equal(t, 179.98, got.TotalAmount)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Air Max", got.Items[0].ProductName)
		assert.Equal(t, 2, got.Items[0].Quantity)

		_, err = store.Orders.GetForUser(ctx, "u2", order.ID)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		list, err := store.Orders.ListByUser(ctx, "u1", repositories.ListLimit)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		list, err = store.Orders.ListByUser(ctx, "u2", repositories.ListLimit)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(context.Background()))
	})
}
