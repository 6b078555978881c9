package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kickshop/internal/models"
	"kickshop/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	publisher   EventPublisher
	log         *logrus.Logger
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, publisher EventPublisher, log *logrus.Logger) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
	}
}

// Checkout turns the whole cart into a pending order and removes the ordered lines.
func (s *OrderService) Checkout(ctx context.Context, userID string) (*models.Order, error) {
	lines, err := s.cartRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, newError(ErrValidation, "Cart is empty")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	lineIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, newError(ErrNotFound, fmt.Sprintf("Product %s is no longer available", line.ProductID))
			}
			return nil, err
		}
		items = append(items, models.OrderItem{
			CartItem:    line,
			ProductName: product.Name,
			UnitPrice:   product.Price,
		})
		lineIDs = append(lineIDs, line.ID)
		total = total.Add(decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := &models.Order{
		ID:          uuid.New().String(),
		UserID:      userID,
		Items:       items,
		TotalAmount: total.Round(2).InexactFloat64(),
		Status:      models.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}
	// The order is already stored; a failure here leaves the cart to be cleared by hand.
	if err := s.cartRepo.DeleteLines(ctx, userID, lineIDs); err != nil {
		s.log.WithFields(logrus.Fields{"order_id": order.ID, "error": err.Error()}).Error("failed to clear cart after checkout")
	}

	s.log.WithFields(logrus.Fields{"order_id": order.ID, "user_id": userID, "total": order.TotalAmount}).Info("order created")
	publish(ctx, s.publisher, s.log, EventOrderCreated, OrderCreatedEvent{
		OrderID: order.ID,
		UserID:  userID,
		Status:  order.Status,
		Total:   order.TotalAmount,
		Items:   len(order.Items),
		At:      order.CreatedAt,
	})
	return order, nil
}

// ListOrders returns up to 100 orders of the user.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID, repositories.ListLimit)
}

// GetOrder retrieves one of the user's orders.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetForUser(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, newError(ErrNotFound, "Order not found")
		}
		return nil, err
	}
	return order, nil
}
