package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Routing keys of the domain events.
const (
	EventCartItemAdded   = "cart.item_added"
	EventCartItemRemoved = "cart.item_removed"
	EventOrderCreated    = "order.created"
)

// EventPublisher sends domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// CartEvent describes a change to a cart line.
type CartEvent struct {
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	ProductID string    `json:"product_id,omitempty"`
	Size      float64   `json:"size,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Merged    bool      `json:"merged,omitempty"`
	At        time.Time `json:"at"`
}

// OrderCreatedEvent is published after a successful checkout.
type OrderCreatedEvent struct {
	OrderID string    `json:"order_id"`
	UserID  string    `json:"user_id"`
	Status  string    `json:"status"`
	Total   float64   `json:"total"`
	Items   int       `json:"items"`
	At      time.Time `json:"at"`
}

// publish is best effort: a broker failure never fails the request.
func publish(ctx context.Context, pub EventPublisher, log *logrus.Logger, key string, payload any) {
	if pub == nil {
		log.WithField("event", key).Debug("event publisher not configured, skipping")
		return
	}
	if err := pub.Publish(ctx, key, payload); err != nil {
		log.WithFields(logrus.Fields{"event": key, "error": err.Error()}).Warn("failed to publish event")
	}
}
