package models

import "time"

// OrderStatusPending is the status of a freshly placed order.
const OrderStatusPending = "pending"

// OrderItem is a snapshot of a cart line taken at checkout.
type OrderItem struct {
	CartItem    `bson:",inline"`
	ProductName string  `json:"product_name" bson:"product_name"`
	UnitPrice   float64 `json:"unit_price" bson:"unit_price"` // price at the time of checkout
}

// Order represents a customer order created from a cart.
type Order struct {
	ID          string      `json:"id" bson:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"user_id" bson:"user_id" gorm:"index;type:varchar(36)"`
	Items       []OrderItem `json:"items" bson:"items" gorm:"serializer:json"`
	TotalAmount float64     `json:"total_amount" bson:"total_amount"`
	Status      string      `json:"status" bson:"status" gorm:"type:varchar(32)"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
