package models

import "time"

// CartItem is one (product, size, quantity) line in a user's cart.
// A user has at most one line per product and size.
type CartItem struct {
	ID        string    `json:"id" bson:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" bson:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_line,priority:1"`
	ProductID string    `json:"product_id" bson:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_line,priority:2"`
	Size      float64   `json:"size" bson:"size" gorm:"uniqueIndex:idx_cart_line,priority:3"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// AddOutcome tells whether adding to the cart created a line or grew an existing one.
type AddOutcome int

const (
	CartItemAdded AddOutcome = iota
	CartItemMerged
)

func (o AddOutcome) String() string {
	if o == CartItemMerged {
		return "merged"
	}
	return "added"
}
