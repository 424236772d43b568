package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID      uint            `gorm:"primaryKey" json:"cart_id"`
	Username    string          `gorm:"index;not null" json:"username"`
	Paid        bool            `gorm:"not null;default:false" json:"paid"`
	PaymentDate *time.Time      `json:"payment_date"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total"`
	Items       []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CartItem is one product line of a cart. PriceAtAdd snapshots the selling
// price at the moment the product was added, so a later catalog price change
// never rewrites a cart that already holds the product.
type CartItem struct {
	ID         uint            `gorm:"primaryKey" json:"-"`
	CartID     uint            `gorm:"index;uniqueIndex:idx_cart_model" json:"-"`
	Model      string          `gorm:"uniqueIndex:idx_cart_model;not null" json:"model"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	PriceAtAdd decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price_at_add"`
	AddedAt    time.Time       `json:"added_at"`
}

// EmptyCart is the value returned when a user has no current cart: absence is
// a valid state, not an error.
func EmptyCart(username string) Cart {
	return Cart{
		Username: username,
		Paid:     false,
		Total:    decimal.Zero,
		Items:    []CartItem{},
	}
}
