package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategorySmartphone Category = "Smartphone"
	CategoryLaptop     Category = "Laptop"
	CategoryAppliance  Category = "Appliance"
)

// MapCategory converts a request string into a Category.
func MapCategory(category string) (Category, error) {
	switch strings.ToLower(category) {
	case strings.ToLower(string(CategorySmartphone)):
		return CategorySmartphone, nil
	case strings.ToLower(string(CategoryLaptop)):
		return CategoryLaptop, nil
	case strings.ToLower(string(CategoryAppliance)):
		return CategoryAppliance, nil
	default:
		return "", errors.New("invalid product category")
	}
}

type Product struct {
	Model        string          `gorm:"primaryKey" json:"model"`
	Category     Category        `gorm:"type:VARCHAR(20);not null" json:"category"`
	ArrivalDate  time.Time       `gorm:"not null" json:"arrival_date"`
	SellingPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"selling_price"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Details      string          `json:"details"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
