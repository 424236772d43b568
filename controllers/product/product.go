package productcontroller

import (
	"errors"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateProduct registers a new model in the catalog. The model name is the
// primary key, so a duplicate is a conflict, not an update.
func CreateProduct(db *gorm.DB, product models.Product) (models.Product, error) {
	if product.ArrivalDate.After(time.Now()) {
		return models.Product{}, apperrors.ErrInvalidDate
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.First(&existing, "model = ?", product.Model).Error
		if err == nil {
			return apperrors.ErrProductAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// ChangeProductQuantity restocks a model by n units. The change date may not
// precede the product's arrival date nor sit in the future. Returns the new
// available quantity.
func ChangeProductQuantity(db *gorm.DB, model string, n int, changeDate time.Time) (int, error) {
	var quantity int
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "model = ?", model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotFound
			}
			return err
		}
		if changeDate.After(time.Now()) {
			return apperrors.ErrInvalidDate
		}
		if changeDate.Before(product.ArrivalDate) {
			return apperrors.ErrDateOrdering
		}
		quantity = product.Quantity + n
		return tx.Model(&models.Product{}).Where("model = ?", model).
			Update("quantity", quantity).Error
	})
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

// SellProduct records a direct sale of n units of the model. Empty stock and
// insufficient stock are distinct conflicts; a failed sale never mutates the
// quantity.
func SellProduct(db *gorm.DB, model string, n int, sellingDate time.Time) (int, error) {
	var quantity int
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "model = ?", model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotFound
			}
			return err
		}
		if sellingDate.After(time.Now()) {
			return apperrors.ErrInvalidDate
		}
		if sellingDate.Before(product.ArrivalDate) {
			return apperrors.ErrDateOrdering
		}
		if product.Quantity == 0 {
			return apperrors.ErrEmptyStock
		}
		if n > product.Quantity {
			return apperrors.ErrLowStock
		}
		quantity = product.Quantity - n
		return tx.Model(&models.Product{}).Where("model = ?", model).
			Update("quantity", quantity).Error
	})
	if err != nil {
		return 0, err
	}
	return quantity, nil
}

// Products lists the catalog, optionally narrowed to one category or one
// exact model. An unknown model is a 404; availableOnly keeps quantity > 0
// rows (an existing but sold-out model then yields an empty list).
func Products(db *gorm.DB, availableOnly bool, category *models.Category, model *string) ([]models.Product, error) {
	if model != nil {
		var product models.Product
		if err := db.First(&product, "model = ?", *model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProductNotFound
			}
			return nil, err
		}
		if availableOnly && product.Quantity == 0 {
			return []models.Product{}, nil
		}
		return []models.Product{product}, nil
	}

	query := db.Order("model ASC")
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if availableOnly {
		query = query.Where("quantity > 0")
	}
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DeleteProduct removes a model from the catalog. Its reviews go with it,
// and its line items are pulled out of every unpaid cart with the cart total
// adjusted by the snapshotted price. Paid carts keep their historical items.
func DeleteProduct(db *gorm.DB, model string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "model = ?", model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotFound
			}
			return err
		}

		if err := tx.Where("model = ?", model).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := removeFromUnpaidCarts(tx, model); err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
}

// DeleteAllProducts wipes the catalog, every review, and every line item of
// every unpaid cart.
func DeleteAllProducts(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
			return err
		}
		var products []models.Product
		if err := tx.Find(&products).Error; err != nil {
			return err
		}
		for _, product := range products {
			if err := removeFromUnpaidCarts(tx, product.Model); err != nil {
				return err
			}
		}
		return tx.Where("1 = 1").Delete(&models.Product{}).Error
	})
}

// removeFromUnpaidCarts drops the model's line items from all unpaid carts
// and shrinks each cart total by price-at-add times quantity.
func removeFromUnpaidCarts(tx *gorm.DB, model string) error {
	var items []models.CartItem
	if err := tx.Joins("JOIN carts ON carts.cart_id = cart_items.cart_id").
		Where("cart_items.model = ? AND carts.paid = ?", model, false).
		Find(&items).Error; err != nil {
		return err
	}
	for _, item := range items {
		refund := item.PriceAtAdd.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if err := tx.Model(&models.Cart{}).Where("cart_id = ?", item.CartID).
			Update("total", gorm.Expr("total - ?", refund)).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
			return err
		}
	}
	return nil
}
