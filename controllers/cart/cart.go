package cartControllers

import (
	"errors"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CurrentCart returns the user's unpaid cart with its items. A user with no
// unpaid cart, or with one whose total is still zero, gets the empty-cart
// value instead of an error.
func CurrentCart(db *gorm.DB, username string) (models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").
		Where("username = ? AND paid = ?", username, false).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.EmptyCart(username), nil
		}
		return models.Cart{}, err
	}
	if cart.Total.IsZero() {
		return models.EmptyCart(username), nil
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, nil
}

// getOrCreateCurrentCart fetches the user's unpaid cart, creating an empty
// one when none exists yet. Carts are born lazily on the first add.
func getOrCreateCurrentCart(tx *gorm.DB, username string) (models.Cart, error) {
	var cart models.Cart
	err := tx.Where("username = ? AND paid = ?", username, false).First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, err
	}
	cart = models.EmptyCart(username)
	if err := tx.Create(&cart).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// AddProductToCart puts one unit of the model into the user's current cart:
// an existing line item gains one unit, otherwise a new line item is created
// with the selling price snapshotted. The cart total grows by the current
// selling price. Stock is untouched until checkout.
func AddProductToCart(db *gorm.DB, username, model string) (models.Cart, error) {
	var cart models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "model = ?", model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotFound
			}
			return err
		}
		if product.Quantity == 0 {
			return apperrors.ErrEmptyStock
		}

		var err error
		cart, err = getOrCreateCurrentCart(tx, username)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND model = ?", cart.CartID, model).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:     cart.CartID,
				Model:      product.Model,
				Quantity:   1,
				PriceAtAdd: product.SellingPrice,
				AddedAt:    time.Now(),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			item.Quantity++
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		cart.Total = cart.Total.Add(product.SellingPrice)
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("total", cart.Total).Error
	})
	if err != nil {
		return models.Cart{}, err
	}

	if err := db.Preload("Items").First(&cart, cart.CartID).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// Checkout pays the user's current cart: every line item is re-validated
// against live stock under a row lock, stock is decremented, and the cart is
// flagged paid, all inside one transaction so a failed item leaves no
// partial stock update behind. The total is the one accumulated at add time,
// never recomputed here.
func Checkout(db *gorm.DB, username string) (models.Cart, error) {
	var cart models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id ASC")
		}).Where("username = ? AND paid = ?", username, false).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCartNotFound
			}
			return err
		}
		if len(cart.Items) == 0 {
			return apperrors.ErrEmptyCart
		}

		// Validate in line-item order; for each item the empty-stock case is
		// tested before the low-stock case.
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "model = ?", item.Model).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrProductNotFound
				}
				return err
			}
			if product.Quantity == 0 {
				return apperrors.ErrEmptyStock
			}
			if item.Quantity > product.Quantity {
				return apperrors.ErrLowStock
			}
			if err := tx.Model(&models.Product{}).Where("model = ?", item.Model).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		cart.Paid = true
		cart.PaymentDate = &now
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Updates(map[string]interface{}{"paid": true, "payment_date": now}).Error
	})
	if err != nil {
		return models.Cart{}, err
	}

	broadcastCheckout(cart)
	return cart, nil
}

// CartHistory returns the user's paid carts with their line items as they
// were at payment time. The current unpaid cart is excluded.
func CartHistory(db *gorm.DB, username string) ([]models.Cart, error) {
	var carts []models.Cart
	if err := db.Preload("Items").
		Where("username = ? AND paid = ?", username, true).
		Order("payment_date ASC").
		Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// RemoveProductFromCart takes one unit of the model out of the user's
// current cart. The last unit deletes the line item; the cart total shrinks
// by the price snapshotted when the product was added.
func RemoveProductFromCart(db *gorm.DB, username, model string) (models.Cart, error) {
	var cart models.Cart
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "model = ?", model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotFound
			}
			return err
		}

		if err := tx.Preload("Items").
			Where("username = ? AND paid = ?", username, false).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCartNotFound
			}
			return err
		}
		// A cart stripped of every item counts as absent for removal.
		if len(cart.Items) == 0 {
			return apperrors.ErrCartNotFound
		}

		var item models.CartItem
		if err := tx.Where("cart_id = ? AND model = ?", cart.CartID, model).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrProductNotInCart
			}
			return err
		}

		if item.Quantity == 1 {
			if err := tx.Delete(&item).Error; err != nil {
				return err
			}
		} else {
			item.Quantity--
			if err := tx.Save(&item).Error; err != nil {
				return err
			}
		}

		cart.Total = cart.Total.Sub(item.PriceAtAdd)
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("total", cart.Total).Error
	})
	if err != nil {
		return models.Cart{}, err
	}

	if err := db.Preload("Items").First(&cart, cart.CartID).Error; err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// ClearCart deletes every line item of the user's current cart and resets
// the total to zero.
func ClearCart(db *gorm.DB, username string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where("username = ? AND paid = ?", username, false).
			First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCartNotFound
			}
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("total", decimal.Zero).Error
	})
}

// AllCarts returns every cart of every user, paid and unpaid, fully
// populated. Admin-only at the boundary.
func AllCarts(db *gorm.DB) ([]models.Cart, error) {
	var carts []models.Cart
	if err := db.Preload("Items").Order("cart_id ASC").Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// DeleteAllCarts wipes every cart and line item for every user.
func DeleteAllCarts(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Cart{}).Error
	})
}
