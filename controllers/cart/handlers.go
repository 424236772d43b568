package cartControllers

import (
	"net/http"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /carts/current
func GetCurrentCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		cart, err := CurrentCart(db, username)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /carts/current/:model
func AddProductToCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		model := c.Param("model")
		if model == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "model is required"})
			return
		}
		cart, err := AddProductToCart(db, username, model)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PATCH /carts/current
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		cart, err := Checkout(db, username)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// GET /carts/history
func GetCartHistoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		carts, err := CartHistory(db, username)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// DELETE /carts/current/:model
func RemoveProductFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		model := c.Param("model")
		if model == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "model is required"})
			return
		}
		cart, err := RemoveProductFromCart(db, username, model)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /carts/current
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if err := ClearCart(db, username); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /carts/all (admin)
func GetAllCartsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts, err := AllCarts(db)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, carts)
	}
}

// DELETE /carts (admin)
func DeleteAllCartsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DeleteAllCarts(db); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All carts deleted"})
	}
}
