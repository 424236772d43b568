package productcontroller

import (
	"net/http"
	"time"

	"github.com/MarcoProfi00/ez-electronics-sub000/apperrors"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type CreateProductInput struct {
	Model        string  `json:"model" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	ArrivalDate  string  `json:"arrival_date"`
	SellingPrice float64 `json:"selling_price" binding:"required,gt=0"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	Details      string  `json:"details"`
}

type QuantityInput struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Date     string `json:"date"`
}

// parseDate reads an ISO date, defaulting to today when the field is empty.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	return time.Parse(dateLayout, value)
}

// POST /products
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		category, err := models.MapCategory(input.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		arrival, err := parseDate(input.ArrivalDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid arrival_date"})
			return
		}

		product, err := CreateProduct(db, models.Product{
			Model:        input.Model,
			Category:     category,
			ArrivalDate:  arrival,
			SellingPrice: decimal.NewFromFloat(input.SellingPrice),
			Quantity:     input.Quantity,
			Details:      input.Details,
		})
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PATCH /products/:model
func ChangeQuantityHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		model := c.Param("model")
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		changeDate, err := parseDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		quantity, err := ChangeProductQuantity(db, model, input.Quantity, changeDate)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"quantity": quantity})
	}
}

// PATCH /products/:model/sell
func SellProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		model := c.Param("model")
		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sellingDate, err := parseDate(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		quantity, err := SellProduct(db, model, input.Quantity, sellingDate)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"quantity": quantity})
	}
}

// listHandler backs both /products and /products/available.
func listHandler(db *gorm.DB, availableOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category *models.Category
		if raw := c.Query("category"); raw != "" {
			mapped, err := models.MapCategory(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			category = &mapped
		}
		var model *string
		if raw := c.Query("model"); raw != "" {
			if category != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "category and model filters are exclusive"})
				return
			}
			model = &raw
		}

		products, err := Products(db, availableOnly, category, model)
		if err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products (manager/admin)
func GetProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return listHandler(db, false)
}

// GET /products/available
func GetAvailableProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return listHandler(db, true)
}

// DELETE /products/:model
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DeleteProduct(db, c.Param("model")); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// DELETE /products
func DeleteAllProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := DeleteAllProducts(db); err != nil {
			c.JSON(apperrors.HTTPStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All products deleted"})
	}
}
