package routes

import (
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	productcontroller "github.com/MarcoProfi00/ez-electronics-sub000/controllers/product"
	"github.com/MarcoProfi00/ez-electronics-sub000/middleware"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers "/products/*". Catalog mutation and the full
// listing belong to managers and admins; the available listing is open to
// every logged-in user.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB, store *auth.TokenStore) {
	productGroup := r.Group("/products")
	productGroup.Use(middleware.ValidateToken(store))
	{
		productGroup.GET("/available", productcontroller.GetAvailableProductsHandler(db))

		staffOnly := productGroup.Group("")
		staffOnly.Use(middleware.RequireRole(models.RoleManager, models.RoleAdmin))
		{
			staffOnly.POST("", productcontroller.CreateProductHandler(db))
			staffOnly.GET("", productcontroller.GetProductsHandler(db))
			staffOnly.GET("/export", productcontroller.ExportProductsToExcel(db))
			staffOnly.PATCH("/:model", productcontroller.ChangeQuantityHandler(db))
			staffOnly.PATCH("/:model/sell", productcontroller.SellProductHandler(db))
			staffOnly.DELETE("/:model", productcontroller.DeleteProductHandler(db))
			staffOnly.DELETE("", productcontroller.DeleteAllProductsHandler(db))
		}
	}
}
