package routes

import (
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	cartControllers "github.com/MarcoProfi00/ez-electronics-sub000/controllers/cart"
	"github.com/MarcoProfi00/ez-electronics-sub000/middleware"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers "/carts/*". The shopping flow is customer-only;
// the bulk endpoints are administrative.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, store *auth.TokenStore) {
	cartGroup := r.Group("/carts")
	cartGroup.Use(middleware.ValidateToken(store))
	{
		customerOnly := cartGroup.Group("")
		customerOnly.Use(middleware.RequireRole(models.RoleCustomer))
		{
			customerOnly.GET("/current", cartControllers.GetCurrentCartHandler(db))
			customerOnly.POST("/current/:model", cartControllers.AddProductToCartHandler(db))
			customerOnly.PATCH("/current", cartControllers.CheckoutHandler(db))
			customerOnly.DELETE("/current/:model", cartControllers.RemoveProductFromCartHandler(db))
			customerOnly.DELETE("/current", cartControllers.ClearCartHandler(db))
			customerOnly.GET("/history", cartControllers.GetCartHistoryHandler(db))
		}

		staffOnly := cartGroup.Group("")
		staffOnly.Use(middleware.RequireRole(models.RoleManager, models.RoleAdmin))
		{
			staffOnly.GET("/all", cartControllers.GetAllCartsHandler(db))
			staffOnly.GET("/feed", cartControllers.CheckoutFeedHandler)
		}

		adminOnly := cartGroup.Group("")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.DELETE("", cartControllers.DeleteAllCartsHandler(db))
		}
	}
}
