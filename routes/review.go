package routes

import (
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	reviewControllers "github.com/MarcoProfi00/ez-electronics-sub000/controllers/review"
	"github.com/MarcoProfi00/ez-electronics-sub000/middleware"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupReviewRoutes registers "/reviews/*". Writing is customer-only,
// reading is open to every logged-in user, bulk deletion is staff-only.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB, store *auth.TokenStore) {
	reviewGroup := r.Group("/reviews")
	reviewGroup.Use(middleware.ValidateToken(store))
	{
		reviewGroup.GET("/:model", reviewControllers.GetProductReviewsHandler(db))

		customerOnly := reviewGroup.Group("")
		customerOnly.Use(middleware.RequireRole(models.RoleCustomer))
		{
			customerOnly.POST("/:model", reviewControllers.AddReviewHandler(db))
			customerOnly.DELETE("/:model", reviewControllers.DeleteReviewHandler(db))
		}

		staffOnly := reviewGroup.Group("")
		staffOnly.Use(middleware.RequireRole(models.RoleManager, models.RoleAdmin))
		{
			staffOnly.DELETE("/:model/all", reviewControllers.DeleteReviewsOfProductHandler(db))
			staffOnly.DELETE("", reviewControllers.DeleteAllReviewsHandler(db))
		}
	}
}
