package routes

import (
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	userControllers "github.com/MarcoProfi00/ez-electronics-sub000/controllers/user"
	"github.com/MarcoProfi00/ez-electronics-sub000/middleware"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the "/users/*" endpoints. Listing and bulk
// deletion are admin-only; per-account access control lives in the handlers.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, store *auth.TokenStore) {
	userGroup := r.Group("/users")
	userGroup.Use(middleware.ValidateToken(store))
	{
		userGroup.GET("/:username", userControllers.GetUserByUsernameHandler(db))
		userGroup.PATCH("/:username", userControllers.UpdateUserHandler(db))
		userGroup.DELETE("/:username", userControllers.DeleteUserHandler(db))

		adminOnly := userGroup.Group("")
		adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
		{
			adminOnly.GET("", userControllers.GetUsersHandler(db))
			adminOnly.DELETE("", userControllers.DeleteAllUsersHandler(db))
		}
	}
}
