package routes

import (
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	adminControllers "github.com/MarcoProfi00/ez-electronics-sub000/controllers/admin"
	"github.com/MarcoProfi00/ez-electronics-sub000/middleware"
	"github.com/MarcoProfi00/ez-electronics-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the "/admin/*" dashboard endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, store *auth.TokenStore) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(store), middleware.RequireRole(models.RoleAdmin))
	{
		adminGroup.GET("/stats", adminControllers.GetStatsHandler(db))
	}
}
