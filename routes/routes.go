package routes

import (
	"github.com/MarcoProfi00/ez-electronics-sub000/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point wiring every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *auth.TokenStore) {
	// Public: registration and login.
	SetupAuthRoutes(r, db, store)

	// Authenticated groups.
	SetupUserRoutes(r, db, store)
	SetupProductRoutes(r, db, store)
	SetupCartRoutes(r, db, store)
	SetupReviewRoutes(r, db, store)
	SetupAdminRoutes(r, db, store)
}
