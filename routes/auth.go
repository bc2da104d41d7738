package routes

import (
	"github.com/brayancortes22/Accesorios-lilis-sub000/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registra los endpoints “/auth/*”.
func SetupAuthRoutes(r *gin.RouterGroup, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/registro", auth.RegistroHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))
	}
}
