package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes es el único punto de entrada que registra los grupos de rutas
// de Auth, Usuario, Admin y Pedidos bajo /api.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// 1️⃣ Rutas públicas de autenticación (sin middleware)
	SetupAuthRoutes(api, db)

	// 2️⃣ Rutas de usuario (protegidas por JWT)
	SetupUsuarioRoutes(api, db)

	// 3️⃣ Rutas de administración (protegidas por API key)
	SetupAdminRoutes(api, db)

	// rutas de pedidos
	SetupPedidoRoutes(api, db)
}
