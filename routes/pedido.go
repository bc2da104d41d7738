package routes

import (
	pedidoControllers "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/pedido"
	"github.com/brayancortes22/Accesorios-lilis-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPedidoRoutes(r *gin.RouterGroup, db *gorm.DB) {
	pedidos := r.Group("/pedidos")
	{
		// crear pedido a partir del carrito activo
		pedidos.POST("/", middleware.ValidateToken, pedidoControllers.CrearPedidoHandler(db))

		// pedidos del propio usuario
		pedidos.GET("/usuario/:usuario_id", middleware.ValidateToken, pedidoControllers.GetPedidosUsuarioHandler(db))

		// listado completo (panel de administración)
		pedidos.GET("/", middleware.ValidateAPIKey, pedidoControllers.GetPedidosHandler(db))

		// feed websocket de altas y cambios de estado
		pedidos.GET("/ws", pedidoControllers.PedidoWebSocketHandler)

		// detalle por id numérico o número PEDyyyyMMddNNN
		pedidos.GET("/:id", middleware.ValidateToken, pedidoControllers.GetPedidoHandler(db))

		// avance del ciclo de vida (Pendiente → Confirmado → Entregado / Cancelado)
		pedidos.PUT("/:id/estado", middleware.ValidateAPIKey, pedidoControllers.ActualizarEstadoHandler(db))
	}
}
