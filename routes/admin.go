package routes

import (
	carritoControllers "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/carrito"
	productocontroller "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/producto"
	usuarioControllers "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/usuario"
	whatsappControllers "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/whatsapp"
	"github.com/brayancortes22/Accesorios-lilis-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registra los endpoints “/admin/*”. Requieren API key.
func SetupAdminRoutes(r *gin.RouterGroup, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Usuarios ───────────
		adminGroup.GET("/usuarios", usuarioControllers.GetAllUsuarios(db))

		// ─────────── Productos ───────────
		productoAdmin := adminGroup.Group("/productos")
		{
			productoAdmin.POST("", productocontroller.CrearProducto(db))
			productoAdmin.PUT("/:id", productocontroller.ActualizarProducto(db))
			productoAdmin.GET("", productocontroller.GetProductosAdmin(db))
			productoAdmin.DELETE("/:id", productocontroller.EliminarProducto(db))
			productoAdmin.PUT("/:id/stock", productocontroller.ActualizarStockHandler(db))
			productoAdmin.POST("/:id/stock/reducir", productocontroller.ReducirStockHandler(db))
			productoAdmin.POST("/import-excel", productocontroller.ImportarProductosExcel(db))
			productoAdmin.GET("/export-excel", productocontroller.ExportarProductosExcel(db))
		}

		// ─────────── Secciones ───────────
		seccionAdmin := adminGroup.Group("/secciones")
		{
			seccionAdmin.POST("", productocontroller.CrearSeccion(db))
			seccionAdmin.PUT("/:id", productocontroller.ActualizarSeccion(db))
			seccionAdmin.GET("", productocontroller.GetSecciones(db))
			seccionAdmin.DELETE("/:id", productocontroller.EliminarSeccion(db))
		}

		// ─────────── Roles ───────────
		rolAdmin := adminGroup.Group("/roles")
		{
			rolAdmin.POST("", usuarioControllers.CrearRol(db))
			rolAdmin.PUT("/:id", usuarioControllers.ActualizarRol(db))
			rolAdmin.GET("", usuarioControllers.GetRoles(db))
			rolAdmin.DELETE("/:id", usuarioControllers.EliminarRol(db))
		}

		// ─────────── Mensajes de WhatsApp ───────────
		whatsappAdmin := adminGroup.Group("/whatsapp")
		{
			whatsappAdmin.POST("", whatsappControllers.CrearMensajeHandler(db))
			whatsappAdmin.PUT("/:id/leido", whatsappControllers.MarcarLeidoHandler(db))
			whatsappAdmin.PUT("/:id/respondido", whatsappControllers.MarcarRespondidoHandler(db))
			whatsappAdmin.GET("/pedido/:pedido_id", whatsappControllers.GetMensajesPedidoHandler(db))
		}

		// ─────────── Carritos de usuarios ───────────
		carritoAdmin := adminGroup.Group("/carritos")
		{
			carritoAdmin.GET("/:usuario_id", carritoControllers.GetCarritoAdminHandler(db))
		}
	}
}
