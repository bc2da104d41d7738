package routes

import (
	carritoControllers "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/carrito"
	productocontroller "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/producto"
	usuarioControllers "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/usuario"
	"github.com/brayancortes22/Accesorios-lilis-sub000/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUsuarioRoutes registra los endpoints “/usuario/*”. Requieren JWT.
func SetupUsuarioRoutes(r *gin.RouterGroup, db *gorm.DB) {
	usuarioGroup := r.Group("/usuario")
	usuarioGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Perfil ────────────────
		usuarioGroup.GET("/", usuarioControllers.GetUsuario(db))        // GET /api/usuario
		usuarioGroup.PUT("/", usuarioControllers.ActualizarUsuario(db)) // PUT /api/usuario

		// ──────────────── Carrito ────────────────
		carritoGroup := usuarioGroup.Group("/carrito")
		{
			carritoGroup.GET("/", carritoControllers.GetCarritoHandler(db))                     // GET /api/usuario/carrito
			carritoGroup.POST("/", carritoControllers.AgregarItemHandler(db))                   // POST /api/usuario/carrito
			carritoGroup.PUT("/:producto_id", carritoControllers.ActualizarCantidadHandler(db)) // PUT /api/usuario/carrito/:producto_id
			carritoGroup.DELETE("/:producto_id", carritoControllers.EliminarItemHandler(db))    // DELETE /api/usuario/carrito/:producto_id
			carritoGroup.DELETE("/", carritoControllers.VaciarCarritoHandler(db))               // DELETE /api/usuario/carrito
		}
	}

	// ──────────────── Catálogo público ────────────────
	r.GET("/productos", productocontroller.GetProductos(db))
	r.GET("/productos/:id", productocontroller.GetProductoByID(db))
	r.GET("/secciones", productocontroller.GetSecciones(db))
}
