package productocontroller

import (
	"net/http"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EliminarProducto da de baja lógica: los productos referenciados por líneas
// de carrito o pedido nunca se borran físicamente, sólo se desactivan.
func EliminarProducto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		res := db.Model(&models.Producto{}).Where("id = ?", id).Update("activo", false)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el producto"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Producto dado de baja"})
	}
}
