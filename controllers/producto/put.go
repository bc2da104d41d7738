package productocontroller

import (
	"errors"
	"net/http"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActualizarProductoRequest struct {
	Nombre      *string  `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio"`
	SeccionID   *uint    `json:"seccion_id"`
	Imagen      *string  `json:"imagen"`
	Destacado   *bool    `json:"destacado"`
	Activo      *bool    `json:"activo"`
}

// ActualizarProducto modifica sólo los campos presentes en el body. El stock
// se maneja aparte, por los endpoints de stock.
func ActualizarProducto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var producto models.Producto
		if err := db.First(&producto, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el producto"})
			}
			return
		}

		var req ActualizarProductoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Nombre != nil {
			updates["nombre"] = *req.Nombre
		}
		if req.Descripcion != nil {
			updates["descripcion"] = *req.Descripcion
		}
		if req.Precio != nil {
			if *req.Precio < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "El precio no puede ser negativo"})
				return
			}
			updates["precio"] = *req.Precio
		}
		if req.SeccionID != nil {
			var seccion models.Seccion
			if err := db.First(&seccion, *req.SeccionID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "La sección no existe"})
				return
			}
			updates["seccion_id"] = *req.SeccionID
		}
		if req.Imagen != nil {
			updates["imagen"] = *req.Imagen
		}
		if req.Destacado != nil {
			updates["destacado"] = *req.Destacado
		}
		if req.Activo != nil {
			updates["activo"] = *req.Activo
		}

		if len(updates) == 0 {
			c.JSON(http.StatusOK, producto)
			return
		}

		if err := db.Model(&producto).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el producto"})
			return
		}

		c.JSON(http.StatusOK, producto)
	}
}
