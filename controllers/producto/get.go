package productocontroller

import (
	"net/http"
	"strconv"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam lee y valida el parámetro :id; responde el error por su cuenta.
func parseIDParam(c *gin.Context) (uint, bool) {
	idParam := c.Param("id")
	if idParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El ID es requerido"})
		return 0, false
	}
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID inválido"})
		return 0, false
	}
	return uint(id), true
}

// GetProductoByID devuelve un producto con su sección.
// URL param: /productos/:id
func GetProductoByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var producto models.Producto
		if err := db.Preload("Seccion").First(&producto, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el producto"})
			}
			return
		}
		c.JSON(http.StatusOK, producto)
	}
}
