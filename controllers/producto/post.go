package productocontroller

import (
	"errors"
	"net/http"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CrearProductoRequest struct {
	Nombre      string  `json:"nombre" binding:"required"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	SeccionID   uint    `json:"seccion_id" binding:"required"`
	Imagen      string  `json:"imagen"`
	Destacado   bool    `json:"destacado"`
}

// CrearProducto da de alta un producto dentro de una sección existente.
func CrearProducto(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrearProductoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		var seccion models.Seccion
		if err := db.First(&seccion, req.SeccionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "La sección no existe"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo validar la sección"})
			}
			return
		}

		producto := models.Producto{
			Nombre:      req.Nombre,
			Descripcion: req.Descripcion,
			Precio:      req.Precio,
			Stock:       req.Stock,
			SeccionID:   req.SeccionID,
			Imagen:      req.Imagen,
			Destacado:   req.Destacado,
			Activo:      true,
		}

		if err := db.Create(&producto).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el producto"})
			return
		}

		c.JSON(http.StatusCreated, producto)
	}
}
