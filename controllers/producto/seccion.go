package productocontroller

import (
	"errors"
	"net/http"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SeccionRequest struct {
	Codigo      string `json:"codigo" binding:"required"`
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
}

// CrearSeccion da de alta una sección. El código es único; el índice de la
// base resuelve el duplicado de forma atómica y acá sólo se traduce a 409.
func CrearSeccion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SeccionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		seccion := models.Seccion{
			Codigo:      req.Codigo,
			Nombre:      req.Nombre,
			Descripcion: req.Descripcion,
			Activo:      true,
		}

		if err := db.Create(&seccion).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Ya existe una sección con ese código"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la sección"})
			return
		}

		c.JSON(http.StatusCreated, seccion)
	}
}

// GetSecciones lista todas las secciones con sus productos activos.
func GetSecciones(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var secciones []models.Seccion
		if err := db.Order("nombre asc").Find(&secciones).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar secciones"})
			return
		}
		c.JSON(http.StatusOK, secciones)
	}
}

// ActualizarSeccion modifica nombre/descripción/activo; el código no cambia.
func ActualizarSeccion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var input struct {
			Nombre      *string `json:"nombre"`
			Descripcion *string `json:"descripcion"`
			Activo      *bool   `json:"activo"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Nombre != nil {
			updates["nombre"] = *input.Nombre
		}
		if input.Descripcion != nil {
			updates["descripcion"] = *input.Descripcion
		}
		if input.Activo != nil {
			updates["activo"] = *input.Activo
		}

		res := db.Model(&models.Seccion{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar la sección"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sección no encontrada"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sección actualizada"})
	}
}

// EliminarSeccion desactiva la sección (baja lógica, igual que productos).
func EliminarSeccion(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		res := db.Model(&models.Seccion{}).Where("id = ?", id).Update("activo", false)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar la sección"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sección no encontrada"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Sección dada de baja"})
	}
}
