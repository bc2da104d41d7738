package usuarioControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RolRequest struct {
	Codigo      string `json:"codigo" binding:"required"`
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
}

// POST /admin/roles — el código es único, el índice resuelve duplicados.
func CrearRol(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		rol := models.Rol{
			Codigo:      req.Codigo,
			Nombre:      req.Nombre,
			Descripcion: req.Descripcion,
			Activo:      true,
		}
		if err := db.Create(&rol).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un rol con ese código"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear el rol"})
			return
		}
		c.JSON(http.StatusCreated, rol)
	}
}

// GET /admin/roles
func GetRoles(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roles []models.Rol
		if err := db.Order("codigo asc").Find(&roles).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar roles"})
			return
		}
		c.JSON(http.StatusOK, roles)
	}
}

// PUT /admin/roles/:id — modifica nombre/descripción/activo; el código no cambia.
func ActualizarRol(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
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

		res := db.Model(&models.Rol{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el rol"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rol no encontrado"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Rol actualizado"})
	}
}

// DELETE /admin/roles/:id — baja lógica
func EliminarRol(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}

		res := db.Model(&models.Rol{}).Where("id = ?", id).Update("activo", false)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el rol"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rol no encontrado"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Rol dado de baja"})
	}
}
