package usuarioControllers

import (
	"net/http"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ActualizarUsuarioInput struct {
	Nombre    *string           `json:"nombre"`
	Telefono  *string           `json:"telefono"`
	Direccion *models.Direccion `json:"direccion"`
}

// GET /usuario
func GetUsuario(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, _ := c.Get("user_id")
		var usuario models.Usuario

		if err := db.Preload("Rol").Preload("Pedidos").First(&usuario, "id = ?", usuarioID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}

		c.JSON(http.StatusOK, usuario)
	}
}

// GET /admin/usuarios
func GetAllUsuarios(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var usuarios []models.Usuario
		if err := db.
			Select("id", "email", "nombre", "telefono", "rol_id", "activo", "created_at").
			Order("created_at desc").
			Find(&usuarios).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar usuarios"})
			return
		}

		c.JSON(http.StatusOK, usuarios)
	}
}

// PUT /usuario
func ActualizarUsuario(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, _ := c.Get("user_id")
		var usuario models.Usuario

		if err := db.First(&usuario, "id = ?", usuarioID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}

		var input ActualizarUsuarioInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Nombre != nil {
			updates["nombre"] = *input.Nombre
		}
		if input.Telefono != nil {
			updates["telefono"] = *input.Telefono
		}
		if input.Direccion != nil {
			updates["pais"] = input.Direccion.Pais
			updates["departamento"] = input.Direccion.Departamento
			updates["ciudad"] = input.Direccion.Ciudad
			updates["calle"] = input.Direccion.Calle
			updates["codigo_postal"] = input.Direccion.CodigoPostal
		}

		if len(updates) > 0 {
			if err := db.Model(&usuario).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el usuario"})
				return
			}
		}

		c.JSON(http.StatusOK, usuario)
	}
}
