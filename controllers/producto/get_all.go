package productocontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductos lista el catálogo público: sólo productos activos, con
// filtros de búsqueda, sección, rango de precio y destacados.
func GetProductos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		seccionID := c.Query("seccion_id")
		minPrecioStr := c.Query("min_precio")
		maxPrecioStr := c.Query("max_precio")
		soloDestacados := c.Query("destacados") == "true"
		sortBy := c.DefaultQuery("sort_by", "created_at")
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Producto{}).Preload("Seccion").Where("activo = ?", true)

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("nombre ILIKE ? OR descripcion ILIKE ?", likePattern, likePattern)
		}

		if minPrecioStr != "" {
			if mp, err := strconv.ParseFloat(minPrecioStr, 64); err == nil {
				query = query.Where("precio >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "min_precio inválido"})
				return
			}
		}
		if maxPrecioStr != "" {
			if mp, err := strconv.ParseFloat(maxPrecioStr, 64); err == nil {
				query = query.Where("precio <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "max_precio inválido"})
				return
			}
		}

		if seccionID != "" {
			if sid, err := strconv.ParseUint(seccionID, 10, 64); err == nil {
				query = query.Where("seccion_id = ?", sid)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "seccion_id inválido"})
				return
			}
		}

		if soloDestacados {
			query = query.Where("destacado = ?", true)
		}

		// sólo columnas conocidas para ordenar
		switch sortBy {
		case "precio", "nombre", "created_at", "stock":
		default:
			sortBy = "created_at"
		}

		var productos []models.Producto
		if err := query.Order(sortBy + " " + sortOrder).Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar productos"})
			return
		}
		c.JSON(http.StatusOK, productos)
	}
}

// GetProductosAdmin lista todo el catálogo, incluidos los dados de baja.
func GetProductosAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productos []models.Producto
		if err := db.Preload("Seccion").Order("created_at desc").Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar productos"})
			return
		}
		c.JSON(http.StatusOK, productos)
	}
}
