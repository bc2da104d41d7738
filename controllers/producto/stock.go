package productocontroller

import (
	"errors"
	"net/http"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
	ErrCantidadInvalida     = errors.New("la cantidad debe ser mayor que cero")
)

type ReducirStockRequest struct {
	Cantidad int `json:"cantidad" binding:"required,min=1"`
}

type ActualizarStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// ReducirStock descuenta stock con un único UPDATE condicional
// (stock = stock - n sólo si stock >= n), así el chequeo y la escritura no
// dejan ventana entre sí y dos reducciones concurrentes no pueden sobrevender.
func ReducirStock(db *gorm.DB, productoID uint, cantidad int) error {
	if cantidad <= 0 {
		return ErrCantidadInvalida
	}

	res := db.Model(&models.Producto{}).
		Where("id = ? AND stock >= ?", productoID, cantidad).
		UpdateColumn("stock", gorm.Expr("stock - ?", cantidad))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// distinguir producto inexistente de stock corto
		var existe int64
		if err := db.Model(&models.Producto{}).Where("id = ?", productoID).Count(&existe).Error; err != nil {
			return err
		}
		if existe == 0 {
			return ErrProductoNoEncontrado
		}
		return ErrStockInsuficiente
	}
	return nil
}

// ActualizarStock fija el stock en un valor absoluto.
func ActualizarStock(db *gorm.DB, productoID uint, nuevoStock int) error {
	if nuevoStock < 0 {
		return ErrCantidadInvalida
	}

	res := db.Model(&models.Producto{}).
		Where("id = ?", productoID).
		UpdateColumn("stock", nuevoStock)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductoNoEncontrado
	}
	return nil
}

// POST /admin/productos/:id/stock/reducir
func ReducirStockHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req ReducirStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := ReducirStock(db, id, req.Cantidad); err != nil {
			switch {
			case errors.Is(err, ErrProductoNoEncontrado):
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			case errors.Is(err, ErrStockInsuficiente):
				c.JSON(http.StatusConflict, gin.H{"error": "Stock insuficiente"})
			case errors.Is(err, ErrCantidadInvalida):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo reducir el stock"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stock reducido"})
	}
}

// PUT /admin/productos/:id/stock
func ActualizarStockHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req ActualizarStockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := ActualizarStock(db, id, *req.Stock); err != nil {
			switch {
			case errors.Is(err, ErrProductoNoEncontrado):
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			case errors.Is(err, ErrCantidadInvalida):
				c.JSON(http.StatusBadRequest, gin.H{"error": "El stock no puede ser negativo"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el stock"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Stock actualizado"})
	}
}
