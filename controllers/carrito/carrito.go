package carritoControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrProductoNoDisponible = errors.New("producto no disponible")
	ErrStockInsuficiente    = errors.New("stock insuficiente para la cantidad pedida")
	ErrCarritoNoEncontrado  = errors.New("carrito no encontrado")
	ErrItemNoEncontrado     = errors.New("ítem no encontrado en el carrito")
)

type AgregarItemRequest struct {
	ProductoID uint `json:"producto_id" binding:"required"`
	Cantidad   int  `json:"cantidad" binding:"required,min=1"`
}

type ActualizarCantidadRequest struct {
	Cantidad int `json:"cantidad" binding:"required,min=1"`
}

// CarritoActivo devuelve el carrito Activo del usuario, creándolo si no hay.
// A lo sumo existe uno por usuario con ese estado.
func CarritoActivo(db *gorm.DB, usuarioID string) (*models.Carrito, error) {
	var carrito models.Carrito
	err := db.Where("usuario_id = ? AND estado = ?", usuarioID, models.CarritoActivo).
		First(&carrito).Error
	if err == nil {
		return &carrito, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	carrito = models.Carrito{UsuarioID: usuarioID, Estado: models.CarritoActivo}
	if err := db.Create(&carrito).Error; err != nil {
		return nil, err
	}
	return &carrito, nil
}

// BuscarCarritoActivo devuelve el carrito Activo del usuario con sus líneas,
// sin crearlo si no existe.
func BuscarCarritoActivo(db *gorm.DB, usuarioID string) (*models.Carrito, error) {
	var carrito models.Carrito
	err := db.Preload("Items").
		Where("usuario_id = ? AND estado = ?", usuarioID, models.CarritoActivo).
		First(&carrito).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCarritoNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &carrito, nil
}

// AgregarItem suma un producto al carrito activo: si ya hay una línea para
// ese producto se incrementa su cantidad, si no se inserta una nueva con el
// precio vigente como snapshot. El subtotal se recalcula siempre acá.
func AgregarItem(db *gorm.DB, usuarioID string, productoID uint, cantidad int) (*models.CarritoItem, error) {
	var producto models.Producto
	if err := db.First(&producto, productoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductoNoDisponible
		}
		return nil, err
	}
	if !producto.Activo {
		return nil, ErrProductoNoDisponible
	}

	carrito, err := CarritoActivo(db, usuarioID)
	if err != nil {
		return nil, err
	}

	var item models.CarritoItem
	err = db.Where("carrito_id = ? AND producto_id = ?", carrito.ID, productoID).
		First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if !producto.EnStock(cantidad) {
			return nil, ErrStockInsuficiente
		}
		item = models.CarritoItem{
			CarritoID:      carrito.ID,
			ProductoID:     producto.ID,
			NombreProducto: producto.Nombre,
			Cantidad:       cantidad,
			PrecioUnitario: producto.Precio,
			Activo:         true,
			AgregadoEn:     time.Now(),
		}
		item.RecalcularSubtotal()
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}

	nuevaCantidad := item.Cantidad + cantidad
	if !producto.EnStock(nuevaCantidad) {
		return nil, ErrStockInsuficiente
	}
	item.Cantidad = nuevaCantidad
	item.AgregadoEn = time.Now()
	item.RecalcularSubtotal()
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ActualizarCantidad fija la cantidad de una línea existente y recalcula su
// subtotal, revalidando el stock disponible.
func ActualizarCantidad(db *gorm.DB, usuarioID string, productoID uint, cantidad int) (*models.CarritoItem, error) {
	carrito, err := CarritoActivo(db, usuarioID)
	if err != nil {
		return nil, err
	}

	var item models.CarritoItem
	if err := db.Where("carrito_id = ? AND producto_id = ?", carrito.ID, productoID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNoEncontrado
		}
		return nil, err
	}

	var producto models.Producto
	if err := db.First(&producto, productoID).Error; err != nil {
		return nil, err
	}
	if !producto.EnStock(cantidad) {
		return nil, ErrStockInsuficiente
	}

	item.Cantidad = cantidad
	item.RecalcularSubtotal()
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// EliminarItem saca una línea del carrito activo.
func EliminarItem(db *gorm.DB, usuarioID string, productoID uint) error {
	carrito, err := CarritoActivo(db, usuarioID)
	if err != nil {
		return err
	}

	res := db.Where("carrito_id = ? AND producto_id = ?", carrito.ID, productoID).
		Delete(&models.CarritoItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNoEncontrado
	}
	return nil
}

// VaciarCarrito borra todas las líneas del carrito, sin mirar su bandera
// activo.
func VaciarCarrito(db *gorm.DB, carritoID uint) error {
	return db.Where("carrito_id = ?", carritoID).Delete(&models.CarritoItem{}).Error
}

// TotalCarrito suma los subtotales de las líneas activas.
func TotalCarrito(db *gorm.DB, carritoID uint) (float64, error) {
	var total float64
	err := db.Model(&models.CarritoItem{}).
		Where("carrito_id = ? AND activo = ?", carritoID, true).
		Select("COALESCE(SUM(subtotal), 0)").
		Scan(&total).Error
	return total, err
}

// CantidadItems suma las cantidades de las líneas activas.
func CantidadItems(db *gorm.DB, carritoID uint) (int, error) {
	var cantidad int
	err := db.Model(&models.CarritoItem{}).
		Where("carrito_id = ? AND activo = ?", carritoID, true).
		Select("COALESCE(SUM(cantidad), 0)").
		Scan(&cantidad).Error
	return cantidad, err
}

// -------- Handlers --------

// GET /usuario/carrito
func GetCarritoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, ok := usuarioDesdeContexto(c)
		if !ok {
			return
		}

		carrito, err := CarritoActivo(db, usuarioID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el carrito"})
			return
		}

		var items []models.CarritoItem
		if err := db.Where("carrito_id = ?", carrito.ID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el carrito"})
			return
		}

		total, err := TotalCarrito(db, carrito.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo calcular el total"})
			return
		}
		cantidad, err := CantidadItems(db, carrito.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo calcular el total"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"carrito_id":     carrito.ID,
			"estado":         carrito.Estado,
			"items":          items,
			"total":          total,
			"cantidad_items": cantidad,
		})
	}
}

// POST /usuario/carrito
func AgregarItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, ok := usuarioDesdeContexto(c)
		if !ok {
			return
		}

		var req AgregarItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		item, err := AgregarItem(db, usuarioID, req.ProductoID, req.Cantidad)
		if err != nil {
			responderErrorCarrito(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /usuario/carrito/:producto_id
func ActualizarCantidadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, ok := usuarioDesdeContexto(c)
		if !ok {
			return
		}
		productoID, ok := parseProductoIDParam(c)
		if !ok {
			return
		}

		var req ActualizarCantidadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		item, err := ActualizarCantidad(db, usuarioID, productoID, req.Cantidad)
		if err != nil {
			responderErrorCarrito(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /usuario/carrito/:producto_id
func EliminarItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, ok := usuarioDesdeContexto(c)
		if !ok {
			return
		}
		productoID, ok := parseProductoIDParam(c)
		if !ok {
			return
		}

		if err := EliminarItem(db, usuarioID, productoID); err != nil {
			responderErrorCarrito(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Ítem eliminado del carrito"})
	}
}

// DELETE /usuario/carrito
func VaciarCarritoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID, ok := usuarioDesdeContexto(c)
		if !ok {
			return
		}

		carrito, err := CarritoActivo(db, usuarioID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el carrito"})
			return
		}

		if err := VaciarCarrito(db, carrito.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo vaciar el carrito"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Carrito vaciado"})
	}
}

// GET /admin/carritos/:usuario_id
func GetCarritoAdminHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.Param("usuario_id")
		if usuarioID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "usuario_id es requerido"})
			return
		}

		carrito, err := BuscarCarritoActivo(db, usuarioID)
		if err != nil {
			if errors.Is(err, ErrCarritoNoEncontrado) {
				c.JSON(http.StatusNotFound, gin.H{"error": "El usuario no tiene carrito activo"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener el carrito"})
			return
		}
		c.JSON(http.StatusOK, carrito)
	}
}

// -------- Helpers --------

func usuarioDesdeContexto(c *gin.Context) (string, bool) {
	usuarioIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return "", false
	}
	usuarioID, ok := usuarioIDVal.(string)
	if !ok || usuarioID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No autorizado"})
		return "", false
	}
	return usuarioID, true
}

func parseProductoIDParam(c *gin.Context) (uint, bool) {
	idParam := c.Param("producto_id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "producto_id inválido"})
		return 0, false
	}
	return uint(id), true
}

func responderErrorCarrito(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductoNoDisponible):
		c.JSON(http.StatusBadRequest, gin.H{"error": "El producto no existe o no está disponible"})
	case errors.Is(err, ErrStockInsuficiente):
		c.JSON(http.StatusConflict, gin.H{"error": "Stock insuficiente"})
	case errors.Is(err, ErrItemNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ítem no encontrado en el carrito"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al operar sobre el carrito"})
	}
}
