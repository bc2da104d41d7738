package pedidoControllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	productocontroller "github.com/brayancortes22/Accesorios-lilis-sub000/controllers/producto"
	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	ErrCarritoVacio       = errors.New("el carrito está vacío")
	ErrSinCarritoActivo   = errors.New("el usuario no tiene carrito activo")
	ErrPedidoNoEncontrado = errors.New("pedido no encontrado")
	ErrTransicionInvalida = errors.New("transición de estado inválida")
	ErrEstadoDesconocido  = errors.New("estado de pedido desconocido")
)

// -------- Request Structs --------

type CrearPedidoRequest struct {
	UsuarioID string `json:"usuario_id" binding:"required"`
	Notas     string `json:"notas"`
}

type ActualizarEstadoRequest struct {
	Estado string `json:"estado" binding:"required"`
	Notas  string `json:"notas"`
}

// mapEstadoPedido valida el estado recibido por la API.
func mapEstadoPedido(estado string) (models.EstadoPedido, error) {
	switch models.EstadoPedido(estado) {
	case models.PedidoPendiente, models.PedidoConfirmado, models.PedidoEntregado, models.PedidoCancelado:
		return models.EstadoPedido(estado), nil
	default:
		return "", ErrEstadoDesconocido
	}
}

// -------- Core Logic --------

// CrearPedido materializa el carrito activo del usuario en un pedido
// inmutable. En una sola transacción: descuenta stock línea por línea (si
// alguna no alcanza, todo vuelve atrás), copia las líneas con su precio
// snapshot, emite el número del día, marca el carrito como Convertido y deja
// registrada la notificación de WhatsApp pendiente.
func CrearPedido(db *gorm.DB, req CrearPedidoRequest) (*models.Pedido, error) {
	var carrito models.Carrito
	err := db.Preload("Items", "activo = ?", true).
		Where("usuario_id = ? AND estado = ?", req.UsuarioID, models.CarritoActivo).
		First(&carrito).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSinCarritoActivo
		}
		return nil, err
	}
	if len(carrito.Items) == 0 {
		return nil, ErrCarritoVacio
	}

	var usuario models.Usuario
	if err := db.First(&usuario, "id = ?", req.UsuarioID).Error; err != nil {
		return nil, err
	}

	var pedido models.Pedido
	err = db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var items []models.PedidoItem

		for _, item := range carrito.Items {
			if err := productocontroller.ReducirStock(tx, item.ProductoID, item.Cantidad); err != nil {
				if errors.Is(err, productocontroller.ErrStockInsuficiente) {
					return fmt.Errorf("stock insuficiente para %s", item.NombreProducto)
				}
				return err
			}

			total += item.Subtotal
			items = append(items, models.PedidoItem{
				ProductoID:     item.ProductoID,
				NombreProducto: item.NombreProducto,
				Cantidad:       item.Cantidad,
				PrecioUnitario: item.PrecioUnitario,
				Subtotal:       item.Subtotal,
			})
		}

		numero, err := SiguienteNumero(tx, time.Now().UTC())
		if err != nil {
			return err
		}

		pedido = models.Pedido{
			UsuarioID:   req.UsuarioID,
			Numero:      numero,
			Estado:      models.PedidoPendiente,
			Total:       total,
			Notas:       req.Notas,
			Items:       items,
			FechaPedido: time.Now().UTC(),
		}
		if err := tx.Create(&pedido).Error; err != nil {
			return err
		}

		// el carrito queda cerrado y sin líneas
		if err := tx.Model(&models.Carrito{}).Where("id = ?", carrito.ID).
			Update("estado", models.CarritoConvertido).Error; err != nil {
			return err
		}
		if err := tx.Where("carrito_id = ?", carrito.ID).
			Delete(&models.CarritoItem{}).Error; err != nil {
			return err
		}

		mensaje := models.WhatsappMensaje{
			PedidoID:   pedido.ID,
			Telefono:   usuario.Telefono,
			Mensaje:    fmt.Sprintf("¡Hola %s! Recibimos tu pedido %s por un total de %.2f.", usuario.Nombre, numero, total),
			Estado:     models.MensajePendiente,
			FechaEnvio: time.Now().UTC(),
		}
		return tx.Create(&mensaje).Error
	})
	if err != nil {
		return nil, err
	}

	broadcastPedido("nuevo", &pedido)
	return &pedido, nil
}

// ActualizarEstado avanza el ciclo de vida del pedido validando la
// transición. Pasar a Entregado estampa FechaEntrega sólo si todavía no
// estaba puesta; repetir la entrega no corre la fecha.
func ActualizarEstado(db *gorm.DB, pedidoID uint, nuevoEstado models.EstadoPedido, notas string) (*models.Pedido, error) {
	var pedido models.Pedido
	if err := db.First(&pedido, pedidoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPedidoNoEncontrado
		}
		return nil, err
	}

	// repetir el estado actual es idempotente: en particular, volver a marcar
	// Entregado no corre la fecha de entrega ya estampada
	if nuevoEstado == pedido.Estado {
		return &pedido, nil
	}

	if !models.TransicionValida(pedido.Estado, nuevoEstado) {
		return nil, ErrTransicionInvalida
	}

	updates := map[string]interface{}{"estado": nuevoEstado}
	if notas != "" {
		updates["notas"] = notas
	}
	if nuevoEstado == models.PedidoEntregado && pedido.FechaEntrega == nil {
		ahora := time.Now().UTC()
		updates["fecha_entrega"] = &ahora
	}

	if err := db.Model(&pedido).Updates(updates).Error; err != nil {
		return nil, err
	}

	broadcastPedido("estado", &pedido)
	return &pedido, nil
}

// -------- Handlers --------

// POST /pedidos
func CrearPedidoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrearPedidoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pedido, err := CrearPedido(db, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrSinCarritoActivo), errors.Is(err, ErrCarritoVacio):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, pedido)
	}
}

// GET /pedidos (admin)
func GetPedidosHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pedidos []models.Pedido
		if err := db.
			Preload("Usuario").
			Preload("Items").
			Order("fecha_pedido DESC").
			Find(&pedidos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, pedidos)
	}
}

// GET /pedidos/usuario/:usuario_id
func GetPedidosUsuarioHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuarioID := c.Param("usuario_id")
		if usuarioID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "usuario_id es requerido"})
			return
		}
		var pedidos []models.Pedido
		if err := db.
			Where("usuario_id = ?", usuarioID).
			Preload("Items").
			Order("fecha_pedido DESC").
			Find(&pedidos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, pedidos)
	}
}

// GET /pedidos/:id — acepta id numérico o el número PEDyyyyMMddNNN
func GetPedidoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id es requerido"})
			return
		}

		var pedido models.Pedido
		query := db.Preload("Usuario").Preload("Items")
		if id[0] == 'P' {
			query = query.Where("numero = ?", id)
		} else {
			query = query.Where("id = ?", id)
		}
		if err := query.First(&pedido).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, pedido)
	}
}

// PUT /pedidos/:id/estado
func ActualizarEstadoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pedidoID, ok := parsePedidoIDParam(c)
		if !ok {
			return
		}

		var req ActualizarEstadoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		estado, err := mapEstadoPedido(req.Estado)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		pedido, err := ActualizarEstado(db, pedidoID, estado, req.Notas)
		if err != nil {
			switch {
			case errors.Is(err, ErrPedidoNoEncontrado):
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
			case errors.Is(err, ErrTransicionInvalida):
				c.JSON(http.StatusConflict, gin.H{"error": "Transición de estado inválida"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el estado"})
			}
			return
		}
		c.JSON(http.StatusOK, pedido)
	}
}

func parsePedidoIDParam(c *gin.Context) (uint, bool) {
	var id uint
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
		return 0, false
	}
	return id, true
}
