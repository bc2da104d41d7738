package whatsappControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var ErrMensajeNoEncontrado = errors.New("mensaje no encontrado")

type CrearMensajeRequest struct {
	PedidoID uint   `json:"pedido_id" binding:"required"`
	Telefono string `json:"telefono" binding:"required"`
	Mensaje  string `json:"mensaje" binding:"required"`
}

// CrearMensaje registra un intento de notificación ligado a un pedido.
func CrearMensaje(db *gorm.DB, pedidoID uint, telefono, texto string) (*models.WhatsappMensaje, error) {
	var pedido models.Pedido
	if err := db.First(&pedido, pedidoID).Error; err != nil {
		return nil, err
	}

	mensaje := models.WhatsappMensaje{
		PedidoID:   pedido.ID,
		Telefono:   telefono,
		Mensaje:    texto,
		Estado:     models.MensajePendiente,
		FechaEnvio: time.Now().UTC(),
	}
	if err := db.Create(&mensaje).Error; err != nil {
		return nil, err
	}
	return &mensaje, nil
}

// MarcarLeido avanza el mensaje a Leido. La fecha de lectura se estampa con
// un UPDATE condicionado a fecha_leido IS NULL: la primera escritura gana y
// las llamadas repetidas no la mueven. El estado nunca retrocede: leer un
// mensaje ya Respondido registra la fecha pero conserva Respondido.
func MarcarLeido(db *gorm.DB, mensajeID uint) (*models.WhatsappMensaje, error) {
	if err := db.Model(&models.WhatsappMensaje{}).
		Where("id = ? AND fecha_leido IS NULL", mensajeID).
		UpdateColumn("fecha_leido", time.Now().UTC()).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.WhatsappMensaje{}).
		Where("id = ? AND estado <> ?", mensajeID, models.MensajeRespondido).
		UpdateColumn("estado", models.MensajeLeido).Error; err != nil {
		return nil, err
	}

	var mensaje models.WhatsappMensaje
	if err := db.First(&mensaje, mensajeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMensajeNoEncontrado
		}
		return nil, err
	}
	return &mensaje, nil
}

// MarcarRespondido avanza el mensaje a Respondido con la misma regla de
// primera-escritura-gana sobre fecha_respondido.
func MarcarRespondido(db *gorm.DB, mensajeID uint) (*models.WhatsappMensaje, error) {
	if err := db.Model(&models.WhatsappMensaje{}).
		Where("id = ? AND fecha_respondido IS NULL", mensajeID).
		Updates(map[string]interface{}{
			"estado":           models.MensajeRespondido,
			"fecha_respondido": time.Now().UTC(),
		}).Error; err != nil {
		return nil, err
	}

	var mensaje models.WhatsappMensaje
	if err := db.First(&mensaje, mensajeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMensajeNoEncontrado
		}
		return nil, err
	}
	return &mensaje, nil
}

// -------- Handlers --------

// POST /admin/whatsapp
func CrearMensajeHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrearMensajeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		mensaje, err := CrearMensaje(db, req.PedidoID, req.Telefono, req.Mensaje)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "El pedido no existe"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar el mensaje"})
			return
		}
		c.JSON(http.StatusCreated, mensaje)
	}
}

// PUT /admin/whatsapp/:id/leido
func MarcarLeidoHandler(db *gorm.DB) gin.HandlerFunc {
	return marcarHandler(db, MarcarLeido)
}

// PUT /admin/whatsapp/:id/respondido
func MarcarRespondidoHandler(db *gorm.DB) gin.HandlerFunc {
	return marcarHandler(db, MarcarRespondido)
}

func marcarHandler(db *gorm.DB, marcar func(*gorm.DB, uint) (*models.WhatsappMensaje, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id inválido"})
			return
		}

		mensaje, err := marcar(db, uint(id))
		if err != nil {
			if errors.Is(err, ErrMensajeNoEncontrado) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Mensaje no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo actualizar el mensaje"})
			return
		}
		c.JSON(http.StatusOK, mensaje)
	}
}

// GET /admin/whatsapp/pedido/:pedido_id
func GetMensajesPedidoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pedidoID, err := strconv.ParseUint(c.Param("pedido_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pedido_id inválido"})
			return
		}

		var mensajes []models.WhatsappMensaje
		if err := db.Where("pedido_id = ?", pedidoID).
			Order("fecha_envio DESC").
			Find(&mensajes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo listar los mensajes"})
			return
		}
		c.JSON(http.StatusOK, mensajes)
	}
}
