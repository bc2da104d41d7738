package models

import "time"

type EstadoMensaje string

const (
	MensajePendiente  EstadoMensaje = "Pendiente"
	MensajeLeido      EstadoMensaje = "Leido"
	MensajeRespondido EstadoMensaje = "Respondido"
)

// WhatsappMensaje registra los intentos de notificación salientes ligados a
// un pedido. El envío real queda fuera; esto es solo la bitácora.
type WhatsappMensaje struct {
	ID              uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	PedidoID        uint          `gorm:"index;not null" json:"pedido_id"`
	Pedido          *Pedido       `gorm:"foreignKey:PedidoID" json:"-"`
	Telefono        string        `json:"telefono"`
	Mensaje         string        `json:"mensaje"`
	Estado          EstadoMensaje `gorm:"type:VARCHAR(20);default:'Pendiente'" json:"estado"`
	FechaEnvio      time.Time     `json:"fecha_envio"`
	FechaLeido      *time.Time    `json:"fecha_leido"`      // primera escritura gana
	FechaRespondido *time.Time    `json:"fecha_respondido"` // primera escritura gana
}
