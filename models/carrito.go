package models

import "time"

type EstadoCarrito string

const (
	CarritoActivo     EstadoCarrito = "Activo"     // carrito en uso, a lo sumo uno por usuario
	CarritoConvertido EstadoCarrito = "Convertido" // ya materializado en un pedido
	CarritoAbandonado EstadoCarrito = "Abandonado" // sin actividad, cerrado por el barrido diario
)

type Carrito struct {
	ID        uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID string        `gorm:"index;not null" json:"usuario_id"`
	Estado    EstadoCarrito `gorm:"type:VARCHAR(20);default:'Activo'" json:"estado"`
	Items     []CarritoItem `gorm:"foreignKey:CarritoID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

type CarritoItem struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CarritoID      uint      `gorm:"index" json:"carrito_id"`
	ProductoID     uint      `gorm:"index" json:"producto_id"`
	Producto       *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:RESTRICT" json:"-"`
	NombreProducto string    `json:"nombre_producto"`
	Cantidad       int       `gorm:"not null;check:cantidad >= 1" json:"cantidad"`
	PrecioUnitario float64   `json:"precio_unitario"` // precio al momento de agregar, no sigue al catálogo
	Subtotal       float64   `json:"subtotal"`
	Activo         bool      `gorm:"default:true" json:"activo"`
	AgregadoEn     time.Time `json:"agregado_en"`
}

// RecalcularSubtotal se llama en cada alta o cambio de cantidad; el subtotal
// nunca se acepta desde afuera.
func (i *CarritoItem) RecalcularSubtotal() {
	i.Subtotal = i.PrecioUnitario * float64(i.Cantidad)
}
