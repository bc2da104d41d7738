package models

import "time"

type EstadoPedido string

const (
	PedidoPendiente  EstadoPedido = "Pendiente"  // recién creado, a la espera de confirmación
	PedidoConfirmado EstadoPedido = "Confirmado" // confirmado por la tienda
	PedidoEntregado  EstadoPedido = "Entregado"  // entregado al cliente (terminal)
	PedidoCancelado  EstadoPedido = "Cancelado"  // cancelado antes de la entrega (terminal)
)

// transiciones legales del ciclo de vida de un pedido
var transicionesPedido = map[EstadoPedido][]EstadoPedido{
	PedidoPendiente:  {PedidoConfirmado, PedidoCancelado},
	PedidoConfirmado: {PedidoEntregado, PedidoCancelado},
	PedidoEntregado:  {},
	PedidoCancelado:  {},
}

// TransicionValida responde si un pedido puede pasar de un estado a otro.
func TransicionValida(desde, hacia EstadoPedido) bool {
	for _, e := range transicionesPedido[desde] {
		if e == hacia {
			return true
		}
	}
	return false
}

type Pedido struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID    string       `gorm:"index;not null" json:"usuario_id"`
	Usuario      *Usuario     `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Numero       string       `gorm:"uniqueIndex;not null" json:"numero"` // inmutable una vez asignado
	Estado       EstadoPedido `gorm:"type:VARCHAR(20);default:'Pendiente'" json:"estado"`
	Total        float64      `json:"total"`
	Notas        string       `json:"notas"`
	Items        []PedidoItem `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE" json:"items"`
	FechaPedido  time.Time    `json:"fecha_pedido"`
	FechaEntrega *time.Time   `json:"fecha_entrega"` // se estampa una sola vez, al pasar a Entregado
}

// PedidoItem es una copia de la línea de carrito al momento de crear el
// pedido; cambios posteriores de precio en el catálogo no lo alteran.
type PedidoItem struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PedidoID       uint      `gorm:"index" json:"pedido_id"`
	ProductoID     uint      `gorm:"index" json:"producto_id"`
	Producto       *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:RESTRICT" json:"-"`
	NombreProducto string    `json:"nombre_producto"`
	Cantidad       int       `gorm:"not null" json:"cantidad"`
	PrecioUnitario float64   `json:"precio_unitario"`
	Subtotal       float64   `json:"subtotal"`
}

// NumeradorPedido es el contador diario atómico detrás de los números de
// pedido: una fila por fecha (yyyyMMdd), incrementada dentro de la misma
// transacción que crea el pedido.
type NumeradorPedido struct {
	Fecha  string `gorm:"primaryKey;size:8"`
	Ultimo int    `gorm:"not null;default:0"`
}
