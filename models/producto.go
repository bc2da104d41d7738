package models

import "time"

type Seccion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Codigo      string    `gorm:"uniqueIndex;not null" json:"codigo"`
	Nombre      string    `gorm:"not null" json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Activo      bool      `gorm:"default:true" json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
}

type Producto struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre      string   `gorm:"not null" json:"nombre"`
	Descripcion string   `json:"descripcion"`
	Precio      float64  `gorm:"not null;check:precio >= 0" json:"precio"`
	Stock       int      `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	SeccionID   uint     `gorm:"index" json:"seccion_id"`
	Seccion     *Seccion `gorm:"foreignKey:SeccionID" json:"seccion,omitempty"`
	Imagen      string   `json:"imagen"`
	Destacado   bool     `gorm:"default:false" json:"destacado"`
	Activo      bool     `gorm:"default:true" json:"activo"` // baja lógica, nunca se borra físicamente
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EnStock indica si el producto puede venderse en la cantidad pedida.
func (p *Producto) EnStock(cantidad int) bool {
	return p.Activo && p.Stock >= cantidad
}
