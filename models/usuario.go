package models

import "time"

type Usuario struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Nombre       string    `json:"nombre"`
	Telefono     string    `json:"telefono"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RolID        *uint     `json:"rol_id"`
	Rol          *Rol      `gorm:"foreignKey:RolID" json:"rol,omitempty"`
	Direccion    Direccion `gorm:"embedded" json:"direccion"`
	Carritos     []Carrito `gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE" json:"-"`
	Pedidos      []Pedido  `gorm:"foreignKey:UsuarioID" json:"-"`
	Activo       bool      `gorm:"default:true" json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Direccion se embebe directamente en Usuario
type Direccion struct {
	Pais         string `json:"pais"`
	Departamento string `json:"departamento"`
	Ciudad       string `json:"ciudad"`
	Calle        string `json:"calle"`
	CodigoPostal string `json:"codigo_postal"`
}

type Rol struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Codigo      string    `gorm:"uniqueIndex;not null" json:"codigo"`
	Nombre      string    `gorm:"not null" json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Activo      bool      `gorm:"default:true" json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
}
