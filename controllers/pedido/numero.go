package pedidoControllers

import (
	"fmt"
	"time"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"gorm.io/gorm"
)

const prefijoNumero = "PED"

// SiguienteNumero emite el próximo número de pedido del día con el formato
// PED<yyyyMMdd><secuencia de 3 dígitos>, p. ej. PED20250709001.
//
// El número sale de un contador por fecha (NumeradorPedido) incrementado con
// un único UPDATE; llamado dentro de la transacción que crea el pedido, el
// lock de fila que deja ese UPDATE garantiza que dos pedidos del mismo día
// nunca compartan secuencia, a diferencia del clásico "leer el último número
// y sumarle uno".
func SiguienteNumero(tx *gorm.DB, fecha time.Time) (string, error) {
	clave := fecha.UTC().Format("20060102")

	res := tx.Model(&models.NumeradorPedido{}).
		Where("fecha = ?", clave).
		UpdateColumn("ultimo", gorm.Expr("ultimo + 1"))
	if res.Error != nil {
		return "", res.Error
	}

	if res.RowsAffected == 0 {
		// primer pedido de la fecha: alta del contador en 1
		if err := tx.Create(&models.NumeradorPedido{Fecha: clave, Ultimo: 1}).Error; err != nil {
			// otro pedido ganó el alta en simultáneo; la transacción
			// completa se reintenta desde el caller
			return "", err
		}
		return fmt.Sprintf("%s%s%03d", prefijoNumero, clave, 1), nil
	}

	var numerador models.NumeradorPedido
	if err := tx.First(&numerador, "fecha = ?", clave).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%03d", prefijoNumero, clave, numerador.Ultimo), nil
}
