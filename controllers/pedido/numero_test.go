package pedidoControllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Rol{},
		&models.Usuario{},
		&models.Seccion{},
		&models.Producto{},
		&models.Carrito{},
		&models.CarritoItem{},
		&models.Pedido{},
		&models.PedidoItem{},
		&models.NumeradorPedido{},
		&models.WhatsappMensaje{},
	))
	return db
}

func TestSiguienteNumero_SecuenciaDelDia(t *testing.T) {
	db := setupTestDB(t)
	fecha := time.Date(2025, 7, 9, 15, 30, 0, 0, time.UTC)

	n1, err := SiguienteNumero(db, fecha)
	require.NoError(t, err)
	require.Equal(t, "PED20250709001", n1)

	n2, err := SiguienteNumero(db, fecha)
	require.NoError(t, err)
	require.Equal(t, "PED20250709002", n2)

	n3, err := SiguienteNumero(db, fecha)
	require.NoError(t, err)
	require.Equal(t, "PED20250709003", n3)
}

func TestSiguienteNumero_FechasDistintas(t *testing.T) {
	db := setupTestDB(t)

	dia1 := time.Date(2025, 7, 9, 23, 0, 0, 0, time.UTC)
	dia2 := time.Date(2025, 7, 10, 1, 0, 0, 0, time.UTC)

	n1, err := SiguienteNumero(db, dia1)
	require.NoError(t, err)
	n2, err := SiguienteNumero(db, dia2)
	require.NoError(t, err)

	require.Equal(t, "PED20250709001", n1)
	require.Equal(t, "PED20250710001", n2)

	// cada fecha arranca su propia secuencia
	n3, err := SiguienteNumero(db, dia1)
	require.NoError(t, err)
	require.Equal(t, "PED20250709002", n3)
}

func TestSiguienteNumero_RellenoConCeros(t *testing.T) {
	db := setupTestDB(t)
	fecha := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	// con el contador ya en 99, el siguiente es 100 sin relleno extra
	require.NoError(t, db.Create(&models.NumeradorPedido{Fecha: "20250102", Ultimo: 99}).Error)

	n, err := SiguienteNumero(db, fecha)
	require.NoError(t, err)
	require.Equal(t, "PED20250102100", n)
}
