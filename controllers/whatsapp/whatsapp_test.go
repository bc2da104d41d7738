package whatsappControllers

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
		&models.Usuario{},
		&models.Pedido{},
		&models.PedidoItem{},
		&models.WhatsappMensaje{},
	))
	return db
}

func sembrarPedido(t *testing.T, db *gorm.DB) models.Pedido {
	t.Helper()

	usuario := models.Usuario{ID: "usuario-1", Email: "cliente@example.com", PasswordHash: "x", Activo: true}
	require.NoError(t, db.Create(&usuario).Error)

	pedido := models.Pedido{
		UsuarioID:   usuario.ID,
		Numero:      "PED20250709001",
		Estado:      models.PedidoPendiente,
		Total:       25.00,
		FechaPedido: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&pedido).Error)
	return pedido
}

func TestCrearMensaje(t *testing.T) {
	db := setupTestDB(t)
	pedido := sembrarPedido(t, db)

	mensaje, err := CrearMensaje(db, pedido.ID, "+573001112233", "Tu pedido está confirmado")
	require.NoError(t, err)
	require.Equal(t, models.MensajePendiente, mensaje.Estado)
	require.False(t, mensaje.FechaEnvio.IsZero())
	require.Nil(t, mensaje.FechaLeido)
	require.Nil(t, mensaje.FechaRespondido)

	// no se puede colgar un mensaje de un pedido inexistente
	_, err = CrearMensaje(db, 9999, "+573001112233", "hola")
	require.Error(t, err)
}

func TestMarcarLeido_PrimeraEscrituraGana(t *testing.T) {
	db := setupTestDB(t)
	pedido := sembrarPedido(t, db)

	creado, err := CrearMensaje(db, pedido.ID, "+573001112233", "Tu pedido salió")
	require.NoError(t, err)

	leido, err := MarcarLeido(db, creado.ID)
	require.NoError(t, err)
	require.Equal(t, models.MensajeLeido, leido.Estado)
	require.NotNil(t, leido.FechaLeido)
	primeraFecha := *leido.FechaLeido

	time.Sleep(10 * time.Millisecond)

	// marcar de nuevo no corre la fecha original
	repetido, err := MarcarLeido(db, creado.ID)
	require.NoError(t, err)
	require.Equal(t, primeraFecha, *repetido.FechaLeido)
}

func TestMarcarRespondido_PrimeraEscrituraGana(t *testing.T) {
	db := setupTestDB(t)
	pedido := sembrarPedido(t, db)

	creado, err := CrearMensaje(db, pedido.ID, "+573001112233", "¿Te llegó?")
	require.NoError(t, err)

	respondido, err := MarcarRespondido(db, creado.ID)
	require.NoError(t, err)
	require.Equal(t, models.MensajeRespondido, respondido.Estado)
	require.NotNil(t, respondido.FechaRespondido)
	primeraFecha := *respondido.FechaRespondido

	time.Sleep(10 * time.Millisecond)

	repetido, err := MarcarRespondido(db, creado.ID)
	require.NoError(t, err)
	require.Equal(t, primeraFecha, *repetido.FechaRespondido)
}

func TestMarcarLeido_NoRetrocedeDeRespondido(t *testing.T) {
	db := setupTestDB(t)
	pedido := sembrarPedido(t, db)

	creado, err := CrearMensaje(db, pedido.ID, "+573001112233", "¿Te llegó?")
	require.NoError(t, err)

	_, err = MarcarRespondido(db, creado.ID)
	require.NoError(t, err)

	// leer después de responder estampa la fecha pero conserva el estado
	mensaje, err := MarcarLeido(db, creado.ID)
	require.NoError(t, err)
	require.Equal(t, models.MensajeRespondido, mensaje.Estado)
	require.NotNil(t, mensaje.FechaLeido)
	require.NotNil(t, mensaje.FechaRespondido)
}

func TestMarcar_MensajeInexistente(t *testing.T) {
	db := setupTestDB(t)

	_, err := MarcarLeido(db, 9999)
	require.ErrorIs(t, err, ErrMensajeNoEncontrado)
	_, err = MarcarRespondido(db, 9999)
	require.ErrorIs(t, err, ErrMensajeNoEncontrado)
}
