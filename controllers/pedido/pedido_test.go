package pedidoControllers

import (
	"testing"
	"time"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sembrarUsuarioConCarrito(t *testing.T, db *gorm.DB) (models.Usuario, models.Carrito) {
	t.Helper()

	usuario := models.Usuario{
		ID:           "usuario-1",
		Email:        "cliente@example.com",
		Nombre:       "Clara",
		Telefono:     "+573001112233",
		PasswordHash: "x",
		Activo:       true,
	}
	require.NoError(t, db.Create(&usuario).Error)

	carrito := models.Carrito{UsuarioID: usuario.ID, Estado: models.CarritoActivo}
	require.NoError(t, db.Create(&carrito).Error)
	return usuario, carrito
}

func sembrarProducto(t *testing.T, db *gorm.DB, nombre string, precio float64, stock int) models.Producto {
	t.Helper()

	seccion := models.Seccion{Codigo: "SEC-" + nombre, Nombre: "Sección " + nombre, Activo: true}
	require.NoError(t, db.Create(&seccion).Error)

	producto := models.Producto{
		Nombre:    nombre,
		Precio:    precio,
		Stock:     stock,
		SeccionID: seccion.ID,
		Activo:    true,
	}
	require.NoError(t, db.Create(&producto).Error)
	return producto
}

func agregarLinea(t *testing.T, db *gorm.DB, carrito models.Carrito, producto models.Producto, cantidad int) models.CarritoItem {
	t.Helper()

	item := models.CarritoItem{
		CarritoID:      carrito.ID,
		ProductoID:     producto.ID,
		NombreProducto: producto.Nombre,
		Cantidad:       cantidad,
		PrecioUnitario: producto.Precio,
		Activo:         true,
		AgregadoEn:     time.Now(),
	}
	item.RecalcularSubtotal()
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestCrearPedido_DesdeCarrito(t *testing.T) {
	db := setupTestDB(t)
	usuario, carrito := sembrarUsuarioConCarrito(t, db)

	productoA := sembrarProducto(t, db, "Collar luna", 10.00, 5)
	productoB := sembrarProducto(t, db, "Aros plata", 5.00, 3)
	agregarLinea(t, db, carrito, productoA, 2)
	agregarLinea(t, db, carrito, productoB, 1)

	pedido, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario.ID, Notas: "entregar de tarde"})
	require.NoError(t, err)

	require.Equal(t, models.PedidoPendiente, pedido.Estado)
	require.Equal(t, 25.00, pedido.Total)
	require.Len(t, pedido.Items, 2)
	require.Regexp(t, `^PED\d{8}\d{3}$`, pedido.Numero)
	require.False(t, pedido.FechaPedido.IsZero())
	require.Nil(t, pedido.FechaEntrega)

	// el stock quedó descontado
	var a, b models.Producto
	require.NoError(t, db.First(&a, productoA.ID).Error)
	require.NoError(t, db.First(&b, productoB.ID).Error)
	require.Equal(t, 3, a.Stock)
	require.Equal(t, 2, b.Stock)

	// el carrito quedó convertido y sin líneas
	var convertido models.Carrito
	require.NoError(t, db.First(&convertido, carrito.ID).Error)
	require.Equal(t, models.CarritoConvertido, convertido.Estado)
	var lineas int64
	require.NoError(t, db.Model(&models.CarritoItem{}).Where("carrito_id = ?", carrito.ID).Count(&lineas).Error)
	require.Zero(t, lineas)

	// quedó registrada la notificación pendiente
	var mensaje models.WhatsappMensaje
	require.NoError(t, db.Where("pedido_id = ?", pedido.ID).First(&mensaje).Error)
	require.Equal(t, models.MensajePendiente, mensaje.Estado)
	require.Equal(t, usuario.Telefono, mensaje.Telefono)
}

func TestCrearPedido_SnapshotDePrecios(t *testing.T) {
	db := setupTestDB(t)
	usuario, carrito := sembrarUsuarioConCarrito(t, db)

	producto := sembrarProducto(t, db, "Anillo oro", 100.00, 10)
	agregarLinea(t, db, carrito, producto, 1)

	// el precio de catálogo sube antes de crear el pedido
	require.NoError(t, db.Model(&producto).Update("precio", 999.00).Error)

	pedido, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario.ID})
	require.NoError(t, err)

	// el pedido conserva el precio al momento de agregar al carrito
	require.Equal(t, 100.00, pedido.Total)
	require.Equal(t, 100.00, pedido.Items[0].PrecioUnitario)
}

func TestCrearPedido_StockInsuficienteRevierteTodo(t *testing.T) {
	db := setupTestDB(t)
	usuario, carrito := sembrarUsuarioConCarrito(t, db)

	conStock := sembrarProducto(t, db, "Pulsera", 8.00, 10)
	sinStock := sembrarProducto(t, db, "Dije", 4.00, 1)
	agregarLinea(t, db, carrito, conStock, 2)
	agregarLinea(t, db, carrito, sinStock, 5) // pide más de lo que hay

	_, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario.ID})
	require.Error(t, err)
	require.Contains(t, err.Error(), "stock insuficiente")

	// nada quedó a medias: ni stock descontado, ni pedido, ni carrito tocado
	var p models.Producto
	require.NoError(t, db.First(&p, conStock.ID).Error)
	require.Equal(t, 10, p.Stock)

	var pedidos int64
	require.NoError(t, db.Model(&models.Pedido{}).Count(&pedidos).Error)
	require.Zero(t, pedidos)

	var activo models.Carrito
	require.NoError(t, db.First(&activo, carrito.ID).Error)
	require.Equal(t, models.CarritoActivo, activo.Estado)
}

func TestCrearPedido_SinCarritoOVacio(t *testing.T) {
	db := setupTestDB(t)

	_, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: "nadie"})
	require.ErrorIs(t, err, ErrSinCarritoActivo)

	usuario, _ := sembrarUsuarioConCarrito(t, db)
	_, err = CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario.ID})
	require.ErrorIs(t, err, ErrCarritoVacio)
}

func TestCrearPedido_NumerosConsecutivosMismoDia(t *testing.T) {
	db := setupTestDB(t)

	usuario1, carrito1 := sembrarUsuarioConCarrito(t, db)
	producto := sembrarProducto(t, db, "Collar sol", 12.00, 20)
	agregarLinea(t, db, carrito1, producto, 1)

	usuario2 := models.Usuario{ID: "usuario-2", Email: "otra@example.com", PasswordHash: "x", Activo: true}
	require.NoError(t, db.Create(&usuario2).Error)
	carrito2 := models.Carrito{UsuarioID: usuario2.ID, Estado: models.CarritoActivo}
	require.NoError(t, db.Create(&carrito2).Error)
	agregarLinea(t, db, carrito2, producto, 1)

	p1, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario1.ID})
	require.NoError(t, err)
	p2, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario2.ID})
	require.NoError(t, err)

	require.Equal(t, p1.Numero[:11], p2.Numero[:11]) // mismo prefijo PED+fecha
	require.Equal(t, "001", p1.Numero[11:])
	require.Equal(t, "002", p2.Numero[11:])
}

func TestActualizarEstado_CicloDeVida(t *testing.T) {
	db := setupTestDB(t)
	usuario, carrito := sembrarUsuarioConCarrito(t, db)
	producto := sembrarProducto(t, db, "Tobillera", 6.00, 5)
	agregarLinea(t, db, carrito, producto, 1)

	pedido, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario.ID})
	require.NoError(t, err)

	// Pendiente → Entregado es ilegal, hay que pasar por Confirmado
	_, err = ActualizarEstado(db, pedido.ID, models.PedidoEntregado, "")
	require.ErrorIs(t, err, ErrTransicionInvalida)

	_, err = ActualizarEstado(db, pedido.ID, models.PedidoConfirmado, "confirmado por la tienda")
	require.NoError(t, err)

	actualizado, err := ActualizarEstado(db, pedido.ID, models.PedidoEntregado, "")
	require.NoError(t, err)
	require.Equal(t, models.PedidoEntregado, actualizado.Estado)

	var entregado models.Pedido
	require.NoError(t, db.First(&entregado, pedido.ID).Error)
	require.NotNil(t, entregado.FechaEntrega)
	primeraFecha := *entregado.FechaEntrega

	// repetir Entregado es idempotente: la fecha no se mueve
	_, err = ActualizarEstado(db, pedido.ID, models.PedidoEntregado, "")
	require.NoError(t, err)
	require.NoError(t, db.First(&entregado, pedido.ID).Error)
	require.Equal(t, primeraFecha, *entregado.FechaEntrega)

	// un pedido entregado ya no puede cancelarse
	_, err = ActualizarEstado(db, pedido.ID, models.PedidoCancelado, "")
	require.ErrorIs(t, err, ErrTransicionInvalida)
}

func TestActualizarEstado_CanceladoEsTerminal(t *testing.T) {
	db := setupTestDB(t)
	usuario, carrito := sembrarUsuarioConCarrito(t, db)
	producto := sembrarProducto(t, db, "Broche", 3.00, 5)
	agregarLinea(t, db, carrito, producto, 1)

	pedido, err := CrearPedido(db, CrearPedidoRequest{UsuarioID: usuario.ID})
	require.NoError(t, err)

	_, err = ActualizarEstado(db, pedido.ID, models.PedidoCancelado, "cliente se arrepintió")
	require.NoError(t, err)

	_, err = ActualizarEstado(db, pedido.ID, models.PedidoConfirmado, "")
	require.ErrorIs(t, err, ErrTransicionInvalida)
	_, err = ActualizarEstado(db, pedido.ID, models.PedidoEntregado, "")
	require.ErrorIs(t, err, ErrTransicionInvalida)
}

func TestActualizarEstado_PedidoInexistente(t *testing.T) {
	db := setupTestDB(t)

	_, err := ActualizarEstado(db, 12345, models.PedidoConfirmado, "")
	require.ErrorIs(t, err, ErrPedidoNoEncontrado)
}
