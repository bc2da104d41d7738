package productocontroller

import (
	"strconv"
	"testing"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func hojaDeProductos(t *testing.T, filas [][]string) *xlsx.Sheet {
	t.Helper()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Productos")
	require.NoError(t, err)

	encabezado := sheet.AddRow()
	for _, h := range []string{"ID", "Nombre", "Descripcion", "Precio", "Stock", "SeccionID", "Imagen", "Destacado"} {
		encabezado.AddCell().SetValue(h)
	}
	for _, fila := range filas {
		row := sheet.AddRow()
		for _, celda := range fila {
			row.AddCell().SetValue(celda)
		}
	}
	return sheet
}

func TestImportarFilas_StockIlegibleSeOmite(t *testing.T) {
	db := setupTestDB(t)

	seccion := models.Seccion{Codigo: "JOYAS", Nombre: "Joyas", Activo: true}
	require.NoError(t, db.Create(&seccion).Error)
	sid := strconv.FormatUint(uint64(seccion.ID), 10)

	sheet := hojaDeProductos(t, [][]string{
		{"", "Collar luna", "", "25.00", "10", sid, "", "false"},
		{"", "Anillo sol", "", "12.00", "muchos", sid, "", "false"},
	})

	creados, actualizados, omitidos := importarFilas(db, sheet)
	require.Equal(t, 1, creados)
	require.Equal(t, 0, actualizados)
	require.Equal(t, 1, omitidos)

	// la fila ilegible no entra con stock cero
	var cuenta int64
	require.NoError(t, db.Model(&models.Producto{}).
		Where("nombre = ?", "Anillo sol").Count(&cuenta).Error)
	require.EqualValues(t, 0, cuenta)
}
