package productocontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportarProductosExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productos []models.Producto
		if err := db.Preload("Seccion").Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo obtener productos"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Productos")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo crear la hoja de Excel"})
			return
		}

		headers := []string{
			"ID", "Nombre", "Descripcion", "Precio", "Stock",
			"SeccionID", "Imagen", "Destacado", "Activo", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range productos {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Nombre)
			row.AddCell().SetValue(p.Descripcion)
			row.AddCell().SetValue(p.Precio)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.SeccionID)
			row.AddCell().SetValue(p.Imagen)
			row.AddCell().SetValue(p.Destacado)
			row.AddCell().SetValue(p.Activo)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=productos.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo escribir el archivo Excel"})
			return
		}
	}
}

// ImportarProductosExcel carga o actualiza productos en lote desde una
// planilla con las mismas columnas que exporta ExportarProductosExcel.
func ImportarProductosExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Se requiere un archivo Excel"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo abrir el archivo"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo leer el archivo Excel"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El archivo está vacío o no tiene fila de encabezado"})
			return
		}

		creados, actualizados, omitidos := importarFilas(db, xlFile.Sheets[0])

		c.JSON(http.StatusOK, gin.H{
			"creados":      creados,
			"actualizados": actualizados,
			"omitidos":     omitidos,
		})
	}
}

// importarFilas recorre las filas de datos de la planilla. Una fila con
// nombre vacío o con precio, stock o sección ilegibles se cuenta en omitidos
// y no toca la base.
func importarFilas(db *gorm.DB, sheet *xlsx.Sheet) (creados, actualizados, omitidos int) {
	for i := 1; i < sheet.MaxRow; i++ {
		row := sheet.Rows[i]

		get := func(index int) string {
			if index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		idStr := get(0)
		nombre := get(1)
		descripcion := get(2)
		precio, errPrecio := strconv.ParseFloat(get(3), 64)
		stock, errStock := strconv.Atoi(get(4))
		seccionID, errSeccion := strconv.ParseUint(get(5), 10, 64)
		imagen := get(6)
		destacado := strings.EqualFold(get(7), "true")

		if nombre == "" || errPrecio != nil || errStock != nil || errSeccion != nil || precio < 0 || stock < 0 {
			omitidos++
			continue
		}

		producto := models.Producto{
			Nombre:      nombre,
			Descripcion: descripcion,
			Precio:      precio,
			Stock:       stock,
			SeccionID:   uint(seccionID),
			Imagen:      imagen,
			Destacado:   destacado,
			Activo:      true,
		}

		if idStr != "" {
			if id, err := strconv.Atoi(idStr); err == nil {
				var existente models.Producto
				if err := db.First(&existente, id).Error; err == nil {
					existente.Nombre = producto.Nombre
					existente.Descripcion = producto.Descripcion
					existente.Precio = producto.Precio
					existente.Stock = producto.Stock
					existente.SeccionID = producto.SeccionID
					existente.Imagen = producto.Imagen
					existente.Destacado = producto.Destacado
					if err := db.Save(&existente).Error; err != nil {
						omitidos++
						continue
					}
					actualizados++
					continue
				}
			}
		}

		if err := db.Create(&producto).Error; err != nil {
			omitidos++
			continue
		}
		creados++
	}
	return creados, actualizados, omitidos
}
