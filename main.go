package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/brayancortes22/Accesorios-lilis-sub000/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Iniciando aplicación...")

	// Variables de entorno
	_ = godotenv.Load()

	// Base de datos
	db := initDatabase()

	// Migración automática de tablas
	if err := db.AutoMigrate(
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
	); err != nil {
		log.Fatalf("❌ AutoMigrate falló: %v", err)
	}

	// Gin
	r := gin.Default()

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rutas
	routes.SetupRoutes(r, db)

	// Barrido diario de carritos abandonados a las 3 AM
	go iniciarBarridoCarritos(db, 3, 0)

	// Servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Servidor escuchando en el puerto %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ No se pudo iniciar el servidor: %v", err)
	}
}

// initDatabase abre la conexión GORM contra Postgres.
func initDatabase() *gorm.DB {
	config := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), config)
		if err != nil {
			log.Fatalf("❌ Falló la conexión a la base: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		log.Fatalf("❌ Falló la conexión a la base: %v", err)
	}
	return db
}

// iniciarBarridoCarritos corre todos los días a una hora fija y marca como
// Abandonado todo carrito Activo sin movimiento por más de CART_TTL_DAYS
// días (30 por defecto).
func iniciarBarridoCarritos(db *gorm.DB, hora, minuto int) {
	ttlDias := 30
	if v := os.Getenv("CART_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlDias = n
		}
	}

	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hora, minuto, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Próximo barrido de carritos: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		corte := time.Now().AddDate(0, 0, -ttlDias)
		res := db.Model(&models.Carrito{}).
			Where("estado = ? AND updated_at < ?", models.CarritoActivo, corte).
			Update("estado", models.CarritoAbandonado)
		if res.Error != nil {
			log.Printf("❌ Falló el barrido de carritos: %v", res.Error)
			continue
		}
		if res.RowsAffected > 0 {
			log.Printf("🗑️ Carritos marcados como abandonados: %d", res.RowsAffected)
		}
	}
}
