package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/brayancortes22/Accesorios-lilis-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailRegistrado       = errors.New("el email ya está registrado")
	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
)

type RegistroRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Nombre   string `json:"nombre" binding:"required"`
	Telefono string `json:"telefono"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegistrarUsuario crea el usuario con su hash bcrypt y su carrito Activo en
// la misma transacción. El email duplicado lo resuelve el índice único de la
// base, no un chequeo previo; así dos registros simultáneos no pueden colarse.
func RegistrarUsuario(db *gorm.DB, req RegistroRequest) (*models.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := models.Usuario{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Nombre:       req.Nombre,
		Telefono:     req.Telefono,
		PasswordHash: string(hash),
		Activo:       true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usuario).Error; err != nil {
			return err
		}
		carrito := models.Carrito{UsuarioID: usuario.ID, Estado: models.CarritoActivo}
		return tx.Create(&carrito).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailRegistrado
		}
		return nil, err
	}
	return &usuario, nil
}

// AutenticarUsuario valida email+password y devuelve el usuario.
func AutenticarUsuario(db *gorm.DB, req LoginRequest) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := db.Preload("Rol").Where("email = ? AND activo = ?", req.Email, true).
		First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}
	return &usuario, nil
}

// EmitirJWT firma el token bearer con los claims que consume el middleware.
func EmitirJWT(usuario *models.Usuario) (string, error) {
	rol := "cliente"
	if usuario.Rol != nil {
		rol = usuario.Rol.Codigo
	}

	claims := jwt.MapClaims{
		"user_id": usuario.ID,
		"email":   usuario.Email,
		"rol":     rol,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// -------- Handlers --------

// POST /auth/registro
func RegistroHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegistroRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		usuario, err := RegistrarUsuario(db, req)
		if err != nil {
			if errors.Is(err, ErrEmailRegistrado) {
				c.JSON(http.StatusConflict, gin.H{"error": "El email ya está registrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo registrar el usuario"})
			return
		}

		token, err := EmitirJWT(usuario)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"usuario": usuario,
			"token":   token,
		})
	}
}

// POST /auth/login
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos: " + err.Error()})
			return
		}

		usuario, err := AutenticarUsuario(db, req)
		if err != nil {
			if errors.Is(err, ErrCredencialesInvalidas) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Email o contraseña incorrectos"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al iniciar sesión"})
			return
		}

		token, err := EmitirJWT(usuario)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo generar el token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login exitoso",
			"usuario": usuario,
			"token":   token,
		})
	}
}
