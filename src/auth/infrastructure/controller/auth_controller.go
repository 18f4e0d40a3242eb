package controller

import (
	"errors"
	"log"
	"net/http"

	"pdv/src/auth/application/usecase"
	"pdv/src/auth/domain/entity"
	"pdv/src/auth/domain/port"

	"github.com/gin-gonic/gin"
)

// LoginRequest son las credenciales del operador
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthController maneja la autenticación del terminal. Sus rutas quedan
// fuera del middleware de sesión.
type AuthController struct {
	loginUC *usecase.LoginUseCase
	store   port.TokenStore
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(loginUC *usecase.LoginUseCase, store port.TokenStore) *AuthController {
	return &AuthController{loginUC: loginUC, store: store}
}

// RegisterRoutes registra las rutas del controlador
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", c.Login)
		auth.POST("/logout", c.Logout)
		auth.GET("/me", c.Me)
	}

	log.Println("Rutas Auth disponibles:")
	log.Println("  POST   /api/v1/auth/login")
	log.Println("  POST   /api/v1/auth/logout")
	log.Println("  GET    /api/v1/auth/me")
}

// Login autentica al operador del terminal
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.loginUC.Execute(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error during login: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Logout cierra la sesión del terminal
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.store.Clear(); err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	log.Println("✅ Terminal session closed")
	ctx.Status(http.StatusNoContent)
}

// Me retorna el operador de la sesión vigente
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.store.User()
	if err != nil {
		if errors.Is(err, entity.ErrNotAuthenticated) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
