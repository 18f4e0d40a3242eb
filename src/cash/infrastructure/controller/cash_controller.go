package controller

import (
	"errors"
	"log"
	"net/http"

	"pdv/src/cash/application/request"
	"pdv/src/cash/application/usecase"
	"pdv/src/cash/domain/entity"
	"pdv/src/cash/domain/port"
	"pdv/src/cash/infrastructure/session"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CashController maneja las peticiones HTTP de la caja del terminal
type CashController struct {
	openUC        *usecase.OpenSessionUseCase
	closeUC       *usecase.CloseSessionUseCase
	transactionUC *usecase.RegisterTransactionUseCase
	gateway       port.CashGateway
	store         *session.ActiveSessionStore
}

// NewCashController crea una nueva instancia del controlador
func NewCashController(
	openUC *usecase.OpenSessionUseCase,
	closeUC *usecase.CloseSessionUseCase,
	transactionUC *usecase.RegisterTransactionUseCase,
	gateway port.CashGateway,
	store *session.ActiveSessionStore,
) *CashController {
	return &CashController{
		openUC:        openUC,
		closeUC:       closeUC,
		transactionUC: transactionUC,
		gateway:       gateway,
		store:         store,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CashController) RegisterRoutes(router *gin.RouterGroup) {
	cash := router.Group("/cash")
	{
		cash.POST("/open", c.Open)
		cash.GET("/status", c.Status)
		cash.POST("/transactions", c.RegisterTransaction)
		cash.POST("/close", c.Close)
	}

	log.Println("Rutas Cash disponibles:")
	log.Println("  POST   /api/v1/cash/open")
	log.Println("  GET    /api/v1/cash/status")
	log.Println("  POST   /api/v1/cash/transactions")
	log.Println("  POST   /api/v1/cash/close")
}

// Open abre la caja con el fondo inicial
func (c *CashController) Open(ctx *gin.Context) {
	var req request.OpenSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	initialValue, err := decimal.NewFromString(req.InitialValue)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrInvalidInitialValue.Error()})
		return
	}

	cashSession, err := c.openUC.Execute(authToken(ctx), initialValue)
	if err != nil {
		c.cashError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cashSession)
}

// Status retorna la sesión abierta del terminal, o 404 si no hay
func (c *CashController) Status(ctx *gin.Context) {
	cashSession, err := c.gateway.ActiveSession(authToken(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if !cashSession.IsOpen() {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrNoOpenSession.Error()})
		return
	}

	ctx.JSON(http.StatusOK, cashSession)
}

// RegisterTransaction registra un suprimento o una sangria en la sesión activa
func (c *CashController) RegisterTransaction(ctx *gin.Context) {
	var req request.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrInvalidTransactionAmount.Error()})
		return
	}

	token := authToken(ctx)
	sessionID, err := c.store.ActiveSessionID(token)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	tx, err := c.transactionUC.Execute(token, sessionID, entity.TransactionType(req.Type), amount, req.Description)
	if err != nil {
		c.cashError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, tx)
}

// Close cierra la caja confrontando el conteo del cajero
func (c *CashController) Close(ctx *gin.Context) {
	var req request.CloseSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counted := make(map[string]decimal.Decimal, len(req.Counts))
	for _, count := range req.Counts {
		amount, err := decimal.NewFromString(count.CountedAmount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrInvalidTransactionAmount.Error()})
			return
		}
		counted[count.MethodCode] = amount
	}

	token := authToken(ctx)
	sessionID, err := c.store.ActiveSessionID(token)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	result, err := c.closeUC.Execute(token, sessionID, counted)
	if err != nil {
		c.cashError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// cashError mapea errores de dominio de caja a códigos HTTP
func (c *CashController) cashError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNoOpenSession):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrSessionAlreadyOpen):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidInitialValue),
		errors.Is(err, entity.ErrInvalidTransactionAmount),
		errors.Is(err, entity.ErrInvalidTransactionType),
		errors.Is(err, entity.ErrCountRequired):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("Error in cash operation: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

// authToken extrae el token que el middleware de sesión dejó en el contexto
func authToken(ctx *gin.Context) string {
	if token := ctx.GetString("authToken"); token != "" {
		return token
	}
	return ctx.GetHeader("Authorization")
}
