package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"pdv/src/payment/application/request"
	"pdv/src/payment/application/response"
	"pdv/src/payment/application/usecase"
	"pdv/src/payment/domain/entity"
	"pdv/src/payment/domain/port"
	"pdv/src/payment/infrastructure/cache"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentController maneja las peticiones HTTP del split de pagos.
// Es el dueño del único TenderSplit vivo por terminal: abrir el split para
// otra venta descarta el anterior, igual que el modal original.
type PaymentController struct {
	processUC   *usecase.ProcessPaymentUseCase
	methodCache *cache.PaymentMethodCache
	gateway     port.PaymentGateway

	mu    sync.Mutex
	split *entity.TenderSplit
}

// NewPaymentController crea una nueva instancia del controlador
func NewPaymentController(processUC *usecase.ProcessPaymentUseCase, methodCache *cache.PaymentMethodCache, gateway port.PaymentGateway) *PaymentController {
	return &PaymentController{
		processUC:   processUC,
		methodCache: methodCache,
		gateway:     gateway,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *PaymentController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/payments/methods", c.ListMethods)
	router.GET("/payments/sale/:id", c.ListBySale)

	split := router.Group("/pos/payment")
	{
		split.POST("/open", c.OpenSplit)
		split.GET("/state", c.SplitState)
		split.POST("/method", c.SelectMethod)
		split.POST("/amount", c.SetAmount)
		split.POST("/tenders", c.AddTender)
		split.DELETE("/tenders/:index", c.RemoveTender)
		split.POST("/submit", c.Submit)
		split.POST("/cancel", c.Cancel)
	}

	log.Println("Rutas Payment disponibles:")
	log.Println("  GET    /api/v1/payments/methods")
	log.Println("  GET    /api/v1/payments/sale/:id")
	log.Println("  POST   /api/v1/pos/payment/open")
	log.Println("  GET    /api/v1/pos/payment/state")
	log.Println("  POST   /api/v1/pos/payment/method")
	log.Println("  POST   /api/v1/pos/payment/amount")
	log.Println("  POST   /api/v1/pos/payment/tenders")
	log.Println("  DELETE /api/v1/pos/payment/tenders/:index")
	log.Println("  POST   /api/v1/pos/payment/submit  ⭐ (Multi Payment)")
	log.Println("  POST   /api/v1/pos/payment/cancel")
}

// ListMethods lista los métodos de pago activos del back-office
func (c *PaymentController) ListMethods(ctx *gin.Context) {
	methods := c.methodCache.Methods()
	if len(methods) == 0 {
		// Primer acceso: cache todavía frío
		if err := c.methodCache.Refresh(authToken(ctx)); err != nil {
			ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		methods = c.methodCache.Methods()
	}

	ctx.JSON(http.StatusOK, methods)
}

// ListBySale retorna los pagos ya registrados de una venta
func (c *PaymentController) ListBySale(ctx *gin.Context) {
	saleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	payments, err := c.gateway.ListPaymentsBySale(authToken(ctx), saleID)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// OpenSplit abre el split para una venta. Un split anterior se descarta y
// su attempt queda invalidado para cualquier respuesta en vuelo.
func (c *PaymentController) OpenSplit(ctx *gin.Context) {
	var req request.OpenSplitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	split, err := entity.NewTenderSplit(req.SaleID, req.TotalAmount, req.CustomerName)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	if c.split != nil {
		c.split.Reset()
	}
	c.split = split
	state := response.NewSplitStateResponse(split)
	c.mu.Unlock()

	log.Printf("🧾 Tender split opened - Sale: %d, Total: %s", req.SaleID, req.TotalAmount)
	ctx.JSON(http.StatusCreated, state)
}

// SplitState retorna el estado derivado actual del split
func (c *PaymentController) SplitState(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.split == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrNoSplitOpen.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.NewSplitStateResponse(c.split))
}

// SelectMethod cambia el método de pago en edición
func (c *PaymentController) SelectMethod(ctx *gin.Context) {
	var req request.SelectMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.split == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrNoSplitOpen.Error()})
		return
	}

	if err := c.split.SelectMethod(req.Method); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.NewSplitStateResponse(c.split))
}

// SetAmount fija el monto en edición. Entradas no numéricas o negativas
// coercionan a cero.
func (c *PaymentController) SetAmount(ctx *gin.Context) {
	var req request.SetAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		amount = decimal.Zero
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.split == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrNoSplitOpen.Error()})
		return
	}

	c.split.SetCurrentAmount(amount)
	ctx.JSON(http.StatusOK, response.NewSplitStateResponse(c.split))
}

// AddTender registra el monto actual como pago del método actual
func (c *PaymentController) AddTender(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.split == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrNoSplitOpen.Error()})
		return
	}

	if err := c.split.AddTender(); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.NewSplitStateResponse(c.split))
}

// RemoveTender elimina el pago en el índice dado
func (c *PaymentController) RemoveTender(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.split == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrNoSplitOpen.Error()})
		return
	}

	if err := c.split.RemoveTender(index); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response.NewSplitStateResponse(c.split))
}

// Submit envía el pago múltiple al back-office
func (c *PaymentController) Submit(ctx *gin.Context) {
	c.mu.Lock()
	split := c.split
	c.mu.Unlock()

	if split == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": entity.ErrNoSplitOpen.Error()})
		return
	}

	// El lock se entrega al use case: lo suelta durante la llamada de red
	receipt, err := c.processUC.Execute(authToken(ctx), split, &c.mu)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPaymentInProgress),
			errors.Is(err, entity.ErrStaleSubmission):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrSaleNotFullyPaid),
			errors.Is(err, entity.ErrDuplicateMethod),
			errors.Is(err, entity.ErrNonCashChange):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			log.Printf("Error processing payment: %v", err)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	// Venta cobrada: el split ya fue reseteado por el use case
	c.mu.Lock()
	if c.split == split {
		c.split = nil
	}
	c.mu.Unlock()

	ctx.JSON(http.StatusOK, receipt)
}

// Cancel descarta el split actual (cerrar el modal)
func (c *PaymentController) Cancel(ctx *gin.Context) {
	c.mu.Lock()
	if c.split != nil {
		c.split.Reset()
		c.split = nil
	}
	c.mu.Unlock()

	ctx.Status(http.StatusNoContent)
}

// authToken extrae el token que el middleware de sesión dejó en el contexto
func authToken(ctx *gin.Context) string {
	if token := ctx.GetString("authToken"); token != "" {
		return token
	}
	return ctx.GetHeader("Authorization")
}
