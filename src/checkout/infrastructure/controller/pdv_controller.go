package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"pdv/src/checkout/application/request"
	"pdv/src/checkout/application/response"
	"pdv/src/checkout/application/usecase"
	"pdv/src/checkout/domain/entity"
	"pdv/src/checkout/domain/port"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PDVController maneja las peticiones HTTP de la frente de caixa. Es el
// dueño del carrito del terminal: un carrito por instancia, protegido por
// el mutex del controlador.
type PDVController struct {
	prepareUC   *usecase.PreparePaymentUseCase
	saveUC      *usecase.SaveSaleUseCase
	saleGateway port.SaleGateway
	sessions    port.CashSessionProvider

	mu            sync.Mutex
	cart          *entity.Cart
	customerID    int64
	customerName  string
	customerPhone string
	activeSaleID  int64
}

// NewPDVController crea una nueva instancia del controlador
func NewPDVController(
	prepareUC *usecase.PreparePaymentUseCase,
	saveUC *usecase.SaveSaleUseCase,
	saleGateway port.SaleGateway,
	sessions port.CashSessionProvider,
) *PDVController {
	return &PDVController{
		prepareUC:   prepareUC,
		saveUC:      saveUC,
		saleGateway: saleGateway,
		sessions:    sessions,
		cart:        entity.NewCart(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *PDVController) RegisterRoutes(router *gin.RouterGroup) {
	pos := router.Group("/pos")
	{
		pos.GET("/cart", c.CartState)
		pos.POST("/cart/items", c.AddItem)
		pos.PATCH("/cart/items/:index/quantity", c.UpdateQuantity)
		pos.DELETE("/cart/items/:index", c.RemoveItem)
		pos.POST("/cart/discount", c.SetDiscount)
		pos.POST("/cart/clear", c.ClearCart)
		pos.POST("/customer", c.SelectCustomer)
		pos.DELETE("/customer", c.ClearCustomer)
		pos.GET("/sales/search", c.SearchSales)
		pos.POST("/sales/:id/load", c.LoadSale)
		pos.POST("/sales/:id/cancel", c.CancelSale)
		pos.POST("/sales/save", c.SaveSale)
		pos.POST("/checkout", c.Checkout)
	}

	log.Println("Rutas PDV disponibles:")
	log.Println("  GET    /api/v1/pos/cart")
	log.Println("  POST   /api/v1/pos/cart/items")
	log.Println("  PATCH  /api/v1/pos/cart/items/:index/quantity")
	log.Println("  DELETE /api/v1/pos/cart/items/:index")
	log.Println("  POST   /api/v1/pos/cart/discount")
	log.Println("  POST   /api/v1/pos/cart/clear")
	log.Println("  POST   /api/v1/pos/customer")
	log.Println("  DELETE /api/v1/pos/customer")
	log.Println("  GET    /api/v1/pos/sales/search")
	log.Println("  POST   /api/v1/pos/sales/:id/load")
	log.Println("  POST   /api/v1/pos/sales/:id/cancel")
	log.Println("  POST   /api/v1/pos/sales/save")
	log.Println("  POST   /api/v1/pos/checkout  ⭐ (abre el pago)")
}

// CartState retorna el estado derivado del carrito
func (c *PDVController) CartState(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx.JSON(http.StatusOK, c.stateLocked())
}

// AddItem agrega una línea al carrito
func (c *PDVController) AddItem(ctx *gin.Context) {
	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrInvalidUnitPrice.Error()})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item, err := entity.NewCartItem(req.ProductID, req.EmbroideryID, req.Description, unitPrice, quantity, req.IsEmbroidery)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cart.AddItem(*item)
	ctx.JSON(http.StatusOK, c.stateLocked())
}

// UpdateQuantity ajusta la cantidad de una línea por delta
func (c *PDVController) UpdateQuantity(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	var req request.UpdateQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cart.UpdateQuantity(index, req.Delta); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, c.stateLocked())
}

// RemoveItem elimina la línea en la posición dada
func (c *PDVController) RemoveItem(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "index must be an integer"})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cart.RemoveItem(index); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, c.stateLocked())
}

// SetDiscount define el descuento de la venta actual
func (c *PDVController) SetDiscount(ctx *gin.Context) {
	var req request.DiscountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": entity.ErrInvalidDiscount.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cart.SetDiscount(entity.DiscountType(req.Type), value); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, c.stateLocked())
}

// ClearCart vacía el carrito y resetea cliente y venta activa
func (c *PDVController) ClearCart(ctx *gin.Context) {
	c.mu.Lock()
	c.resetLocked()
	state := c.stateLocked()
	c.mu.Unlock()

	ctx.JSON(http.StatusOK, state)
}

// SelectCustomer selecciona el cliente de la venta actual
func (c *PDVController) SelectCustomer(ctx *gin.Context) {
	var req request.SelectCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	c.customerID = req.ID
	c.customerName = req.Name
	c.customerPhone = req.Phone
	state := c.stateLocked()
	c.mu.Unlock()

	ctx.JSON(http.StatusOK, state)
}

// ClearCustomer quita el cliente de la venta actual
func (c *PDVController) ClearCustomer(ctx *gin.Context) {
	c.mu.Lock()
	c.customerID = 0
	c.customerName = ""
	c.customerPhone = ""
	state := c.stateLocked()
	c.mu.Unlock()

	ctx.JSON(http.StatusOK, state)
}

// SearchSales busca ventas en el back-office por término
func (c *PDVController) SearchSales(ctx *gin.Context) {
	term := ctx.Query("term")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	sales, err := c.saleGateway.SearchSales(authToken(ctx), term, page, size)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// LoadSale recupera una venta pendiente del back-office hacia el carrito
// para seguir editándola o cobrarla
func (c *PDVController) LoadSale(ctx *gin.Context) {
	saleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	sale, err := c.saleGateway.GetSale(authToken(ctx), saleID)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	items := make([]entity.CartItem, 0, len(sale.Items))
	for _, saleItem := range sale.Items {
		items = append(items, entity.CartItem{
			ProductID:    saleItem.ProductID,
			EmbroideryID: saleItem.EmbroideryID,
			Description:  saleItem.Description,
			UnitPrice:    saleItem.UnitPrice,
			Quantity:     saleItem.Quantity,
			IsEmbroidery: saleItem.EmbroideryID != 0,
		})
	}

	c.mu.Lock()
	c.cart.Replace(items, sale.DiscountType, sale.DiscountValue)
	c.customerID = sale.CustomerID
	c.customerName = sale.CustomerName
	c.customerPhone = sale.CustomerPhone
	c.activeSaleID = sale.ID
	state := c.stateLocked()
	c.mu.Unlock()

	log.Printf("🛒 Sale %d loaded into cart - Items: %d", sale.ID, len(items))
	ctx.JSON(http.StatusOK, state)
}

// CancelSale anula una venta pendiente en el back-office. Si la venta
// anulada estaba cargada en el terminal, también limpia el carrito.
func (c *PDVController) CancelSale(ctx *gin.Context) {
	saleID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	sale, err := c.saleGateway.UpdateSaleStatus(authToken(ctx), saleID, entity.SaleCancelled)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	if c.activeSaleID == saleID {
		c.resetLocked()
	}
	c.mu.Unlock()

	log.Printf("⚠️ Sale %d cancelled", sale.ID)
	ctx.JSON(http.StatusOK, sale)
}

// SaveSale guarda la venta como pendiente sin cobrarla
func (c *PDVController) SaveSale(ctx *gin.Context) {
	token := authToken(ctx)

	sessionID, err := c.sessions.ActiveSessionID(token)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sale, err := c.saveUC.Execute(token, c.cart, c.customerID, sessionID, c.activeSaleID)
	if err != nil {
		c.saleError(ctx, err)
		return
	}

	c.resetLocked()
	ctx.JSON(http.StatusOK, sale)
}

// Checkout registra la venta y retorna los datos para abrir el split de
// pagos. El carrito queda intacto hasta que el pago se confirme.
func (c *PDVController) Checkout(ctx *gin.Context) {
	token := authToken(ctx)

	sessionID, err := c.sessions.ActiveSessionID(token)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, sale, err := c.prepareUC.Execute(token, c.cart, c.customerID, c.customerName, sessionID, c.activeSaleID)
	if err != nil {
		c.saleError(ctx, err)
		return
	}

	// La venta ya existe en el back-office: ediciones posteriores la
	// actualizan en vez de duplicarla
	c.activeSaleID = sale.ID

	ctx.JSON(http.StatusOK, data)
}

// PaymentConfirmed limpia el carrito tras un cobro exitoso
func (c *PDVController) PaymentConfirmed() {
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
}

// stateLocked arma la respuesta de estado. Requiere c.mu tomado.
func (c *PDVController) stateLocked() *response.CartStateResponse {
	return response.NewCartStateResponse(c.cart, c.customerID, c.customerName, c.activeSaleID)
}

// resetLocked deja el terminal listo para la próxima venta. Requiere c.mu tomado.
func (c *PDVController) resetLocked() {
	c.cart.Clear()
	c.customerID = 0
	c.customerName = ""
	c.customerPhone = ""
	c.activeSaleID = 0
}

// saleError mapea errores de dominio de la venta a códigos HTTP
func (c *PDVController) saleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrCustomerRequired),
		errors.Is(err, entity.ErrNoCashSession):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("Error registering sale: %v", err)
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
