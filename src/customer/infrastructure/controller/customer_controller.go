package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"pdv/src/customer/application/usecase"
	"pdv/src/customer/domain/entity"
	"pdv/src/customer/domain/port"

	"github.com/gin-gonic/gin"
)

// CreateCustomerRequest es el alta rápida de cliente desde la caja
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// CustomerController maneja las peticiones HTTP de clientes
type CustomerController struct {
	searchUC *usecase.SearchCustomersUseCase
	gateway  port.CustomerGateway
}

// NewCustomerController crea una nueva instancia del controlador
func NewCustomerController(searchUC *usecase.SearchCustomersUseCase, gateway port.CustomerGateway) *CustomerController {
	return &CustomerController{searchUC: searchUC, gateway: gateway}
}

// RegisterRoutes registra las rutas del controlador
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.List)
		customers.GET("/search", c.Search)
		customers.GET("/summary", c.Summary)
		customers.POST("", c.Create)
		customers.GET("/:id/stats", c.Stats)
	}

	log.Println("Rutas Customer disponibles:")
	log.Println("  GET    /api/v1/customers")
	log.Println("  GET    /api/v1/customers/search")
	log.Println("  GET    /api/v1/customers/summary")
	log.Println("  POST   /api/v1/customers")
	log.Println("  GET    /api/v1/customers/:id/stats")
}

// Search busca clientes por nombre o teléfono
func (c *CustomerController) Search(ctx *gin.Context) {
	term := ctx.Query("term")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	result, err := c.searchUC.Execute(authToken(ctx), term, page, size)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// List pagina la cartera de clientes filtrada por estado
func (c *CustomerController) List(ctx *gin.Context) {
	active := ctx.DefaultQuery("status", "active") != "inactive"
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	result, err := c.gateway.ListByStatus(authToken(ctx), active, page, size)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Summary retorna los contadores globales de la cartera
func (c *CustomerController) Summary(ctx *gin.Context) {
	summary, err := c.gateway.CustomerSummary(authToken(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// Create registra un cliente nuevo y lo retorna para seleccionarlo en la venta
func (c *CustomerController) Create(ctx *gin.Context) {
	var req CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": entity.ErrCustomerNameRequired.Error()})
		return
	}

	customer, err := c.gateway.CreateCustomer(authToken(ctx), req.Name, req.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	log.Printf("✅ Customer %d created - Name: %s", customer.ID, customer.Name)
	ctx.JSON(http.StatusCreated, customer)
}

// Stats retorna el resumen de compras de un cliente
func (c *CustomerController) Stats(ctx *gin.Context) {
	customerID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	stats, err := c.gateway.CustomerStats(authToken(ctx), customerID)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// authToken extrae el token que el middleware de sesión dejó en el contexto
func authToken(ctx *gin.Context) string {
	if token := ctx.GetString("authToken"); token != "" {
		return token
	}
	return ctx.GetHeader("Authorization")
}
