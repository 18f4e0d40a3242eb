package controller

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"pdv/src/catalog/application/request"
	"pdv/src/catalog/application/usecase"
	"pdv/src/catalog/domain/entity"
	"pdv/src/catalog/domain/port"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CatalogController maneja las peticiones HTTP del catálogo: la búsqueda
// unificada de la caja, los indicadores de stock y las órdenes de bordado
type CatalogController struct {
	searchUC     *usecase.SearchCatalogUseCase
	products     port.ProductGateway
	embroideries port.EmbroideryGateway
}

// NewCatalogController crea una nueva instancia del controlador
func NewCatalogController(searchUC *usecase.SearchCatalogUseCase, products port.ProductGateway, embroideries port.EmbroideryGateway) *CatalogController {
	return &CatalogController{
		searchUC:     searchUC,
		products:     products,
		embroideries: embroideries,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CatalogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/catalog/search", c.Search)
	router.GET("/products/low-stock", c.LowStock)
	router.GET("/products/top-selling", c.TopSelling)

	embroideries := router.Group("/embroideries")
	{
		embroideries.GET("/:id", c.GetEmbroidery)
		embroideries.GET("/:id/image", c.EmbroideryImage)
		embroideries.POST("", c.CreateEmbroidery)
		embroideries.DELETE("/:id", c.DeleteEmbroidery)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  GET    /api/v1/catalog/search")
	log.Println("  GET    /api/v1/products/low-stock")
	log.Println("  GET    /api/v1/products/top-selling")
	log.Println("  GET    /api/v1/embroideries/:id")
	log.Println("  GET    /api/v1/embroideries/:id/image")
	log.Println("  POST   /api/v1/embroideries")
	log.Println("  DELETE /api/v1/embroideries/:id")
}

// Search es la búsqueda unificada de productos y bordados
func (c *CatalogController) Search(ctx *gin.Context) {
	term := ctx.Query("term")
	category := entity.Category(ctx.Query("category"))
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	result, err := c.searchUC.Execute(authToken(ctx), term, category, page, size)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// LowStock lista los productos en o debajo del stock mínimo
func (c *CatalogController) LowStock(ctx *gin.Context) {
	products, err := c.products.LowStockProducts(authToken(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":    len(products),
		"products": products,
	})
}

// TopSelling lista los productos más vendidos
func (c *CatalogController) TopSelling(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	products, err := c.products.TopSellingProducts(authToken(ctx), limit)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// GetEmbroidery obtiene una orden de bordado por ID
func (c *CatalogController) GetEmbroidery(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	embroidery, err := c.embroideries.GetEmbroidery(authToken(ctx), id)
	if err != nil {
		if errors.Is(err, entity.ErrEmbroideryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, embroidery)
}

// EmbroideryImage descarga la imagen de referencia de una orden
func (c *CatalogController) EmbroideryImage(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	image, contentType, err := c.embroideries.EmbroideryImage(authToken(ctx), id)
	if err != nil {
		if errors.Is(err, entity.ErrEmbroideryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}
	ctx.Data(http.StatusOK, contentType, image)
}

// CreateEmbroidery registra una orden de bordado. Acepta JSON directo o
// multipart con campo data más la imagen de referencia.
func (c *CatalogController) CreateEmbroidery(ctx *gin.Context) {
	var req request.CreateEmbroideryRequest
	var image []byte
	var imageName string

	if ctx.ContentType() == "multipart/form-data" {
		data := ctx.PostForm("data")
		if err := json.Unmarshal([]byte(data), &req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if file, err := ctx.FormFile("image"); err == nil {
			opened, err := file.Open()
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			defer opened.Close()

			image, err = io.ReadAll(opened)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			imageName = file.Filename
		}
	} else if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CustomerName == "" {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": entity.ErrEmbroideryCustomerRequired.Error()})
		return
	}

	value, err := decimal.NewFromString(req.Value)
	if err != nil || !value.GreaterThan(decimal.Zero) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": entity.ErrEmbroideryValueInvalid.Error()})
		return
	}

	deliveryDate, err := time.Parse("2006-01-02", req.DeliveryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "deliveryDate must be in format 2006-01-02"})
		return
	}

	draft := &entity.EmbroideryDraft{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Description:  req.Description,
		Value:        value,
		DeliveryDate: deliveryDate,
	}

	embroidery, err := c.embroideries.CreateEmbroidery(authToken(ctx), draft, image, imageName)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	log.Printf("✅ Embroidery order %d created - Customer: %s", embroidery.ID, embroidery.CustomerName)
	ctx.JSON(http.StatusCreated, embroidery)
}

// DeleteEmbroidery elimina una orden de bordado
func (c *CatalogController) DeleteEmbroidery(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if err := c.embroideries.DeleteEmbroidery(authToken(ctx), id); err != nil {
		if errors.Is(err, entity.ErrEmbroideryNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// authToken extrae el token que el middleware de sesión dejó en el contexto
func authToken(ctx *gin.Context) string {
	if token := ctx.GetString("authToken"); token != "" {
		return token
	}
	return ctx.GetHeader("Authorization")
}
