package controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"pdv/src/report/application/usecase"

	"github.com/gin-gonic/gin"
)

// ReportController maneja las peticiones HTTP de reportes del terminal
type ReportController struct {
	reportUC *usecase.DailyReportUseCase
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(reportUC *usecase.DailyReportUseCase) *ReportController {
	return &ReportController{reportUC: reportUC}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/payments/today", c.Today)
		reports.GET("/payments/export", c.Export)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/payments/today")
	log.Println("  GET    /api/v1/reports/payments/export")
}

// Today retorna el resumen de la jornada
func (c *ReportController) Today(ctx *gin.Context) {
	report, err := c.reportUC.Execute(authToken(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// Export descarga la planilla del cierre del día
func (c *ReportController) Export(ctx *gin.Context) {
	file, err := c.reportUC.ExportXLSX(authToken(ctx))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("pagos_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(ctx.Writer); err != nil {
		log.Printf("Error writing spreadsheet: %v", err)
	}
}

// authToken extrae el token que el middleware de sesión dejó en el contexto
func authToken(ctx *gin.Context) string {
	if token := ctx.GetString("authToken"); token != "" {
		return token
	}
	return ctx.GetHeader("Authorization")
}
