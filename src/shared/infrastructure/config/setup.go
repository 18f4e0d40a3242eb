package config

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración para los middlewares compartidos
type SharedConfig struct {
	EnableGzip        bool
	GzipExcludedPaths []string
	EnableCORS        bool
	AllowedOrigins    []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	origins := []string{"http://localhost:4200"}
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	return SharedConfig{
		EnableGzip:        true,
		GzipExcludedPaths: []string{"/health", "/metrics"},
		EnableCORS:        true,
		AllowedOrigins:    origins,
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config SharedConfig) {
	// CORS: el terminal es consumido por la UI del punto de venta
	if config.EnableCORS {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = config.AllowedOrigins
		corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	// Compresión gzip para respuestas, excluyendo health y metrics
	if config.EnableGzip {
		router.Use(gzip.Gzip(gzip.DefaultCompression,
			gzip.WithExcludedPaths(config.GzipExcludedPaths)))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
}
