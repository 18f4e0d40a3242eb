package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	authEntity "pdv/src/auth/domain/entity"
	authUseCase "pdv/src/auth/application/usecase"
	authClient "pdv/src/auth/infrastructure/client"
	authController "pdv/src/auth/infrastructure/controller"
	authMiddleware "pdv/src/auth/infrastructure/middleware"
	authSession "pdv/src/auth/infrastructure/session"
	cashUseCase "pdv/src/cash/application/usecase"
	cashClient "pdv/src/cash/infrastructure/client"
	cashController "pdv/src/cash/infrastructure/controller"
	cashSession "pdv/src/cash/infrastructure/session"
	catalogUseCase "pdv/src/catalog/application/usecase"
	catalogCache "pdv/src/catalog/infrastructure/cache"
	catalogClient "pdv/src/catalog/infrastructure/client"
	catalogController "pdv/src/catalog/infrastructure/controller"
	checkoutUseCase "pdv/src/checkout/application/usecase"
	checkoutClient "pdv/src/checkout/infrastructure/client"
	checkoutController "pdv/src/checkout/infrastructure/controller"
	customerUseCase "pdv/src/customer/application/usecase"
	customerClient "pdv/src/customer/infrastructure/client"
	customerController "pdv/src/customer/infrastructure/controller"
	paymentUseCase "pdv/src/payment/application/usecase"
	paymentCache "pdv/src/payment/infrastructure/cache"
	paymentClient "pdv/src/payment/infrastructure/client"
	paymentController "pdv/src/payment/infrastructure/controller"
	reportUseCase "pdv/src/report/application/usecase"
	reportController "pdv/src/report/infrastructure/controller"
	sharedConfig "pdv/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("🚀 PDV Terminal Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for PDV service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for PDV service")
	}

	// Configurar GZIP, CORS y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Conectar a Redis para la sesión del terminal
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	log.Printf("✅ Redis configurado en %s", redisAddr)

	// Health check
	healthHandler := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pdv-terminal",
		})
	}
	router.GET("/health", healthHandler)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler)

	// Módulo Auth: login queda fuera del guard de sesión
	tokenStore := authSession.NewTokenStore(rdb)
	loginUC := authUseCase.NewLoginUseCase(authClient.NewAuthClient(), tokenStore)
	authCtrl := authController.NewAuthController(loginUC, tokenStore)
	authCtrl.RegisterRoutes(v1)

	// El resto de las rutas exige sesión de terminal vigente
	guarded := v1.Group("")
	guarded.Use(authMiddleware.RequireSession(tokenStore))

	// Módulo Payment
	pmtClient := paymentClient.NewPaymentClient()
	pmCache := paymentCache.NewPaymentMethodCache(pmtClient)
	processUC := paymentUseCase.NewProcessPaymentUseCase(pmtClient, pmCache)
	paymentCtrl := paymentController.NewPaymentController(processUC, pmCache, pmtClient)
	paymentCtrl.RegisterRoutes(guarded)

	// Módulo Cash
	cshClient := cashClient.NewCashClient()
	sessionStore := cashSession.NewActiveSessionStore(rdb, cshClient)
	openSessionUC := cashUseCase.NewOpenSessionUseCase(cshClient, sessionStore)
	closeSessionUC := cashUseCase.NewCloseSessionUseCase(cshClient, sessionStore)
	transactionUC := cashUseCase.NewRegisterTransactionUseCase(cshClient)
	cashCtrl := cashController.NewCashController(openSessionUC, closeSessionUC, transactionUC, cshClient, sessionStore)
	cashCtrl.RegisterRoutes(guarded)

	// Módulo Checkout
	saleClient := checkoutClient.NewSaleClient()
	preparePaymentUC := checkoutUseCase.NewPreparePaymentUseCase(saleClient)
	saveSaleUC := checkoutUseCase.NewSaveSaleUseCase(saleClient)
	pdvCtrl := checkoutController.NewPDVController(preparePaymentUC, saveSaleUC, saleClient, sessionStore)
	pdvCtrl.RegisterRoutes(guarded)

	// Módulo Catalog
	prodClient := catalogClient.NewProductClient()
	embClient := catalogClient.NewEmbroideryClient()
	prodCache := catalogCache.NewProductCache(prodClient)
	searchCatalogUC := catalogUseCase.NewSearchCatalogUseCase(prodCache, embClient)
	catalogCtrl := catalogController.NewCatalogController(searchCatalogUC, prodClient, embClient)
	catalogCtrl.RegisterRoutes(guarded)

	// Módulo Customer
	custClient := customerClient.NewCustomerClient()
	searchCustomersUC := customerUseCase.NewSearchCustomersUseCase(custClient)
	customerCtrl := customerController.NewCustomerController(searchCustomersUC, custClient)
	customerCtrl.RegisterRoutes(guarded)

	// Módulo Report
	dailyReportUC := reportUseCase.NewDailyReportUseCase(pmtClient)
	reportCtrl := reportController.NewReportController(dailyReportUC)
	reportCtrl.RegisterRoutes(guarded)

	// Tareas periódicas: refresco de caches y revalidación de la caja
	scheduler := cron.New()
	withSession := func(job func(token string)) func() {
		return func() {
			token, err := tokenStore.Token()
			if err != nil {
				if !errors.Is(err, authEntity.ErrNotAuthenticated) && !errors.Is(err, authEntity.ErrSessionExpired) {
					log.Printf("⚠️ Scheduled job skipped: %v", err)
				}
				return
			}
			job("Bearer " + token)
		}
	}
	scheduler.AddFunc("@every 15m", withSession(func(token string) {
		if err := pmCache.Refresh(token); err != nil {
			log.Printf("⚠️ Payment method refresh failed: %v", err)
		}
		if err := prodCache.Refresh(token); err != nil {
			log.Printf("⚠️ Product catalog refresh failed: %v", err)
		}
	}))
	scheduler.AddFunc("@every 5m", withSession(func(token string) {
		sessionStore.Revalidate(token)
	}))
	scheduler.Start()
	defer scheduler.Stop()

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor PDV iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/api/v1/health", port)
	router.Run(":" + port)
}
