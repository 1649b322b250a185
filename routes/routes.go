package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/OrderLadder/config"
	"github.com/Govind-619/OrderLadder/controllers"
	"github.com/Govind-619/OrderLadder/services"
	"github.com/Govind-619/OrderLadder/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter(cfg *config.Config, payments *services.PaymentService, store services.Store) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.MetricsMiddleware())
	router.Use(utils.CORSMiddleware(cfg.AllowedOrigin))
	router.Use(utils.SecurityHeadersMiddleware())

	health := controllers.NewHealthController(store)
	router.GET("/health", health.Health)
	router.GET("/metrics", utils.MetricsHandler())

	initPaymentRoutes(router, controllers.NewPaymentController(payments))

	if !cfg.IsProduction() {
		sim := controllers.NewPaymentSimulator(cfg.RazorpaySecret)
		router.POST("/dev/simulate-payment", sim.SimulatePayment)
	}

	if cfg.AdminEnabled() {
		initAdminRoutes(router, cfg, store)
	} else {
		utils.LogInfo("Admin routes disabled: JWT_SECRET, ADMIN_EMAIL and ADMIN_PASSWORD_HASH are required")
	}

	return router
}

// initPaymentRoutes registers the public payment flow
func initPaymentRoutes(router gin.IRoutes, pc *controllers.PaymentController) {
	router.GET("/next-amount", pc.GetNextAmount)
	router.POST("/create-order", pc.CreateOrder)
	router.POST("/verify-payment", pc.VerifyPayment)
}
