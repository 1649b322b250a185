package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Govind-619/OrderLadder/config"
	"github.com/Govind-619/OrderLadder/controllers"
	"github.com/Govind-619/OrderLadder/middleware"
	"github.com/Govind-619/OrderLadder/services"
	"github.com/Govind-619/OrderLadder/utils"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.Engine, cfg *config.Config, store services.Store) {
	sessionSecret := cfg.SessionSecret
	if sessionSecret == "" {
		sessionSecret = cfg.JWTSecret
	}

	auth := controllers.NewAdminAuth(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.JWTSecret)
	payments := controllers.NewAdminPaymentController(store, cfg.Currency)

	admin := router.Group("/admin")
	admin.Use(utils.SessionMiddleware(sessionSecret, cfg.IsProduction()))
	{
		// Public admin routes
		admin.POST("/login", auth.AdminLogin)
		admin.POST("/logout", auth.AdminLogout)

		// Protected admin routes
		protected := admin.Group("")
		protected.Use(middleware.AdminAuthMiddleware(cfg.JWTSecret, cfg.AdminEmail))
		{
			protected.GET("/payments", payments.ListPayments)
			protected.GET("/payments/:order_number", payments.GetPayment)
			protected.GET("/payments/:order_number/receipt", payments.DownloadReceipt)
			protected.GET("/ledger/audit", payments.AuditLedger)
			protected.GET("/reports/payments.xlsx", payments.DownloadReportExcel)
			protected.GET("/reports/payments.pdf", payments.DownloadReportPDF)
		}
	}
}
