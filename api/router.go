package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopdash/internal/alerts"
	"shopdash/internal/audit"
	"shopdash/internal/billing"
	"shopdash/internal/catalog"
	"shopdash/internal/config"
	"shopdash/internal/forecast"
)

// InitRoutes wires the whole service onto the given Gin engine: it seeds the
// in-memory record store, constructs the forecaster, alert generator, audit
// trail and billing service, then binds each endpoint to its handler.
func InitRoutes(e *gin.Engine, cfg config.Config, logger *zap.Logger) {
	storage := catalog.NewSeededStorage()
	trail := audit.NewSeededLog(cfg.AuditUser)

	forecaster := forecast.New(catalog.TopSellerNames(storage.TopSellers()), nil)
	alertGen := alerts.NewGenerator(forecaster)
	billingService := billing.NewService(storage, trail, logger)

	handler := newDashboardHandler(storage, forecaster, alertGen, billingService, trail, cfg.DefaultStore, logger)

	e.GET("/reports/demand", handler.handleDemandReport)
	e.GET("/reports/gst", handler.handleGSTReport)
	e.GET("/alerts", handler.handleAlerts)
	e.GET("/analytics/sales-by-day", handler.handleSalesByDay)
	e.GET("/analytics/hourly-traffic", handler.handleHourlyTraffic)
	e.GET("/analytics/payment-methods", handler.handlePaymentMethods)
	e.GET("/dashboard", handler.handleDashboard)
	e.GET("/customers", handler.handleCustomers)
	e.GET("/audit-logs", handler.handleAuditLogs)
	e.GET("/invoices/:number", handler.handleGetInvoice)
	e.POST("/invoices/:number/refund", handler.handleRefundInvoice)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
