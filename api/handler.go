package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopdash/internal/alerts"
	"shopdash/internal/analytics"
	"shopdash/internal/audit"
	"shopdash/internal/billing"
	"shopdash/internal/catalog"
	"shopdash/internal/forecast"
	"shopdash/internal/tax"
)

const dateLayout = "2006-01-02"

// dashboardHandler holds the services and implements HTTP handlers for the
// derived-analytics endpoints. It renders whatever the services return; all
// shaping happens in the internal packages.
type dashboardHandler struct {
	storage        catalog.Storage
	forecaster     *forecast.Forecaster
	alertGen       *alerts.Generator
	billingService *billing.Service
	trail          *audit.Log
	defaultStore   string
	logger         *zap.Logger
}

// newDashboardHandler creates a new dashboard handler.
func newDashboardHandler(
	storage catalog.Storage,
	forecaster *forecast.Forecaster,
	alertGen *alerts.Generator,
	billingService *billing.Service,
	trail *audit.Log,
	defaultStore string,
	logger *zap.Logger,
) *dashboardHandler {
	return &dashboardHandler{
		storage:        storage,
		forecaster:     forecaster,
		alertGen:       alertGen,
		billingService: billingService,
		trail:          trail,
		defaultStore:   defaultStore,
		logger:         logger,
	}
}

// scope resolves the store filter for a request: the store query parameter if
// present, else the configured default. Empty means all stores; an unknown
// store id is not an error and simply resolves to empty aggregates.
func (h *dashboardHandler) scope(ctx *gin.Context) string {
	if store, ok := ctx.GetQuery("store"); ok {
		return store
	}
	return h.defaultStore
}

// handleDemandReport handles GET /reports/demand.
func (h *dashboardHandler) handleDemandReport(ctx *gin.Context) {
	store := h.scope(ctx)
	report := h.forecaster.Report(h.storage.Products(), store)

	h.logger.Info("demand report generated", zap.String("store_filter", store), zap.Int("products", len(report)))
	ctx.JSON(http.StatusOK, report)
}

// handleAlerts handles GET /alerts. The date parameter defaults to today.
func (h *dashboardHandler) handleAlerts(ctx *gin.Context) {
	asOf := time.Now()
	if raw, ok := ctx.GetQuery("date"); ok {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.logger.Warn("invalid date filter", zap.String("date", raw), zap.Error(err))
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	store := h.scope(ctx)
	result := h.alertGen.Generate(h.storage.Products(), h.storage.Invoices(), store, asOf)
	ctx.JSON(http.StatusOK, result)
}

// handleGSTReport handles GET /reports/gst.
func (h *dashboardHandler) handleGSTReport(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, tax.MonthlyReports(h.storage.Invoices()))
}

// handleSalesByDay handles GET /analytics/sales-by-day.
func (h *dashboardHandler) handleSalesByDay(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, analytics.SalesByDayOfWeek(h.storage.Invoices()))
}

// handleHourlyTraffic handles GET /analytics/hourly-traffic.
func (h *dashboardHandler) handleHourlyTraffic(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, analytics.HourlyTraffic(h.storage.Invoices()))
}

// handlePaymentMethods handles GET /analytics/payment-methods.
func (h *dashboardHandler) handlePaymentMethods(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, analytics.PaymentMethodTotals(h.storage.Invoices()))
}

// handleDashboard handles GET /dashboard.
func (h *dashboardHandler) handleDashboard(ctx *gin.Context) {
	summary := analytics.BuildSummary(
		h.storage.Products(),
		h.storage.Invoices(),
		h.storage.RevenueSeries(),
		h.storage.TopSellers(),
	)
	ctx.JSON(http.StatusOK, summary)
}

// handleCustomers handles GET /customers.
func (h *dashboardHandler) handleCustomers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, analytics.CustomerProfiles(h.storage.Invoices()))
}

// handleAuditLogs handles GET /audit-logs.
func (h *dashboardHandler) handleAuditLogs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.trail.List())
}

// handleGetInvoice handles GET /invoices/:number.
func (h *dashboardHandler) handleGetInvoice(ctx *gin.Context) {
	number := ctx.Param("number")

	inv, err := h.billingService.LookupInvoice(number)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		h.logger.Error("failed to look up invoice", zap.String("invoice_number", number), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	ctx.JSON(http.StatusOK, inv)
}

// handleRefundInvoice handles POST /invoices/:number/refund.
func (h *dashboardHandler) handleRefundInvoice(ctx *gin.Context) {
	number := ctx.Param("number")

	refunded, err := h.billingService.RefundInvoice(number)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		case errors.Is(err, billing.ErrInvalidTransition):
			ctx.JSON(http.StatusConflict, gin.H{"error": "invoice already refunded"})
		default:
			h.logger.Error("failed to refund invoice", zap.String("invoice_number", number), zap.Error(err))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, refunded)
}
