package controllers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Govind-619/OrderLadder/models"
	"github.com/Govind-619/OrderLadder/services"
	"github.com/Govind-619/OrderLadder/utils"
)

// AdminPaymentController exposes the ledger to the admin.
type AdminPaymentController struct {
	store    services.Store
	currency string
	now      func() time.Time
}

func NewAdminPaymentController(store services.Store, currency string) *AdminPaymentController {
	return &AdminPaymentController{store: store, currency: currency, now: time.Now}
}

// GET /admin/payments
func (ac *AdminPaymentController) ListPayments(c *gin.Context) {
	pagination := utils.NewPagination(c)

	payments, total, err := ac.store.ListPayments(c.Request.Context(), services.ListOptions{
		Offset: pagination.Offset,
		Limit:  pagination.Limit,
	})
	if err != nil {
		utils.LogError("Failed to list payments: %v", err)
		utils.RespondError(c, utils.NewStorageError(err))
		return
	}
	pagination.SetTotal(total)
	utils.LogDebug("Listed %d of %d payments (page %d)", len(payments), total, pagination.Page)

	utils.SendPaginatedResponse(c, utils.MsgPaymentsRetrieved, payments, pagination)
}

// GET /admin/payments/:order_number
func (ac *AdminPaymentController) GetPayment(c *gin.Context) {
	orderNumber, ok := parseOrderNumber(c)
	if !ok {
		return
	}

	payment, err := ac.store.GetPayment(c.Request.Context(), orderNumber)
	if err != nil {
		respondLookupError(c, orderNumber, err)
		return
	}
	utils.Success(c, utils.MsgPaymentRetrieved, payment)
}

// GET /admin/payments/:order_number/receipt
func (ac *AdminPaymentController) DownloadReceipt(c *gin.Context) {
	orderNumber, ok := parseOrderNumber(c)
	if !ok {
		return
	}

	payment, err := ac.store.GetPayment(c.Request.Context(), orderNumber)
	if err != nil {
		respondLookupError(c, orderNumber, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteReceiptPDF(&buf, *payment, ac.currency); err != nil {
		utils.LogError("Failed to render receipt for order #%d: %v", orderNumber, err)
		utils.InternalServerError(c, "Failed to render receipt")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt_%d.pdf", orderNumber))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GET /admin/ledger/audit
func (ac *AdminPaymentController) AuditLedger(c *gin.Context) {
	audit, err := ac.store.Audit(c.Request.Context())
	if err != nil {
		utils.LogError("Ledger audit failed: %v", err)
		utils.RespondError(c, utils.NewStorageError(err))
		return
	}
	if !audit.Consistent {
		utils.LogError("Ledger inconsistent: counter=%d records=%d max=%d",
			audit.TotalOrders, audit.PaymentCount, audit.MaxOrderNumber)
	}
	utils.Success(c, utils.MsgLedgerAudited, audit)
}

// GET /admin/reports/payments.xlsx
func (ac *AdminPaymentController) DownloadReportExcel(c *gin.Context) {
	ac.downloadReport(c, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", services.WritePaymentsXLSX)
}

// GET /admin/reports/payments.pdf
func (ac *AdminPaymentController) DownloadReportPDF(c *gin.Context) {
	ac.downloadReport(c, "pdf", "application/pdf", services.WritePaymentsPDF)
}

func (ac *AdminPaymentController) downloadReport(c *gin.Context, ext, contentType string, write func(w io.Writer, title string, payments []models.Payment) error) {
	period := c.DefaultQuery("period", "day")
	from, to, err := services.ReportPeriod(period, ac.now())
	if err != nil {
		utils.BadRequest(c, "invalid_period", err.Error())
		return
	}

	payments, err := ac.store.ListPaymentsBetween(c.Request.Context(), from, to)
	if err != nil {
		utils.LogError("Failed to fetch payments for %s report: %v", period, err)
		utils.RespondError(c, utils.NewStorageError(err))
		return
	}

	title := fmt.Sprintf("Payments Report (%s) | to %s", period, to.Format("2006-01-02"))
	if !from.IsZero() {
		title = fmt.Sprintf("Payments Report (%s) | %s to %s", period, from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	var buf bytes.Buffer
	if err := write(&buf, title, payments); err != nil {
		utils.LogError("Failed to write %s report: %v", ext, err)
		utils.InternalServerError(c, "Failed to generate report")
		return
	}
	utils.LogInfo("Generated %s payments report for period %s with %d rows", ext, period, len(payments))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=payments_%s.%s", period, ext))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func parseOrderNumber(c *gin.Context) (int64, bool) {
	orderNumber, err := strconv.ParseInt(c.Param("order_number"), 10, 64)
	if err != nil || orderNumber < 1 {
		utils.BadRequest(c, "invalid_order_number", "Order number must be a positive integer")
		return 0, false
	}
	return orderNumber, true
}

func respondLookupError(c *gin.Context, orderNumber int64, err error) {
	if errors.Is(err, services.ErrPaymentNotFound) {
		utils.NotFound(c, fmt.Sprintf("Order #%d not found", orderNumber))
		return
	}
	utils.LogError("Failed to load order #%d: %v", orderNumber, err)
	utils.RespondError(c, utils.NewStorageError(err))
}
