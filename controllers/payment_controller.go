package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Govind-619/OrderLadder/services"
	"github.com/Govind-619/OrderLadder/utils"
)

// PaymentController serves the public quote, order and verification endpoints.
type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// GET /next-amount
func (pc *PaymentController) GetNextAmount(c *gin.Context) {
	amount, err := pc.payments.NextAmount(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextAmount": amount})
}

// POST /create-order
func (pc *PaymentController) CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid create-order body: %v", err)
		utils.BadRequest(c, utils.ReasonInvalidBody, utils.ErrInvalidBody)
		return
	}

	result, err := pc.payments.CreateOrder(c.Request.Context(), req)
	if err != nil {
		utils.LogError("CreateOrder failed: %v", err)
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// POST /verify-payment
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	utils.LogInfo("VerifyPayment called")

	var req services.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid verify-payment body: %v", err)
		utils.BadRequest(c, utils.ReasonInvalidBody, utils.ErrInvalidBody)
		return
	}

	payment, err := pc.payments.VerifyAndRecord(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"orderNumber": payment.OrderNumber,
	})
}
