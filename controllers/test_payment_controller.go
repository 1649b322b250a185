package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Govind-619/OrderLadder/utils"
)

// PaymentSimulator signs fake checkouts so the verify flow can be exercised
// without the provider's hosted checkout. It is never mounted in production.
type PaymentSimulator struct {
	keySecret string
}

func NewPaymentSimulator(keySecret string) *PaymentSimulator {
	return &PaymentSimulator{keySecret: keySecret}
}

// POST /dev/simulate-payment?order_id=...
func (ps *PaymentSimulator) SimulatePayment(c *gin.Context) {
	orderID := c.Query("order_id")
	if orderID == "" {
		utils.BadRequest(c, utils.ReasonMissingField, "order_id is required")
		return
	}

	paymentID := "pay_test_" + uuid.New().String()[:14]
	utils.LogDebug("Simulated payment %s for order %s", paymentID, orderID)

	utils.Success(c, utils.MsgPaymentSimulated, gin.H{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
		"razorpay_signature":  utils.PaymentSignature(ps.keySecret, orderID, paymentID),
	})
}
