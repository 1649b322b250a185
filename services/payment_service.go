package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Govind-619/OrderLadder/models"
	"github.com/Govind-619/OrderLadder/utils"
)

// PaymentConfig holds the pricing and provider settings of the service.
type PaymentConfig struct {
	// UnitPrice is the price step of the ladder and also the minimum payable amount.
	UnitPrice int64
	Currency  string
	KeyID     string
	KeySecret string
}

// CreateOrderRequest is the client input for minting a provider order.
// Amount is kept as the decoded JSON value so non-numbers can be reported as invalid_amount.
type CreateOrderRequest struct {
	Name    string      `json:"name"`
	Mobile  string      `json:"mobile"`
	Address string      `json:"address"`
	Amount  interface{} `json:"amount"`
}

// CreateOrderResult is what the client needs to open the provider checkout.
type CreateOrderResult struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Key     string `json:"key"`
}

// VerifyPaymentRequest carries the provider's proof of payment plus the customer details.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string      `json:"razorpay_order_id"`
	RazorpayPaymentID string      `json:"razorpay_payment_id"`
	RazorpaySignature string      `json:"razorpay_signature"`
	Name              string      `json:"name"`
	Mobile            string      `json:"mobile"`
	Address           string      `json:"address"`
	Amount            interface{} `json:"amount"`
}

// PaymentService quotes, issues and verifies payments.
type PaymentService struct {
	store      Store
	provider   OrderProvider
	notifier   Notifier
	cfg        PaymentConfig
	newReceipt func() string
}

func NewPaymentService(store Store, provider OrderProvider, notifier Notifier, cfg PaymentConfig) *PaymentService {
	if notifier == nil {
		notifier = Notifiers{}
	}
	return &PaymentService{
		store:    store,
		provider: provider,
		notifier: notifier,
		cfg:      cfg,
		newReceipt: func() string {
			// Razorpay caps receipts at 40 characters.
			return "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
}

// NextAmount returns (T+1) * UnitPrice for the current counter value T.
// It reads the counter on every call and reserves nothing.
func (s *PaymentService) NextAmount(ctx context.Context) (int64, error) {
	total, err := s.store.TotalOrders(ctx)
	if err != nil {
		utils.LogError("Failed to read order counter: %v", err)
		return 0, utils.NewStorageError(err)
	}
	utils.QuotesServed.Inc()
	return (total + 1) * s.cfg.UnitPrice, nil
}

// CreateOrder validates the request and asks the provider for an order handle.
// No local state is touched.
func (s *PaymentService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	if err := utils.ValidateCustomer(req.Name, req.Mobile, req.Address); err != nil {
		return nil, err
	}
	amount, err := utils.ValidateAmount(req.Amount, s.cfg.UnitPrice)
	if err != nil {
		return nil, err
	}

	receipt := s.newReceipt()
	orderID, err := s.provider.CreateOrder(ctx, ProviderOrder{
		AmountMinor: amount * utils.MinorUnitsPerUnit,
		Currency:    s.cfg.Currency,
		Receipt:     receipt,
	})
	if err != nil {
		utils.ProviderOrders.WithLabelValues("error").Inc()
		utils.LogError("Failed to create provider order for receipt %s: %v", receipt, err)
		return nil, utils.NewProviderError(err)
	}
	utils.ProviderOrders.WithLabelValues("created").Inc()
	utils.LogInfo("Created provider order %s for amount %d (receipt %s)", orderID, amount, receipt)

	return &CreateOrderResult{
		OrderID: orderID,
		Amount:  amount,
		Key:     s.cfg.KeyID,
	}, nil
}

// VerifyAndRecord authenticates the payment signature and then records the
// payment, receiving the next order number. A rejected or rolled back request
// leaves the counter and the records untouched.
func (s *PaymentService) VerifyAndRecord(ctx context.Context, req VerifyPaymentRequest) (*models.Payment, error) {
	if err := s.validateVerification(req); err != nil {
		s.logUnrecorded(req, err)
		return nil, err
	}
	amount, err := utils.ValidateAmount(req.Amount, s.cfg.UnitPrice)
	if err != nil {
		s.logUnrecorded(req, err)
		return nil, err
	}

	if !utils.VerifyPaymentSignature(s.cfg.KeySecret, req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		utils.Verifications.WithLabelValues(utils.VerificationRejected).Inc()
		utils.LogError("Invalid payment signature for order %s, payment %s", req.RazorpayOrderID, req.RazorpayPaymentID)
		return nil, utils.NewVerificationError(utils.ReasonInvalidSignature, utils.ErrInvalidSignature)
	}

	payment := &models.Payment{
		Name:              req.Name,
		Mobile:            req.Mobile,
		Address:           req.Address,
		Amount:            amount,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
	}
	if err := s.store.RecordPayment(ctx, payment); err != nil {
		utils.Verifications.WithLabelValues(utils.VerificationRolledBack).Inc()
		utils.LogError("Failed to record payment for %s: %v", req.RazorpayPaymentID, err)
		return nil, utils.NewStorageError(err)
	}
	utils.Verifications.WithLabelValues(utils.VerificationCommitted).Inc()
	utils.ObserveLedgerTotal(payment.OrderNumber)
	utils.LogInfo("Payment recorded: order #%d, payment %s, amount %d", payment.OrderNumber, payment.RazorpayPaymentID, payment.Amount)

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.notifier.PaymentRecorded(notifyCtx, *payment); err != nil {
		utils.LogError("Failed to notify about order #%d: %v", payment.OrderNumber, err)
	}

	return payment, nil
}

// logUnrecorded keeps the provider ids of a rejected verification so a payment
// the customer did complete can be reconciled by hand.
func (s *PaymentService) logUnrecorded(req VerifyPaymentRequest, err error) {
	utils.Verifications.WithLabelValues(utils.VerificationInvalid).Inc()
	utils.LogError("Unrecorded verification for order %s, payment %s: %v", req.RazorpayOrderID, req.RazorpayPaymentID, err)
}

func (s *PaymentService) validateVerification(req VerifyPaymentRequest) error {
	if err := utils.RequireFields(
		[2]string{"razorpay_order_id", req.RazorpayOrderID},
		[2]string{"razorpay_payment_id", req.RazorpayPaymentID},
		[2]string{"razorpay_signature", req.RazorpaySignature},
	); err != nil {
		return err
	}
	return utils.ValidateCustomer(req.Name, req.Mobile, req.Address)
}
