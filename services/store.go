package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Govind-619/OrderLadder/models"
)

var (
	// ErrPaymentNotFound is returned when no record carries the requested order number.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicatePayment is returned when a provider payment id was already recorded.
	ErrDuplicatePayment = errors.New("payment already recorded")
	// ErrCounterMissing is returned when the counter row was never seeded.
	ErrCounterMissing = errors.New("order counter is not initialized")
)

// ListOptions selects a page of payments, newest first.
type ListOptions struct {
	Offset int
	Limit  int
}

// LedgerAudit compares the counter with the stored records. In a healthy ledger
// TotalOrders, PaymentCount and MaxOrderNumber are all equal.
type LedgerAudit struct {
	TotalOrders    int64 `json:"total_orders"`
	PaymentCount   int64 `json:"payment_count"`
	MaxOrderNumber int64 `json:"max_order_number"`
	Consistent     bool  `json:"consistent"`
}

func newLedgerAudit(total, count, maxOrder int64) *LedgerAudit {
	return &LedgerAudit{
		TotalOrders:    total,
		PaymentCount:   count,
		MaxOrderNumber: maxOrder,
		Consistent:     total == count && total == maxOrder,
	}
}

// Store is the durable home of the counter and the payment records.
//
// RecordPayment is the only mutating operation. It must advance the counter by
// one, assign the new value to p.OrderNumber and insert p as a single atomic
// unit, serialized against every other RecordPayment call. On failure nothing
// is persisted and p.OrderNumber is left at zero.
type Store interface {
	TotalOrders(ctx context.Context) (int64, error)
	RecordPayment(ctx context.Context, p *models.Payment) error
	GetPayment(ctx context.Context, orderNumber int64) (*models.Payment, error)
	ListPayments(ctx context.Context, opts ListOptions) ([]models.Payment, int64, error)
	ListPaymentsBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error)
	Audit(ctx context.Context) (*LedgerAudit, error)
	Ping(ctx context.Context) error
}
