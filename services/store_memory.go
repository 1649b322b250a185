package services

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Govind-619/OrderLadder/models"
)

// MemoryStore is an in-process Store. The mutex plays the role of the counter
// row lock; an increment is staged and only applied once the insert succeeds.
type MemoryStore struct {
	mu         sync.Mutex
	total      int64
	payments   []models.Payment
	paymentIDs map[string]struct{}
	now        func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		paymentIDs: make(map[string]struct{}),
		now:        time.Now,
	}
}

func (s *MemoryStore) TotalOrders(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total, nil
}

func (s *MemoryStore) RecordPayment(ctx context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.total + 1
	if _, ok := s.paymentIDs[p.RazorpayPaymentID]; ok {
		return errors.Wrapf(ErrDuplicatePayment, "payment %s", p.RazorpayPaymentID)
	}

	rec := *p
	rec.OrderNumber = next
	rec.CreatedAt = s.now()
	s.payments = append(s.payments, rec)
	s.paymentIDs[rec.RazorpayPaymentID] = struct{}{}
	s.total = next

	p.OrderNumber = rec.OrderNumber
	p.CreatedAt = rec.CreatedAt
	return nil
}

func (s *MemoryStore) GetPayment(ctx context.Context, orderNumber int64) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// payments[i] holds order number i+1
	if orderNumber < 1 || orderNumber > int64(len(s.payments)) {
		return nil, ErrPaymentNotFound
	}
	p := s.payments[orderNumber-1]
	return &p, nil
}

func (s *MemoryStore) ListPayments(ctx context.Context, opts ListOptions) ([]models.Payment, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := int64(len(s.payments))
	out := []models.Payment{}
	if opts.Offset < 0 || opts.Offset >= len(s.payments) {
		return out, total, nil
	}
	for i := len(s.payments) - 1 - opts.Offset; i >= 0 && len(out) < opts.Limit; i-- {
		out = append(out, s.payments[i])
	}
	return out, total, nil
}

func (s *MemoryStore) ListPaymentsBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Payment{}
	for _, p := range s.payments {
		if !p.CreatedAt.Before(from) && !p.CreatedAt.After(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) Audit(ctx context.Context) (*LedgerAudit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var maxOrder int64
	for _, p := range s.payments {
		if p.OrderNumber > maxOrder {
			maxOrder = p.OrderNumber
		}
	}
	return newLedgerAudit(s.total, int64(len(s.payments)), maxOrder), nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
