package services

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Govind-619/OrderLadder/models"
)

func seedMemoryStore(t *testing.T, s *MemoryStore, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, s.RecordPayment(context.Background(), &models.Payment{
			Name:              fmt.Sprintf("Customer %d", i),
			Amount:            int64(i * 10),
			RazorpayPaymentID: fmt.Sprintf("pay_%d", i),
		}))
	}
}

func TestMemoryStoreRecordPayment(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	p := &models.Payment{RazorpayPaymentID: "pay_1", Amount: 10}
	require.NoError(t, s.RecordPayment(ctx, p))
	assert.Equal(t, int64(1), p.OrderNumber)
	assert.False(t, p.CreatedAt.IsZero())

	dup := &models.Payment{RazorpayPaymentID: "pay_1", Amount: 20}
	err := s.RecordPayment(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicatePayment)
	assert.Equal(t, int64(0), dup.OrderNumber)

	total, err := s.TotalOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestMemoryStoreGetPayment(t *testing.T) {
	s := NewMemoryStore()
	seedMemoryStore(t, s, 3)

	p, err := s.GetPayment(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Customer 2", p.Name)

	for _, n := range []int64{0, -1, 4} {
		_, err := s.GetPayment(context.Background(), n)
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	}
}

func TestMemoryStoreListPayments(t *testing.T) {
	s := NewMemoryStore()
	seedMemoryStore(t, s, 5)

	page, total, err := s.ListPayments(context.Background(), ListOptions{Offset: 0, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, int64(5), page[0].OrderNumber)
	assert.Equal(t, int64(4), page[1].OrderNumber)

	page, _, err = s.ListPayments(context.Background(), ListOptions{Offset: 4, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(1), page[0].OrderNumber)

	page, _, err = s.ListPayments(context.Background(), ListOptions{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryStoreListPaymentsBetween(t *testing.T) {
	s := NewMemoryStore()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	day := 0
	s.now = func() time.Time { return base.AddDate(0, 0, day) }

	for day = 0; day < 4; day++ {
		require.NoError(t, s.RecordPayment(context.Background(), &models.Payment{RazorpayPaymentID: fmt.Sprintf("pay_%d", day)}))
	}

	got, err := s.ListPaymentsBetween(context.Background(), base.AddDate(0, 0, 1), base.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].OrderNumber)
	assert.Equal(t, int64(3), got[1].OrderNumber)
}

func TestMemoryStoreAudit(t *testing.T) {
	s := NewMemoryStore()
	audit, err := s.Audit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &LedgerAudit{Consistent: true}, audit)

	seedMemoryStore(t, s, 3)
	audit, err = s.Audit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &LedgerAudit{TotalOrders: 3, PaymentCount: 3, MaxOrderNumber: 3, Consistent: true}, audit)
}

func TestNewLedgerAuditDetectsDrift(t *testing.T) {
	assert.False(t, newLedgerAudit(4, 3, 3).Consistent)
	assert.False(t, newLedgerAudit(3, 3, 4).Consistent)
	assert.True(t, newLedgerAudit(7, 7, 7).Consistent)
}

func TestMemoryStoreListPaymentsOutOfRangeOffset(t *testing.T) {
	s := NewMemoryStore()
	seedMemoryStore(t, s, 1)

	for _, offset := range []int{-4, 1, math.MaxInt} {
		page, total, err := s.ListPayments(context.Background(), ListOptions{Offset: offset, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Empty(t, page, "offset %d", offset)
	}
}
