package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Govind-619/OrderLadder/models"
	"github.com/Govind-619/OrderLadder/utils"
)

// GormStore keeps the ledger in PostgreSQL.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) TotalOrders(ctx context.Context) (int64, error) {
	var counter models.Counter
	if err := s.db.WithContext(ctx).First(&counter, models.CounterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCounterMissing
		}
		return 0, errors.Wrap(err, "read counter")
	}
	return counter.TotalOrders, nil
}

// RecordPayment runs increment, read-back and insert in one transaction.
// The UPDATE ... RETURNING takes the counter row lock and holds it until commit,
// so a concurrent verification blocks on it and then sees the committed value.
// The transaction is detached from ctx cancellation: once begun it ends in
// commit or rollback.
func (s *GormStore) RecordPayment(ctx context.Context, p *models.Payment) error {
	tx := s.db.WithContext(context.WithoutCancel(ctx)).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}

	counter := models.Counter{ID: models.CounterID}
	res := tx.Model(&counter).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "total_orders"}}}).
		Update("total_orders", gorm.Expr("total_orders + ?", 1))
	if res.Error != nil {
		tx.Rollback()
		return errors.Wrap(res.Error, "increment counter")
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		return ErrCounterMissing
	}
	utils.LogDebug("Counter advanced to %d for payment %s", counter.TotalOrders, p.RazorpayPaymentID)

	p.OrderNumber = counter.TotalOrders
	if err := tx.Create(p).Error; err != nil {
		tx.Rollback()
		p.OrderNumber = 0
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errors.Wrapf(ErrDuplicatePayment, "payment %s", p.RazorpayPaymentID)
		}
		return errors.Wrap(err, "insert payment")
	}

	if err := tx.Commit().Error; err != nil {
		p.OrderNumber = 0
		return errors.Wrap(err, "commit transaction")
	}
	return nil
}

func (s *GormStore) GetPayment(ctx context.Context, orderNumber int64) (*models.Payment, error) {
	var p models.Payment
	err := s.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errors.Wrapf(err, "get payment %d", orderNumber)
	}
	return &p, nil
}

func (s *GormStore) ListPayments(ctx context.Context, opts ListOptions) ([]models.Payment, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count payments")
	}

	payments := []models.Payment{}
	err := s.db.WithContext(ctx).
		Order("order_number DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&payments).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list payments")
	}
	return payments, total, nil
}

func (s *GormStore) ListPaymentsBetween(ctx context.Context, from, to time.Time) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := s.db.WithContext(ctx).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("order_number ASC").
		Find(&payments).Error
	if err != nil {
		return nil, errors.Wrap(err, "list payments by period")
	}
	return payments, nil
}

func (s *GormStore) Audit(ctx context.Context) (*LedgerAudit, error) {
	total, err := s.TotalOrders(ctx)
	if err != nil {
		return nil, err
	}

	var stats struct {
		Count int64
		Max   int64
	}
	err = s.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("COUNT(*) AS count, COALESCE(MAX(order_number), 0) AS max").
		Scan(&stats).Error
	if err != nil {
		return nil, errors.Wrap(err, "aggregate payments")
	}
	return newLedgerAudit(total, stats.Count, stats.Max), nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}
	return sqlDB.PingContext(ctx)
}
