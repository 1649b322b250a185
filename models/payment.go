package models

import (
	"time"
)

// Payment is the immutable record written by a successful verification.
// OrderNumber equals the counter value produced by the increment that created it.
type Payment struct {
	OrderNumber       int64     `json:"order_number" gorm:"primaryKey;autoIncrement:false"`
	Name              string    `json:"name" gorm:"not null"`
	Mobile            string    `json:"mobile" gorm:"size:10;not null"`
	Address           string    `json:"address" gorm:"not null"`
	Amount            int64     `json:"amount" gorm:"not null"`
	RazorpayOrderID   string    `json:"razorpay_order_id" gorm:"not null;index"`
	RazorpayPaymentID string    `json:"razorpay_payment_id" gorm:"not null;uniqueIndex"`
	CreatedAt         time.Time `json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
