package models

import "time"

// CounterID is the primary key of the single counter row.
const CounterID = 1

// Counter tracks how many payments have ever been verified and recorded.
// It is mutated only inside the verification transaction.
type Counter struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	TotalOrders int64     `json:"total_orders" gorm:"not null;default:0"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Counter) TableName() string { return "counter" }
