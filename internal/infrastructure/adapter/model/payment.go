package model

import (
	"time"
)

// Payment represents the database model for payments
type Payment struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement"`
	Description    string    `gorm:"not null;type:text"`
	Amount         int64     `gorm:"not null"` // Amount in cents
	CreatedAt      time.Time `gorm:"not null"`
	FromCustomerID *uint64   `gorm:"column:from_customer_id;index"`
	ToCustomerID   uint64    `gorm:"column:to_customer_id;not null;index"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
