package model

import (
	"time"
)

// Customer represents the database model for customers
type Customer struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"not null;size:255"`
	Email     string    `gorm:"uniqueIndex:idx_customers_email;not null;size:255"`
	Balance   int64     `gorm:"not null"` // Balance in cents
	Active    bool      `gorm:"not null"`
	JWT       string    `gorm:"column:jwt;type:text"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
