package model

import (
	"time"
)

// Method represents the database model for payment methods
type Method struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"uniqueIndex:idx_methods_name;not null;size:100"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the table name for Method
func (Method) TableName() string {
	return "methods"
}
