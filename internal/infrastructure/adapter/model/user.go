package model

import (
	"time"
)

// User represents a registered API consumer
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"uniqueIndex:idx_users_email;not null;size:255"`
	APIKey    string    `gorm:"column:api_key;uniqueIndex:idx_users_api_key;not null;size:128"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
