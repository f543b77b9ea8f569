package model

import (
	"time"
)

// User represents the database model for wallet users
type User struct {
	ID             uint64    `gorm:"primaryKey"`
	Credits        int64     `gorm:"not null;default:0"`
	WelcomeClaimed bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
