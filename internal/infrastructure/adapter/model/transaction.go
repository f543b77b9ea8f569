package model

import (
	"time"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	UserID      uint64    `gorm:"not null;index;index:idx_transactions_daily_check,priority:1"`
	Amount      int64     `gorm:"not null"`
	Type        string    `gorm:"not null;size:50;index:idx_transactions_daily_check,priority:2"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index:idx_transactions_daily_check,priority:3"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
