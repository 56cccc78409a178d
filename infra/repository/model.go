package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Balance       decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	AccountType   string          `gorm:"type:varchar(16);not null"`
	AccountStatus string          `gorm:"type:varchar(16);not null;index"`
	OtpVerified   bool            `gorm:"not null"`
	PhoneNumber   string          `gorm:"type:varchar(32)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName pins the table created by the migrations.
func (Account) TableName() string { return "accounts" }

// Transaction represents a persisted transfer.
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount     decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Date       time.Time       `gorm:"column:date;not null;index"`
	SenderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Message    string          `gorm:"type:text"`
	CreatedAt  time.Time
}

func (Transaction) TableName() string { return "transactions" }
