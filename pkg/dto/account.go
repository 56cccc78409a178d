package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	UserID        uuid.UUID        // User who owns the account
	Balance       *decimal.Decimal // Initial balance, nil when not supplied
	AccountType   string           // CHECKINGS or SAVINGS, defaults to CHECKINGS
	AccountStatus string           // Requested status, defaults to ACTIVE
	PhoneNumber   string           // OTP contact channel
}
