package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferCommand carries a transfer request by account identifiers.
// The service loads fresh account state for both ids.
type TransferCommand struct {
	Amount     decimal.Decimal
	Date       time.Time // Zero means now
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Message    string
}
