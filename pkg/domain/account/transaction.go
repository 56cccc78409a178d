package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction records one executed transfer between two distinct accounts.
// It references the accounts by id and is never mutated after creation.
type Transaction struct {
	ID         uuid.UUID
	Amount     decimal.Decimal
	Date       time.Time
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Message    string
}

// NewTransaction builds the record of a transfer that has just been applied.
// A zero date is replaced with the current time.
func NewTransaction(sender, receiver *Account, amount decimal.Decimal, date time.Time, message string) *Transaction {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return &Transaction{
		ID:         uuid.New(),
		Amount:     amount,
		Date:       date,
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Message:    message,
	}
}

// NewTransactionFromData creates a Transaction from raw data (used for DB hydration or test fixtures).
func NewTransactionFromData(
	id uuid.UUID,
	amount decimal.Decimal,
	date time.Time,
	senderID, receiverID uuid.UUID,
	message string,
) *Transaction {
	return &Transaction{
		ID:         id,
		Amount:     amount,
		Date:       date,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    message,
	}
}
