package transaction

import (
	"time"

	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequest represents the request body for a transfer. Missing
// parties and non-positive amounts are reported by the transfer rules.
type TransferRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Sender   string          `json:"sender" validate:"omitempty,uuid"`
	Receiver string          `json:"receiver" validate:"omitempty,uuid"`
	Message  string          `json:"message" validate:"max=255"`
	Date     *time.Time      `json:"date"`
}

// ToTransferCommand maps the request to the service input. An absent party
// maps to uuid.Nil.
func (r *TransferRequest) ToTransferCommand() dto.TransferCommand {
	cmd := dto.TransferCommand{
		Amount:  r.Amount,
		Message: r.Message,
	}
	if r.Sender != "" {
		cmd.SenderID = uuid.MustParse(r.Sender)
	}
	if r.Receiver != "" {
		cmd.ReceiverID = uuid.MustParse(r.Receiver)
	}
	if r.Date != nil {
		cmd.Date = *r.Date
	}
	return cmd
}

// TransactionDTO is the API response representation of a transaction.
type TransactionDTO struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Sender   string          `json:"sender"`
	Receiver string          `json:"receiver"`
	Message  string          `json:"message,omitempty"`
}

// ToTransactionDTO maps a domain transaction to its API representation.
func ToTransactionDTO(tx *account.Transaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		ID:       tx.ID.String(),
		Amount:   tx.Amount,
		Date:     tx.Date,
		Sender:   tx.SenderID.String(),
		Receiver: tx.ReceiverID.String(),
		Message:  tx.Message,
	}
}

func ToTransactionDTOs(txs []*account.Transaction) []*TransactionDTO {
	result := make([]*TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		result = append(result, ToTransactionDTO(tx))
	}
	return result
}
