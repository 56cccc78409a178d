package account

import (
	"time"

	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//revive:disable

// CreateAccountRequest represents the request body for creating a new account.
// A missing balance is reported by the account rules, not by validation.
type CreateAccountRequest struct {
	UserID        string           `json:"user_id" validate:"required,uuid"`
	Balance       *decimal.Decimal `json:"balance"`
	AccountType   string           `json:"account_type" validate:"omitempty,oneof=CHECKINGS SAVINGS"`
	AccountStatus string           `json:"account_status" validate:"omitempty,oneof=ACTIVE DELETED"`
	PhoneNumber   string           `json:"phone_number" validate:"omitempty,max=32"`
}

// ToAccountCreate maps the request to the service input. UserID must already be validated.
func (r *CreateAccountRequest) ToAccountCreate() dto.AccountCreate {
	return dto.AccountCreate{
		UserID:        uuid.MustParse(r.UserID),
		Balance:       r.Balance,
		AccountType:   r.AccountType,
		AccountStatus: r.AccountStatus,
		PhoneNumber:   r.PhoneNumber,
	}
}

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Balance       decimal.Decimal `json:"balance"`
	AccountType   string          `json:"account_type"`
	AccountStatus string          `json:"account_status"`
	OtpVerified   bool            `json:"otp_verified"`
	PhoneNumber   string          `json:"phone_number,omitempty"`
	CreationDate  time.Time       `json:"creation_date"`
}

// ToAccountDTO maps a domain account to its API representation.
func ToAccountDTO(a *account.Account) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:            a.ID.String(),
		UserID:        a.UserID.String(),
		Balance:       a.Balance,
		AccountType:   string(a.AccountType),
		AccountStatus: string(a.AccountStatus),
		OtpVerified:   a.OtpVerified,
		PhoneNumber:   a.PhoneNumber,
		CreationDate:  a.CreationDate,
	}
}

// ToAccountDTOs maps a list of accounts, never returning nil.
func ToAccountDTOs(accounts []*account.Account) []*AccountDTO {
	result := make([]*AccountDTO, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, ToAccountDTO(a))
	}
	return result
}
