package account

import (
	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Messages of the transfer rules, surfaced verbatim to API consumers.
const (
	MsgNullParty           = "Sender or receiver can not be null"
	MsgSameAccount         = "Sender account needs to be different from receiver account"
	MsgNonPositiveAmount   = "Transfer amount needs to be bigger than Zero"
	MsgSenderDeleted       = "Sender account is deleted, you can not send money from this account"
	MsgReceiverDeleted     = "Receiver account is deleted, you can not send money to this account"
	MsgNotVerified         = "account not verified yet."
	MsgSavingsOwnership    = "When one of the account type is SAVINGS, sender and receiver have to be same person"
	MsgInsufficientBalance = "Balance is not enough for this transaction"
	MsgAmountScale         = "Transfer amount can not have more than 2 decimal places"
)

// MaxScale is the number of decimal places balances and amounts are stored with.
const MaxScale = 2

// exceedsScale reports whether d carries more decimal places than MaxScale.
// Trailing zeros do not count.
func exceedsScale(d decimal.Decimal) bool {
	return !d.Equal(d.Truncate(MaxScale))
}

// ValidateTransferRequest runs the rules that need only the identifiers,
// before any account is loaded.
func ValidateTransferRequest(senderID, receiverID uuid.UUID) error {
	if senderID == uuid.Nil || receiverID == uuid.Nil {
		return domain.NewError(domain.ErrBadRequest, MsgNullParty)
	}
	if senderID == receiverID {
		return domain.NewError(domain.ErrBadRequest, MsgSameAccount)
	}
	return nil
}

// ValidateTransfer evaluates the transfer rules in order and returns the
// first violation. The order is part of the contract:
//
//  1. both parties present
//  2. distinct accounts
//  3. sender not deleted
//  4. receiver not deleted
//  5. sender verified
//  6. receiver verified
//  7. SAVINGS involved => same owner
//  8. sender balance covers the amount
//  9. amount is positive
//  10. amount has at most MaxScale decimal places
func ValidateTransfer(sender, receiver *Account, amount decimal.Decimal) error {
	if sender == nil || receiver == nil {
		return domain.NewError(domain.ErrBadRequest, MsgNullParty)
	}
	if sender.ID == receiver.ID {
		return domain.NewError(domain.ErrBadRequest, MsgSameAccount)
	}
	if sender.IsDeleted() {
		return domain.NewError(domain.ErrBadRequest, MsgSenderDeleted)
	}
	if receiver.IsDeleted() {
		return domain.NewError(domain.ErrBadRequest, MsgReceiverDeleted)
	}
	if !sender.OtpVerified {
		return domain.NewError(domain.ErrAccountNotVerified, MsgNotVerified)
	}
	if !receiver.OtpVerified {
		return domain.NewError(domain.ErrAccountNotVerified, MsgNotVerified)
	}
	if (sender.IsSavings() || receiver.IsSavings()) && sender.UserID != receiver.UserID {
		return domain.NewError(domain.ErrAccountOwnership, MsgSavingsOwnership)
	}
	if sender.Balance.LessThan(amount) {
		return domain.NewError(domain.ErrBalanceInsufficient, MsgInsufficientBalance)
	}
	if !amount.IsPositive() {
		return domain.NewError(domain.ErrBadRequest, MsgNonPositiveAmount)
	}
	if exceedsScale(amount) {
		return domain.NewError(domain.ErrBadRequest, MsgAmountScale)
	}
	return nil
}

// Transfer validates and applies a transfer to the two in-memory accounts:
// the sender is debited and the receiver credited by amount. The caller
// persists both accounts and the returned transaction.
func Transfer(sender, receiver *Account, amount decimal.Decimal) error {
	if err := ValidateTransfer(sender, receiver, amount); err != nil {
		return err
	}
	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)
	return nil
}
