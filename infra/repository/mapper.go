package repository

import (
	"github.com/amirasaad/banksim/pkg/domain/account"
)

func mapAccountToModel(a *account.Account) Account {
	return Account{
		ID:            a.ID,
		UserID:        a.UserID,
		Balance:       a.Balance,
		AccountType:   string(a.AccountType),
		AccountStatus: string(a.AccountStatus),
		OtpVerified:   a.OtpVerified,
		PhoneNumber:   a.PhoneNumber,
		CreatedAt:     a.CreationDate,
	}
}

func mapModelToAccount(m *Account) *account.Account {
	return account.NewAccountFromData(
		m.ID,
		m.UserID,
		m.Balance,
		account.Type(m.AccountType),
		account.Status(m.AccountStatus),
		m.OtpVerified,
		m.PhoneNumber,
		m.CreatedAt,
	)
}

func mapModelsToAccounts(ms []Account) []*account.Account {
	result := make([]*account.Account, 0, len(ms))
	for i := range ms {
		result = append(result, mapModelToAccount(&ms[i]))
	}
	return result
}

func mapTransactionToModel(t *account.Transaction) Transaction {
	return Transaction{
		ID:         t.ID,
		Amount:     t.Amount,
		Date:       t.Date,
		SenderID:   t.SenderID,
		ReceiverID: t.ReceiverID,
		Message:    t.Message,
	}
}

func mapModelToTransaction(m *Transaction) *account.Transaction {
	return account.NewTransactionFromData(m.ID, m.Amount, m.Date, m.SenderID, m.ReceiverID, m.Message)
}

func mapModelsToTransactions(ms []Transaction) []*account.Transaction {
	result := make([]*account.Transaction, 0, len(ms))
	for i := range ms {
		result = append(result, mapModelToTransaction(&ms[i]))
	}
	return result
}
