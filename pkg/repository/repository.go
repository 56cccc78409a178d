package repository

import (
	"context"

	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/domain/otp"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	// Create inserts a new account.
	Create(ctx context.Context, account *account.Account) error
	// Update persists every mutable field of an existing account.
	Update(ctx context.Context, account *account.Account) error
	// Get returns the account or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	// GetForUpdate is Get with a row lock; only meaningful inside UnitOfWork.Do.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error)
	// List returns all accounts in creation order.
	List(ctx context.Context) ([]*account.Account, error)
	// ListByStatus returns the accounts with the given status in creation order.
	ListByStatus(ctx context.Context, status account.Status) ([]*account.Account, error)
}

// TransactionRepository defines the interface for transaction data access operations.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *account.Transaction) error
	// ListLatest returns at most limit transactions, newest first.
	ListLatest(ctx context.Context, limit int) ([]*account.Transaction, error)
	// ListByAccount returns transactions sent or received by the account, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error)
}

// OtpStore keeps issued one-time passcodes until they are used or expire.
type OtpStore interface {
	Save(ctx context.Context, o *otp.Otp) error
	// Get returns the code or domain.ErrNotFound when unknown or expired.
	Get(ctx context.Context, id uuid.UUID) (*otp.Otp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
