package repository

import (
	"context"
	"time"

	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const msgAccountNotFound = "Account not found"

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository on the given session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	m := mapAccountToModel(a)
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(&m).Error)
}

// Update writes the mutable columns of the account. A missing row is NotFound.
func (r *accountRepository) Update(ctx context.Context, a *account.Account) error {
	result := r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"balance":        a.Balance,
			"account_type":   string(a.AccountType),
			"account_status": string(a.AccountStatus),
			"otp_verified":   a.OtpVerified,
			"phone_number":   a.PhoneNumber,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewError(domain.ErrNotFound, msgAccountNotFound)
	}
	return nil
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.first(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the row until the surrounding transaction ends.
func (r *accountRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *accountRepository) first(db *gorm.DB, id uuid.UUID) (*account.Account, error) {
	var m Account
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return nil, notFoundAs(err, msgAccountNotFound)
	}
	return mapModelToAccount(&m), nil
}

func (r *accountRepository) List(ctx context.Context) ([]*account.Account, error) {
	var ms []Account
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&ms).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapModelsToAccounts(ms), nil
}

func (r *accountRepository) ListByStatus(ctx context.Context, status account.Status) ([]*account.Account, error) {
	var ms []Account
	err := r.db.WithContext(ctx).
		Where("account_status = ?", string(status)).
		Order("created_at ASC").
		Find(&ms).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapModelsToAccounts(ms), nil
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository on the given session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *account.Transaction) error {
	m := mapTransactionToModel(t)
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *transactionRepository) ListLatest(ctx context.Context, limit int) ([]*account.Transaction, error) {
	var ms []Transaction
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapModelsToTransactions(ms), nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error) {
	var ms []Transaction
	err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", accountID, accountID).
		Order("date DESC").
		Find(&ms).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapModelsToTransactions(ms), nil
}
