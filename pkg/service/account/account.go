// Package account implements the account lifecycle: creation pending OTP
// verification, listing, retrieval and soft deletion.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/amirasaad/banksim/pkg/repository"
	"github.com/google/uuid"
)

// OtpIssuer issues the verification code of a freshly created account.
type OtpIssuer interface {
	CreateOtpSendSms(ctx context.Context, acc *account.Account) (*dto.OtpHandle, error)
}

// Service provides business logic for account operations.
type Service struct {
	uow    repository.UnitOfWork
	otp    OtpIssuer
	logger *slog.Logger
}

// New creates a new account Service.
func New(uow repository.UnitOfWork, otp OtpIssuer, logger *slog.Logger) *Service {
	return &Service{uow: uow, otp: otp, logger: logger}
}

// CreateNewAccount persists an unverified account and issues its OTP.
// The balance rule is checked before the status rule.
func (s *Service) CreateNewAccount(ctx context.Context, in dto.AccountCreate) (*dto.OtpHandle, error) {
	logger := s.logger.With("user_id", in.UserID, "account_type", in.AccountType)
	logger.Info("CreateNewAccount started")

	acc, err := account.New().
		WithUserID(in.UserID).
		WithBalance(in.Balance).
		WithType(account.Type(in.AccountType)).
		WithStatus(account.Status(in.AccountStatus)).
		WithPhoneNumber(in.PhoneNumber).
		Build()
	if err != nil {
		logger.Warn("CreateNewAccount failed: domain error", "error", err)
		return nil, err
	}

	repo, err := s.uow.AccountRepository()
	if err != nil {
		logger.Error("CreateNewAccount failed: AccountRepository error", "error", err)
		return nil, err
	}
	if err := repo.Create(ctx, acc); err != nil {
		logger.Error("CreateNewAccount failed: repo create error", "error", err)
		return nil, err
	}

	handle, err := s.otp.CreateOtpSendSms(ctx, acc)
	if err != nil {
		logger.Error("CreateNewAccount failed: otp error", "account_id", acc.ID, "error", err)
		return nil, err
	}

	logger.Info("CreateNewAccount completed", "account_id", acc.ID, "otp_id", handle.OtpID)
	return handle, nil
}

// ListAllAccount returns every account, deleted ones included, in creation order.
func (s *Service) ListAllAccount(ctx context.Context) ([]*account.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

// ListAllActiveAccount returns the ACTIVE accounts in creation order.
func (s *Service) ListAllActiveAccount(ctx context.Context) ([]*account.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByStatus(ctx, account.StatusActive)
}

// DeleteAccount soft-deletes the account and returns its updated state.
func (s *Service) DeleteAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	logger := s.logger.With("account_id", id)

	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acc, err := repo.Get(ctx, id)
	if err != nil {
		logger.Warn("DeleteAccount failed: lookup", "error", err)
		return nil, err
	}
	acc.MarkDeleted()
	if err := repo.Update(ctx, acc); err != nil {
		logger.Error("DeleteAccount failed: repo update error", "error", err)
		return nil, err
	}

	logger.Info("DeleteAccount completed")
	return acc, nil
}

// RetrieveByID returns the account or a NotFound error.
func (s *Service) RetrieveByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}
