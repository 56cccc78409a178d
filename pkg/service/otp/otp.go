// Package otp issues and verifies the one-time passcodes that confirm a new account.
package otp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/account"
	domainotp "github.com/amirasaad/banksim/pkg/domain/otp"
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/amirasaad/banksim/pkg/provider"
	"github.com/amirasaad/banksim/pkg/repository"
)

const (
	// MsgInvalidCode is returned when the submitted code does not match the issued one.
	MsgInvalidCode = "Otp code is not valid"
	// DefaultTTL is used when no positive TTL is configured.
	DefaultTTL = 5 * time.Minute

	smsTemplate = "Your verification code is %d"
)

// Service issues codes, dispatches them by SMS and confirms them.
type Service struct {
	store  repository.OtpStore
	sms    provider.SMSSender
	uow    repository.UnitOfWork
	ttl    time.Duration
	length int
	logger *slog.Logger
}

// New creates an OTP Service. Non-positive ttl or length fall back to the defaults.
func New(
	store repository.OtpStore,
	sms provider.SMSSender,
	uow repository.UnitOfWork,
	ttl time.Duration,
	length int,
	logger *slog.Logger,
) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if length <= 0 {
		length = domainotp.DefaultLength
	}
	return &Service{
		store:  store,
		sms:    sms,
		uow:    uow,
		ttl:    ttl,
		length: length,
		logger: logger,
	}
}

// CreateOtpSendSms issues a code for acc, stores it and texts it to the
// account phone. A failed SMS is logged and does not fail the call, the
// handle still lets the caller complete verification.
func (s *Service) CreateOtpSendSms(ctx context.Context, acc *account.Account) (*dto.OtpHandle, error) {
	logger := s.logger.With("account_id", acc.ID)

	code, err := domainotp.New(acc.ID, s.length, s.ttl)
	if err != nil {
		logger.Error("CreateOtpSendSms failed: generate error", "error", err)
		return nil, err
	}
	if err := s.store.Save(ctx, code); err != nil {
		logger.Error("CreateOtpSendSms failed: store error", "error", err)
		return nil, err
	}

	if err := s.sms.Send(ctx, acc.PhoneNumber, fmt.Sprintf(smsTemplate, code.Code)); err != nil {
		logger.Warn("CreateOtpSendSms: sms dispatch failed", "otp_id", code.ID, "error", err)
	}

	logger.Info("CreateOtpSendSms completed", "otp_id", code.ID, "expires_at", code.ExpiresAt)
	return &dto.OtpHandle{OtpCode: code.Code, OtpID: code.ID}, nil
}

// Verify checks the submitted code and marks the account verified. The code
// is single use: it is deleted once the account has been updated.
func (s *Service) Verify(ctx context.Context, in dto.OtpVerify) (*account.Account, error) {
	logger := s.logger.With("otp_id", in.OtpID)

	code, err := s.store.Get(ctx, in.OtpID)
	if err != nil {
		logger.Warn("Verify failed: otp lookup", "error", err)
		return nil, err
	}
	if !code.Matches(in.OtpCode) {
		logger.Warn("Verify failed: code mismatch")
		return nil, domain.NewError(domain.ErrBadRequest, MsgInvalidCode)
	}

	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	acc, err := repo.Get(ctx, code.AccountID)
	if err != nil {
		logger.Error("Verify failed: account lookup", "account_id", code.AccountID, "error", err)
		return nil, err
	}
	if acc.IsDeleted() {
		logger.Warn("Verify failed: account deleted", "account_id", acc.ID)
		return nil, domain.NewError(domain.ErrAccountStatusInvalid, account.MsgStatusDeleted)
	}
	acc.MarkVerified()
	if err := repo.Update(ctx, acc); err != nil {
		logger.Error("Verify failed: account update", "account_id", acc.ID, "error", err)
		return nil, err
	}

	if err := s.store.Delete(ctx, code.ID); err != nil {
		logger.Warn("Verify: otp delete failed", "error", err)
	}
	logger.Info("Verify completed", "account_id", acc.ID)
	return acc, nil
}
