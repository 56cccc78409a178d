// Package transaction validates and executes transfers between accounts and
// lists the resulting transaction records.
package transaction

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/amirasaad/banksim/pkg/repository"
	"github.com/google/uuid"
)

// LastTransactionsLimit is the number of records ListLastTransactions returns.
const LastTransactionsLimit = 10

// Service executes transfers.
//
// With atomic unset, the reads, the balance writes and the record insert are
// separate statements and concurrent transfers from the same account can
// overdraw it. With atomic set, the whole transfer runs in one database
// transaction holding row locks on both accounts.
type Service struct {
	uow    repository.UnitOfWork
	atomic bool
	logger *slog.Logger
}

// New creates a new transaction Service.
func New(uow repository.UnitOfWork, atomic bool, logger *slog.Logger) *Service {
	return &Service{uow: uow, atomic: atomic, logger: logger}
}

// MakeTransfer moves cmd.Amount from the sender to the receiver and records it.
// Identifier rules are checked before any account is loaded; the account and
// amount rules then run on freshly loaded state, before anything is written.
func (s *Service) MakeTransfer(ctx context.Context, cmd dto.TransferCommand) (*account.Transaction, error) {
	logger := s.logger.With(
		"sender_id", cmd.SenderID,
		"receiver_id", cmd.ReceiverID,
		"amount", cmd.Amount.String(),
		"atomic", s.atomic,
	)
	logger.Info("MakeTransfer started")

	if err := account.ValidateTransferRequest(cmd.SenderID, cmd.ReceiverID); err != nil {
		logger.Warn("MakeTransfer rejected", "error", err)
		return nil, err
	}

	var (
		tx  *account.Transaction
		err error
	)
	if s.atomic {
		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			var txErr error
			tx, txErr = s.transfer(ctx, uow, cmd, true)
			return txErr
		})
	} else {
		tx, err = s.transfer(ctx, s.uow, cmd, false)
	}
	if err != nil {
		logger.Warn("MakeTransfer failed", "error", err)
		return nil, err
	}

	logger.Info("MakeTransfer completed", "transaction_id", tx.ID)
	return tx, nil
}

func (s *Service) transfer(
	ctx context.Context,
	uow repository.UnitOfWork,
	cmd dto.TransferCommand,
	lock bool,
) (*account.Transaction, error) {
	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	transactions, err := uow.TransactionRepository()
	if err != nil {
		return nil, err
	}

	sender, receiver, err := loadParties(ctx, accounts, cmd.SenderID, cmd.ReceiverID, lock)
	if err != nil {
		return nil, err
	}

	if err := account.Transfer(sender, receiver, cmd.Amount); err != nil {
		return nil, err
	}
	if err := accounts.Update(ctx, sender); err != nil {
		return nil, err
	}
	if err := accounts.Update(ctx, receiver); err != nil {
		return nil, err
	}

	tx := account.NewTransaction(sender, receiver, cmd.Amount, cmd.Date, cmd.Message)
	if err := transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// loadParties loads both accounts. When locking, rows are locked in
// ascending id order so two opposite transfers cannot deadlock.
func loadParties(
	ctx context.Context,
	repo repository.AccountRepository,
	senderID, receiverID uuid.UUID,
	lock bool,
) (sender, receiver *account.Account, err error) {
	if !lock {
		if sender, err = repo.Get(ctx, senderID); err != nil {
			return nil, nil, err
		}
		if receiver, err = repo.Get(ctx, receiverID); err != nil {
			return nil, nil, err
		}
		return sender, receiver, nil
	}

	if bytes.Compare(senderID[:], receiverID[:]) < 0 {
		if sender, err = repo.GetForUpdate(ctx, senderID); err != nil {
			return nil, nil, err
		}
		if receiver, err = repo.GetForUpdate(ctx, receiverID); err != nil {
			return nil, nil, err
		}
		return sender, receiver, nil
	}
	if receiver, err = repo.GetForUpdate(ctx, receiverID); err != nil {
		return nil, nil, err
	}
	if sender, err = repo.GetForUpdate(ctx, senderID); err != nil {
		return nil, nil, err
	}
	return sender, receiver, nil
}

// ListLastTransactions returns the most recent transactions, newest first.
func (s *Service) ListLastTransactions(ctx context.Context) ([]*account.Transaction, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListLatest(ctx, LastTransactionsLimit)
}

// ListByAccount returns the transactions the account sent or received,
// newest first. An unknown account is NotFound.
func (s *Service) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error) {
	accounts, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	if _, err := accounts.Get(ctx, accountID); err != nil {
		return nil, err
	}

	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByAccount(ctx, accountID)
}
