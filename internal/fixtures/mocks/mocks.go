// Package mocks provides testify mocks for the repository and provider contracts.
package mocks

import (
	"context"

	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/domain/otp"
	"github.com/amirasaad/banksim/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork runs the function passed to Do against itself, so the
// repositories it hands out are the same mocks inside and outside Do.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a MockUnitOfWork that asserts its expectations on cleanup.
func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockUnitOfWork) AccountRepository() (repository.AccountRepository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(repository.AccountRepository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) TransactionRepository() (repository.TransactionRepository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(repository.TransactionRepository)
	return repo, args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t testingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *MockAccountRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	acc, _ := args.Get(0).(*account.Account)
	return acc, args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*account.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) ListByStatus(ctx context.Context, status account.Status) ([]*account.Account, error) {
	args := m.Called(ctx, status)
	accounts, _ := args.Get(0).([]*account.Account)
	return accounts, args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *account.Transaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockTransactionRepository) ListLatest(ctx context.Context, limit int) ([]*account.Transaction, error) {
	args := m.Called(ctx, limit)
	txs, _ := args.Get(0).([]*account.Transaction)
	return txs, args.Error(1)
}

func (m *MockTransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*account.Transaction, error) {
	args := m.Called(ctx, accountID)
	txs, _ := args.Get(0).([]*account.Transaction)
	return txs, args.Error(1)
}

type MockOtpStore struct {
	mock.Mock
}

func NewMockOtpStore(t testingT) *MockOtpStore {
	m := &MockOtpStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOtpStore) Save(ctx context.Context, o *otp.Otp) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOtpStore) Get(ctx context.Context, id uuid.UUID) (*otp.Otp, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*otp.Otp)
	return o, args.Error(1)
}

func (m *MockOtpStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSMSSender struct {
	mock.Mock
}

func NewMockSMSSender(t testingT) *MockSMSSender {
	m := &MockSMSSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSMSSender) Send(ctx context.Context, phoneNumber, body string) error {
	return m.Called(ctx, phoneNumber, body).Error(0)
}
