package account

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/banksim/internal/fixtures/mocks"
	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/account"
	"github.com/amirasaad/banksim/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOtpIssuer struct {
	mock.Mock
}

func (m *mockOtpIssuer) CreateOtpSendSms(ctx context.Context, acc *account.Account) (*dto.OtpHandle, error) {
	args := m.Called(ctx, acc)
	handle, _ := args.Get(0).(*dto.OtpHandle)
	return handle, args.Error(1)
}

func newTestService(t *testing.T) (*Service, *mocks.MockAccountRepository, *mockOtpIssuer) {
	uow := mocks.NewMockUnitOfWork(t)
	repo := mocks.NewMockAccountRepository(t)
	issuer := &mockOtpIssuer{}
	issuer.Test(t)
	t.Cleanup(func() { issuer.AssertExpectations(t) })

	uow.On("AccountRepository").Return(repo, nil).Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(uow, issuer, logger), repo, issuer
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCreateNewAccount_Success(t *testing.T) {
	ctx := context.Background()
	svc, repo, issuer := newTestService(t)
	userID := uuid.New()

	var created *account.Account
	repo.On("Create", ctx, mock.AnythingOfType("*account.Account")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*account.Account) }).
		Return(nil).Once()
	handle := &dto.OtpHandle{OtpCode: 123456, OtpID: uuid.New()}
	issuer.On("CreateOtpSendSms", ctx, mock.AnythingOfType("*account.Account")).Return(handle, nil).Once()

	got, err := svc.CreateNewAccount(ctx, dto.AccountCreate{
		UserID:      userID,
		Balance:     amount(12),
		AccountType: "SAVINGS",
		PhoneNumber: "121165465",
	})

	require.NoError(t, err)
	assert.Equal(t, handle, got)
	require.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, account.TypeSavings, created.AccountType)
	assert.Equal(t, account.StatusActive, created.AccountStatus)
	assert.False(t, created.OtpVerified)
	assert.Equal(t, "121165465", created.PhoneNumber)
}

func subCent() *decimal.Decimal {
	d := decimal.RequireFromString("0.001")
	return &d
}

func TestCreateNewAccount_Rules(t *testing.T) {
	testCases := []struct {
		name    string
		in      dto.AccountCreate
		kind    error
		message string
	}{
		{
			name:    "missing balance",
			in:      dto.AccountCreate{UserID: uuid.New()},
			kind:    domain.ErrBalanceInsufficient,
			message: account.MsgInitialBalance,
		},
		{
			name:    "zero balance",
			in:      dto.AccountCreate{Balance: amount(0)},
			kind:    domain.ErrBalanceInsufficient,
			message: account.MsgInitialBalance,
		},
		{
			name:    "deleted status",
			in:      dto.AccountCreate{Balance: amount(12), AccountStatus: "DELETED"},
			kind:    domain.ErrAccountStatusInvalid,
			message: account.MsgStatusDeleted,
		},
		{
			name:    "balance checked before status",
			in:      dto.AccountCreate{Balance: amount(0), AccountStatus: "DELETED"},
			kind:    domain.ErrBalanceInsufficient,
			message: account.MsgInitialBalance,
		},
		{
			name:    "sub-cent balance",
			in:      dto.AccountCreate{Balance: subCent()},
			kind:    domain.ErrBalanceInsufficient,
			message: account.MsgBalanceScale,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, issuer := newTestService(t)

			_, err := svc.CreateNewAccount(context.Background(), tc.in)

			require.ErrorIs(t, err, tc.kind)
			assert.EqualError(t, err, tc.message)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			issuer.AssertNotCalled(t, "CreateOtpSendSms", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateNewAccount_StoreErrorSkipsOtp(t *testing.T) {
	ctx := context.Background()
	svc, repo, issuer := newTestService(t)
	repo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.CreateNewAccount(ctx, dto.AccountCreate{Balance: amount(5)})

	assert.EqualError(t, err, "insert failed")
	issuer.AssertNotCalled(t, "CreateOtpSendSms", mock.Anything, mock.Anything)
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	active := account.NewAccountFromData(uuid.New(), uuid.New(), decimal.NewFromInt(1),
		account.TypeCheckings, account.StatusActive, true, "", time.Now())
	deleted := account.NewAccountFromData(uuid.New(), uuid.New(), decimal.NewFromInt(1),
		account.TypeCheckings, account.StatusDeleted, true, "", time.Now())
	repo.On("List", ctx).Return([]*account.Account{active, deleted}, nil)
	repo.On("ListByStatus", ctx, account.StatusActive).Return([]*account.Account{active}, nil)

	all, err := svc.ListAllAccount(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyActive, err := svc.ListAllActiveAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*account.Account{active}, onlyActive)
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	acc := account.NewAccountFromData(uuid.New(), uuid.New(), decimal.NewFromInt(1),
		account.TypeCheckings, account.StatusActive, true, "", time.Now())
	repo.On("Get", ctx, acc.ID).Return(acc, nil)
	repo.On("Update", ctx, acc).Return(nil).Once()

	got, err := svc.DeleteAccount(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, account.StatusDeleted, got.AccountStatus)

	missing := uuid.New()
	repo.On("Get", ctx, missing).Return(nil, domain.NewError(domain.ErrNotFound, "Account not found"))
	_, err = svc.DeleteAccount(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRetrieveByID(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)

	acc := account.NewAccountFromData(uuid.New(), uuid.New(), decimal.NewFromInt(1),
		account.TypeSavings, account.StatusActive, false, "", time.Now())
	repo.On("Get", ctx, acc.ID).Return(acc, nil)

	got, err := svc.RetrieveByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Same(t, acc, got)
}
