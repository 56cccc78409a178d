package transaction_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/amirasaad/banksim/pkg/config"
	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/account"
	transactionweb "github.com/amirasaad/banksim/webapi/transaction"
	"github.com/amirasaad/banksim/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var (
	senderID   = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	receiverID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
)

type TransactionHandlerTestSuite struct {
	suite.Suite
	fx  *testutils.Fixture
	app *fiber.App
}

func (s *TransactionHandlerTestSuite) setup(cfg *config.App) {
	s.fx = testutils.NewFixture(s.T(), cfg)
	s.app = testutils.NewRouterApp(func(r fiber.Router) {
		transactionweb.Routes(r, s.fx.App.TransactionService)
	})
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.setup(nil)
}

func verifiedAccount(id uuid.UUID, balance int64) *account.Account {
	return account.NewAccountFromData(
		id, uuid.New(), decimal.NewFromInt(balance), account.TypeCheckings,
		account.StatusActive, true, "112423423423", time.Now(),
	)
}

func transferBody(from, to uuid.UUID, amount string) string {
	return fmt.Sprintf(`{"sender":"%s","receiver":"%s","amount":%s,"message":"Transaction 1","date":"2024-03-01T12:00:00Z"}`, from, to, amount)
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_Success() {
	sender := verifiedAccount(senderID, 250)
	receiver := verifiedAccount(receiverID, 150)
	s.fx.Accounts.On("Get", mock.Anything, senderID).Return(sender, nil).Once()
	s.fx.Accounts.On("Get", mock.Anything, receiverID).Return(receiver, nil).Once()
	s.fx.Accounts.On("Update", mock.Anything, sender).Return(nil).Once()
	s.fx.Accounts.On("Update", mock.Anything, receiver).Return(nil).Once()
	s.fx.Txs.On("Create", mock.Anything, mock.AnythingOfType("*account.Transaction")).Return(nil).Once()

	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", transferBody(senderID, receiverID, "10"))

	s.Equal(fiber.StatusCreated, resp.StatusCode)
	out := testutils.DecodeResponse(s.T(), resp)
	s.Equal("Transfer is successfully completed", out.Message)
	data := testutils.DataMap(s.T(), out)
	s.Equal(senderID.String(), data["sender"])
	s.Equal(receiverID.String(), data["receiver"])
	s.Equal("Transaction 1", data["message"])
	s.Equal("2024-03-01T12:00:00Z", data["date"])

	s.True(sender.Balance.Equal(decimal.NewFromInt(240)))
	s.True(receiver.Balance.Equal(decimal.NewFromInt(160)))
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_InsufficientBalance() {
	sender := verifiedAccount(senderID, 9)
	receiver := verifiedAccount(receiverID, 150)
	s.fx.Accounts.On("Get", mock.Anything, senderID).Return(sender, nil).Once()
	s.fx.Accounts.On("Get", mock.Anything, receiverID).Return(receiver, nil).Once()

	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", transferBody(senderID, receiverID, "10"))

	s.Equal(fiber.StatusUnprocessableEntity, resp.StatusCode)
	s.Equal(account.MsgInsufficientBalance, testutils.DecodeProblem(s.T(), resp).Detail)
	s.True(sender.Balance.Equal(decimal.NewFromInt(9)))
	s.fx.Txs.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_RuleViolations() {
	testCases := []struct {
		name   string
		body   string
		status int
		detail string
	}{
		{
			name:   "missing sender",
			body:   fmt.Sprintf(`{"receiver":"%s","amount":10}`, receiverID),
			status: fiber.StatusBadRequest,
			detail: account.MsgNullParty,
		},
		{
			name:   "same account",
			body:   transferBody(senderID, senderID, "10"),
			status: fiber.StatusBadRequest,
			detail: account.MsgSameAccount,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", tc.body)
			s.Equal(tc.status, resp.StatusCode)
			s.Equal(tc.detail, testutils.DecodeProblem(s.T(), resp).Detail)
		})
	}
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_AmountRules() {
	testCases := []struct {
		amount string
		detail string
	}{
		{"0", account.MsgNonPositiveAmount},
		{"0.005", account.MsgAmountScale},
	}

	for _, tc := range testCases {
		s.Run(tc.amount, func() {
			s.fx.Accounts.On("Get", mock.Anything, senderID).Return(verifiedAccount(senderID, 250), nil).Once()
			s.fx.Accounts.On("Get", mock.Anything, receiverID).Return(verifiedAccount(receiverID, 150), nil).Once()

			resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", transferBody(senderID, receiverID, tc.amount))

			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
			s.Equal(tc.detail, testutils.DecodeProblem(s.T(), resp).Detail)
		})
	}
	s.fx.Txs.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_UnverifiedReceiver() {
	receiver := verifiedAccount(receiverID, 150)
	receiver.OtpVerified = false
	s.fx.Accounts.On("Get", mock.Anything, senderID).Return(verifiedAccount(senderID, 250), nil).Once()
	s.fx.Accounts.On("Get", mock.Anything, receiverID).Return(receiver, nil).Once()

	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", transferBody(senderID, receiverID, "10"))

	s.Equal(fiber.StatusForbidden, resp.StatusCode)
	s.Equal(account.MsgNotVerified, testutils.DecodeProblem(s.T(), resp).Detail)
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_UnknownSender() {
	s.fx.Accounts.On("Get", mock.Anything, senderID).Return(nil, domain.NewError(domain.ErrNotFound, "Account not found")).Once()

	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", transferBody(senderID, receiverID, "10"))

	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_InvalidBody() {
	for _, body := range []string{
		`{"sender":"nope","receiver":"` + receiverID.String() + `","amount":1}`,
		`{"amount":`,
	} {
		resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", body)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
	}
}

func (s *TransactionHandlerTestSuite) TestMakeTransfer_AtomicLocksInIDOrder() {
	s.setup(&config.App{Transfer: &config.Transfer{Atomic: true}})

	sender := verifiedAccount(receiverID, 250)
	receiver := verifiedAccount(senderID, 150)
	s.fx.Uow.On("Do", mock.Anything, mock.Anything).Return(nil).Once()
	lowFirst := s.fx.Accounts.On("GetForUpdate", mock.Anything, senderID).Return(receiver, nil).Once()
	s.fx.Accounts.On("GetForUpdate", mock.Anything, receiverID).Return(sender, nil).Once().NotBefore(lowFirst)
	s.fx.Accounts.On("Update", mock.Anything, mock.Anything).Return(nil).Twice()
	s.fx.Txs.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodPost, "/v1/transaction", transferBody(receiverID, senderID, "10"))

	s.Equal(fiber.StatusCreated, resp.StatusCode)
	s.True(sender.Balance.Equal(decimal.NewFromInt(240)))
}

func (s *TransactionHandlerTestSuite) TestListLastTransactions() {
	txs := []*account.Transaction{
		account.NewTransactionFromData(uuid.New(), decimal.NewFromInt(5), time.Now(), senderID, receiverID, "b"),
		account.NewTransactionFromData(uuid.New(), decimal.NewFromInt(3), time.Now().Add(-time.Hour), senderID, receiverID, "a"),
	}
	s.fx.Txs.On("ListLatest", mock.Anything, 10).Return(txs, nil).Once()

	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodGet, "/v1/transaction", "")

	s.Equal(fiber.StatusOK, resp.StatusCode)
	out := testutils.DecodeResponse(s.T(), resp)
	s.Equal("Transactions are successfully retrieved", out.Message)
	list := testutils.DataList(s.T(), out)
	s.Require().Len(list, 2)
	s.Equal("b", list[0].(map[string]any)["message"])
}

func (s *TransactionHandlerTestSuite) TestListAccountTransactions() {
	s.fx.Accounts.On("Get", mock.Anything, senderID).Return(verifiedAccount(senderID, 1), nil).Once()
	s.fx.Txs.On("ListByAccount", mock.Anything, senderID).Return([]*account.Transaction{
		account.NewTransactionFromData(uuid.New(), decimal.NewFromInt(5), time.Now(), senderID, receiverID, ""),
	}, nil).Once()

	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodGet, "/v1/transaction/account/"+senderID.String(), "")

	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Len(testutils.DataList(s.T(), testutils.DecodeResponse(s.T(), resp)), 1)
}

func (s *TransactionHandlerTestSuite) TestListAccountTransactions_Errors() {
	resp := testutils.MakeRequest(s.T(), s.app, fiber.MethodGet, "/v1/transaction/account/abc", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	s.fx.Accounts.On("Get", mock.Anything, receiverID).Return(nil, domain.NewError(domain.ErrNotFound, "Account not found")).Once()
	resp = testutils.MakeRequest(s.T(), s.app, fiber.MethodGet, "/v1/transaction/account/"+receiverID.String(), "")
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
