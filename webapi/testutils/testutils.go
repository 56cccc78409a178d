// Package testutils holds helpers shared by the HTTP handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amirasaad/banksim/infra/cache"
	"github.com/amirasaad/banksim/internal/fixtures/mocks"
	"github.com/amirasaad/banksim/pkg/app"
	"github.com/amirasaad/banksim/pkg/config"
	"github.com/amirasaad/banksim/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Fixture is an application wired to mocked persistence, an in-memory OTP
// store and a mocked SMS sender.
type Fixture struct {
	App      *app.App
	Uow      *mocks.MockUnitOfWork
	Accounts *mocks.MockAccountRepository
	Txs      *mocks.MockTransactionRepository
	Otps     *cache.MemoryOtpStore
	SMS      *mocks.MockSMSSender
}

// NewFixture builds a Fixture. The unit of work hands out the repository
// mocks and SMS dispatch always succeeds.
func NewFixture(t *testing.T, cfg *config.App) *Fixture {
	f := &Fixture{
		Uow:      mocks.NewMockUnitOfWork(t),
		Accounts: mocks.NewMockAccountRepository(t),
		Txs:      mocks.NewMockTransactionRepository(t),
		Otps:     cache.NewMemoryOtpStore(),
		SMS:      mocks.NewMockSMSSender(t),
	}
	f.Uow.On("AccountRepository").Return(f.Accounts, nil).Maybe()
	f.Uow.On("TransactionRepository").Return(f.Txs, nil).Maybe()
	f.SMS.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	f.App = app.New(&app.Deps{
		Uow:       f.Uow,
		OtpStore:  f.Otps,
		SMSSender: f.SMS,
		Logger:    DiscardLogger(),
	}, cfg)
	return f
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRouterApp returns a bare Fiber app with the shared error handler and
// calls register on its /v1 group.
func NewRouterApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	register(app.Group("/v1"))
	return app
}

// MakeRequest is a helper for making HTTP requests in tests
func MakeRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// DecodeResponse decodes a success envelope.
func DecodeResponse(t *testing.T, resp *http.Response) common.Response {
	t.Helper()
	var out common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// DecodeProblem decodes a problem details body.
func DecodeProblem(t *testing.T, resp *http.Response) common.ProblemDetails {
	t.Helper()
	var out common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// DataMap returns the envelope data as a JSON object.
func DataMap(t *testing.T, r common.Response) map[string]any {
	t.Helper()
	m, ok := r.Data.(map[string]any)
	require.True(t, ok, "data is not an object: %#v", r.Data)
	return m
}

// DataList returns the envelope data as a JSON array.
func DataList(t *testing.T, r common.Response) []any {
	t.Helper()
	l, ok := r.Data.([]any)
	require.True(t, ok, "data is not an array: %#v", r.Data)
	return l
}
