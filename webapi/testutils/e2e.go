//go:build e2e

package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/banksim/infra"
	"github.com/amirasaad/banksim/infra/cache"
	"github.com/amirasaad/banksim/infra/provider"
	infrarepo "github.com/amirasaad/banksim/infra/repository"
	"github.com/amirasaad/banksim/pkg/app"
	"github.com/amirasaad/banksim/pkg/config"
	"github.com/amirasaad/banksim/webapi"
	"github.com/amirasaad/banksim/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	db          *gorm.DB
	app         *fiber.App
	Cfg         *config.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite initializes the test suite with a real Postgres database
func (s *E2ETestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = &config.App{
		Env:       "test",
		DB:        &config.DB{Url: dsn, AutoMigrate: true},
		Otp:       &config.Otp{TTL: time.Minute, Length: 6},
		Transfer:  &config.Transfer{Atomic: true},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
	}

	s.db, err = infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.RunMigrations(s.db))

	logger := DiscardLogger()
	a := app.New(&app.Deps{
		Uow:       infrarepo.NewUoW(s.db),
		OtpStore:  cache.NewMemoryOtpStore(),
		SMSSender: provider.NewLogSMSSender(logger),
		Logger:    logger,
	}, s.Cfg)
	s.app = webapi.SetupApp(a)
	log.SetOutput(io.Discard)
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	ctx := context.Background()
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(ctx)
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := s.app.Test(req, -1)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}

// Decode reads a success envelope and closes the body.
func (s *E2ETestSuite) Decode(resp *http.Response) common.Response {
	defer resp.Body.Close() //nolint:errcheck
	var out common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// CreateVerifiedAccount creates an account through the API and confirms it
// with the returned code. It returns the account id.
func (s *E2ETestSuite) CreateVerifiedAccount(userID string, balance int, accountType string) string {
	body := fmt.Sprintf(`{"user_id":"%s","balance":%d,"account_type":"%s","phone_number":"112423423423"}`, userID, balance, accountType)
	resp := s.MakeRequest(http.MethodPost, "/v1/account", body)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	handle := s.Decode(resp).Data.(map[string]any)

	verify := fmt.Sprintf(`{"otp_id":"%s","otp_code":%d}`, handle["otp_id"], int(handle["otp_code"].(float64)))
	resp = s.MakeRequest(http.MethodPost, "/v1/otp", verify)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	acc := s.Decode(resp).Data.(map[string]any)
	s.Require().Equal(true, acc["otp_verified"])
	return acc["id"].(string)
}
