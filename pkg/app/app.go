package app

import (
	"log/slog"
	"time"

	"github.com/amirasaad/banksim/pkg/config"
	"github.com/amirasaad/banksim/pkg/provider"
	"github.com/amirasaad/banksim/pkg/repository"
	"github.com/amirasaad/banksim/pkg/service/account"
	"github.com/amirasaad/banksim/pkg/service/otp"
	"github.com/amirasaad/banksim/pkg/service/transaction"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow       repository.UnitOfWork
	OtpStore  repository.OtpStore
	SMSSender provider.SMSSender
	Logger    *slog.Logger
}

type App struct {
	Deps               *Deps
	Config             *config.App
	AccountService     *account.Service
	OtpService         *otp.Service
	TransactionService *transaction.Service
}

// New wires the services. A nil section in cfg falls back to its defaults.
func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}

	var (
		otpTTL    time.Duration
		otpLength int
		atomic    bool
	)
	if cfg != nil && cfg.Otp != nil {
		otpTTL, otpLength = cfg.Otp.TTL, cfg.Otp.Length
	}
	if cfg != nil && cfg.Transfer != nil {
		atomic = cfg.Transfer.Atomic
	}

	app.OtpService = otp.New(deps.OtpStore, deps.SMSSender, deps.Uow, otpTTL, otpLength, deps.Logger)
	app.AccountService = account.New(deps.Uow, app.OtpService, deps.Logger)
	app.TransactionService = transaction.New(deps.Uow, atomic, deps.Logger)
	return app
}
