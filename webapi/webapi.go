// Package webapi provides the HTTP surface of the bank simulation.
// It is organized into sub-packages per resource:
// - account: account lifecycle endpoints
// - otp: account verification endpoint
// - transaction: transfer and history endpoints
package webapi

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/banksim/pkg/app"
	accountweb "github.com/amirasaad/banksim/webapi/account"
	"github.com/amirasaad/banksim/webapi/common"
	otpweb "github.com/amirasaad/banksim/webapi/otp"
	transactionweb "github.com/amirasaad/banksim/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const (
	defaultMaxRequests = 100
	defaultWindow      = time.Minute
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: common.ErrorHandler,
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	maxRequests, window := defaultMaxRequests, defaultWindow
	if app.Config != nil && app.Config.RateLimit != nil {
		maxRequests, window = app.Config.RateLimit.MaxRequests, app.Config.RateLimit.Window
	}

	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:          maxRequests,
		Expiration:   window,
		KeyGenerator: clientKey,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bank simulation API is running!")
	})

	v1 := fiberApp.Group("/v1")
	accountweb.Routes(v1, app.AccountService)
	otpweb.Routes(v1, app.OtpService)
	transactionweb.Routes(v1, app.TransactionService)
	return fiberApp
}

func clientKey(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		// Take the first IP in the chain
		if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
			return strings.TrimSpace(forwardedFor[:commaIndex])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
