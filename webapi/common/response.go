// Package common holds the response envelopes, error mapping and request
// binding shared by the HTTP handlers.
package common

import (
	"errors"

	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

var validate = validator.New()

// SuccessResponseJSON writes the success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem for err. The status comes from
// ErrorToStatusCode and the detail is the error message. Extra arguments
// override them: a string replaces the detail, an int replaces the status.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, overrides ...any) error {
	status := ErrorToStatusCode(err)
	detail := domain.Message(err)
	for _, o := range overrides {
		switch v := o.(type) {
		case string:
			detail = v
		case int:
			status = v
		}
	}

	return c.Status(status).JSON(ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}, "application/problem+json")
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrBadRequest),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAccountStatusInvalid):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAccountNotVerified),
		errors.Is(err, domain.ErrAccountOwnership):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrBalanceInsufficient):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the Fiber error handler; it renders any error returned by
// a handler or middleware as a problem.
func ErrorHandler(c *fiber.Ctx, err error) error {
	title := "Internal Server Error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		title = fe.Message
	}
	return ProblemDetailsJSON(c, title, err)
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// On failure it writes a 400 problem and returns a nil input; the returned
// error is then the result of writing that response.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}
