package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
)

// Business error kinds. Every rule violation raised by the services wraps
// exactly one of these, so callers can branch with errors.Is.
var (
	// ErrBadRequest marks a malformed request (null parties, same-account transfer, deleted party).
	ErrBadRequest = errors.New("bad request")
	// ErrAccountStatusInvalid marks an operation on an account whose status does not allow it.
	ErrAccountStatusInvalid = errors.New("account status invalid")
	// ErrAccountNotVerified marks a transfer party whose OTP has not been confirmed.
	ErrAccountNotVerified = errors.New("account not verified")
	// ErrAccountOwnership marks a SAVINGS transfer between different users.
	ErrAccountOwnership = errors.New("account ownership")
	// ErrBalanceInsufficient marks a non-positive opening balance or a transfer exceeding the balance.
	ErrBalanceInsufficient = errors.New("balance insufficient")
)

// Error is a business rule failure. Error() yields the human readable
// message surfaced to API consumers, Unwrap yields the kind.
type Error struct {
	Kind    error
	Message string
}

// NewError builds an Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Message == "" && e.Kind != nil {
		return e.Kind.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Message returns the human readable message of a business error, or err.Error()
// for anything else.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
