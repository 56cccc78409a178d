package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// DefaultLength is the number of digits of a generated code.
const DefaultLength = 6

// Otp is a one-time passcode issued to confirm ownership of a new account.
type Otp struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	Code      int       `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New issues a code of the given number of digits for accountID, valid for ttl.
// The code never starts with a zero so it keeps its length as an integer.
func New(accountID uuid.UUID, length int, ttl time.Duration) (*Otp, error) {
	code, err := generateCode(length)
	if err != nil {
		return nil, err
	}
	return &Otp{
		ID:        uuid.New(),
		AccountID: accountID,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}, nil
}

// Expired reports whether the code is no longer usable at now.
func (o *Otp) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// Matches reports whether code is the issued code.
func (o *Otp) Matches(code int) bool {
	return o.Code == code
}

// TTL returns the remaining validity at now, never negative.
func (o *Otp) TTL(now time.Time) time.Duration {
	if d := o.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

func generateCode(length int) (int, error) {
	if length <= 0 || length > 9 {
		return 0, fmt.Errorf("otp: invalid code length %d", length)
	}
	low := int64(1)
	for i := 1; i < length; i++ {
		low *= 10
	}
	n, err := rand.Int(rand.Reader, big.NewInt(low*9))
	if err != nil {
		return 0, fmt.Errorf("otp: generate code: %w", err)
	}
	return int(low + n.Int64()), nil
}
