package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_KindAndMessage(t *testing.T) {
	err := NewError(ErrBadRequest, "Sender or receiver can not be null")

	assert.EqualError(t, err, "Sender or receiver can not be null")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.NotErrorIs(t, err, ErrAccountOwnership)
}

func TestError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("make transfer: %w", NewError(ErrBalanceInsufficient, "Balance is not enough for this transaction"))

	assert.ErrorIs(t, err, ErrBalanceInsufficient)
	assert.Equal(t, "Balance is not enough for this transaction", Message(err))
}

func TestError_EmptyMessageFallsBackToKind(t *testing.T) {
	assert.Equal(t, "account not verified", NewError(ErrAccountNotVerified, "").Error())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
