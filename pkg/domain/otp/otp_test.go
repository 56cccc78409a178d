package otp

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_GeneratesCodeOfRequestedLength(t *testing.T) {
	accountID := uuid.New()
	for i := 0; i < 50; i++ {
		o, err := New(accountID, DefaultLength, time.Minute)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, o.Code, 100000)
		assert.LessOrEqual(t, o.Code, 999999)
		assert.Equal(t, accountID, o.AccountID)
		assert.NotEqual(t, uuid.Nil, o.ID)
	}
}

func TestNew_InvalidLength(t *testing.T) {
	_, err := New(uuid.New(), 0, time.Minute)
	assert.Error(t, err)

	_, err = New(uuid.New(), 10, time.Minute)
	assert.Error(t, err)
}

func TestOtp_Expiry(t *testing.T) {
	o, err := New(uuid.New(), 4, time.Minute)
	require.NoError(t, err)

	now := time.Now().UTC()
	assert.False(t, o.Expired(now))
	assert.True(t, o.Expired(now.Add(2*time.Minute)))
	assert.Equal(t, time.Duration(0), o.TTL(now.Add(2*time.Minute)))
	assert.Positive(t, o.TTL(now))
}

func TestOtp_Matches(t *testing.T) {
	o := &Otp{Code: 123456}
	assert.True(t, o.Matches(123456))
	assert.False(t, o.Matches(654321))
}
