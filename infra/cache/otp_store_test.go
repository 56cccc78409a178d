package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/otp"
	"github.com/amirasaad/banksim/pkg/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repository.OtpStore = (*RedisOtpStore)(nil)
	_ repository.OtpStore = (*MemoryOtpStore)(nil)
)

func newRedisStore(t *testing.T) (*RedisOtpStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRedisOtpStore(client, "test:otp:", logger), mr
}

func TestRedisOtpStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	code, err := otp.New(uuid.New(), otp.DefaultLength, time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, code))

	key := "test:otp:" + code.ID.String()
	assert.True(t, mr.Exists(key))
	assert.Greater(t, mr.TTL(key), time.Duration(0))

	got, err := store.Get(ctx, code.ID)
	require.NoError(t, err)
	assert.Equal(t, code.Code, got.Code)
	assert.Equal(t, code.AccountID, got.AccountID)

	require.NoError(t, store.Delete(ctx, code.ID))
	_, err = store.Get(ctx, code.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisOtpStore_Expires(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)

	code, err := otp.New(uuid.New(), otp.DefaultLength, time.Minute)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, code))

	mr.FastForward(2 * time.Minute)

	_, err = store.Get(ctx, code.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, MsgOtpNotFound)
}

func TestRedisOtpStore_RejectsExpired(t *testing.T) {
	store, _ := newRedisStore(t)
	code := &otp.Otp{ID: uuid.New(), Code: 123456, ExpiresAt: time.Now().Add(-time.Second)}

	assert.Error(t, store.Save(context.Background(), code))
}

func TestRedisOtpStore_FromURL(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := NewRedisOtpStoreFromURL(context.Background(), "redis://"+mr.Addr()+"/0", "p:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = NewRedisOtpStoreFromURL(context.Background(), "not a url", "p:", logger)
	assert.Error(t, err)
}

func TestMemoryOtpStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOtpStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	code := &otp.Otp{ID: uuid.New(), AccountID: uuid.New(), Code: 654321, ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, code))

	got, err := store.Get(ctx, code.ID)
	require.NoError(t, err)
	assert.Equal(t, 654321, got.Code)

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, code.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	other := &otp.Otp{ID: uuid.New(), Code: 111111, ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, store.Save(ctx, other))
	require.NoError(t, store.Delete(ctx, other.ID))
	_, err = store.Get(ctx, other.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Error(t, store.Save(ctx, &otp.Otp{ID: uuid.New(), ExpiresAt: now.Add(-time.Second)}))
}
