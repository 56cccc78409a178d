package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/otp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MsgOtpNotFound is reported for unknown, used and expired codes alike.
const MsgOtpNotFound = "Otp is not found or expired"

// RedisOtpStore keeps codes as JSON values whose key expires with the code.
type RedisOtpStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisOtpStore creates a new RedisOtpStore on an existing client.
func NewRedisOtpStore(client *redis.Client, prefix string, logger *slog.Logger) *RedisOtpStore {
	return &RedisOtpStore{client: client, prefix: prefix, logger: logger}
}

// NewRedisOtpStoreFromURL parses a redis:// URL and pings the server.
func NewRedisOtpStoreFromURL(
	ctx context.Context,
	url, prefix string,
	logger *slog.Logger,
) (*RedisOtpStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisOtpStore(client, prefix, logger), nil
}

func (r *RedisOtpStore) key(id uuid.UUID) string {
	return r.prefix + id.String()
}

func (r *RedisOtpStore) Save(ctx context.Context, o *otp.Otp) error {
	ttl := o.TTL(time.Now())
	if ttl <= 0 {
		return errors.New("otp: refusing to store an expired code")
	}
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(o.ID), data, ttl).Err(); err != nil {
		r.logger.Error("Redis otp set error", "otp_id", o.ID, "error", err)
		return err
	}
	r.logger.Debug("Redis otp set", "otp_id", o.ID, "ttl", ttl)
	return nil
}

func (r *RedisOtpStore) Get(ctx context.Context, id uuid.UUID) (*otp.Otp, error) {
	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis otp miss", "otp_id", id)
		return nil, domain.NewError(domain.ErrNotFound, MsgOtpNotFound)
	}
	if err != nil {
		r.logger.Error("Redis otp get error", "otp_id", id, "error", err)
		return nil, err
	}
	var o otp.Otp
	if err := json.Unmarshal(val, &o); err != nil {
		r.logger.Error("Redis otp unmarshal error", "otp_id", id, "error", err)
		return nil, err
	}
	if o.Expired(time.Now()) {
		return nil, domain.NewError(domain.ErrNotFound, MsgOtpNotFound)
	}
	return &o, nil
}

func (r *RedisOtpStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.logger.Error("Redis otp delete error", "otp_id", id, "error", err)
		return err
	}
	return nil
}

// Close releases the underlying client.
func (r *RedisOtpStore) Close() error {
	return r.client.Close()
}
