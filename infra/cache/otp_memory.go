package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/amirasaad/banksim/pkg/domain"
	"github.com/amirasaad/banksim/pkg/domain/otp"
	"github.com/google/uuid"
)

// MemoryOtpStore keeps codes in process memory. Expired entries are dropped
// lazily on read and swept on every write.
type MemoryOtpStore struct {
	mu    sync.Mutex
	codes map[uuid.UUID]otp.Otp
	now   func() time.Time
}

// NewMemoryOtpStore creates an empty in-memory store.
func NewMemoryOtpStore() *MemoryOtpStore {
	return &MemoryOtpStore{
		codes: make(map[uuid.UUID]otp.Otp),
		now:   time.Now,
	}
}

func (c *MemoryOtpStore) Save(_ context.Context, o *otp.Otp) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if o.Expired(now) {
		return errors.New("otp: refusing to store an expired code")
	}
	for id, stored := range c.codes {
		if stored.Expired(now) {
			delete(c.codes, id)
		}
	}
	c.codes[o.ID] = *o
	return nil
}

func (c *MemoryOtpStore) Get(_ context.Context, id uuid.UUID) (*otp.Otp, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.codes[id]
	if !ok {
		return nil, domain.NewError(domain.ErrNotFound, MsgOtpNotFound)
	}
	if stored.Expired(c.now()) {
		delete(c.codes, id)
		return nil, domain.NewError(domain.ErrNotFound, MsgOtpNotFound)
	}
	return &stored, nil
}

func (c *MemoryOtpStore) Delete(_ context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.codes, id)
	return nil
}
