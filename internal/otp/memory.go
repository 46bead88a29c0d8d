package otp

import (
	"context"
	"sync"
	"time"

	"storefront-api/internal/model"
)

// memoryStore keeps codes in process memory. Codes are lost on restart and
// not shared across instances; acceptable because the OTP is a convenience
// gate, not a security boundary.
type memoryStore struct {
	mu    sync.Mutex
	codes map[string]memoryEntry
	now   func() time.Time
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// NewMemoryStore creates an in-process OTP store.
func NewMemoryStore() Store {
	return &memoryStore{
		codes: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

// Put stores a code for an email, replacing any previous code.
func (s *memoryStore) Put(_ context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpired()
	s.codes[email] = memoryEntry{
		code:      code,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Consume verifies a code and removes it on success. Absent, mismatched and
// expired codes all fail identically.
func (s *memoryStore) Consume(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[email]
	if !ok {
		return model.ErrInvalidOTP
	}

	// time.Time carries a monotonic reading here, so wall-clock adjustments
	// cannot revive an expired code
	if s.now().After(entry.expiresAt) {
		delete(s.codes, email)
		return model.ErrInvalidOTP
	}

	if entry.code != code {
		return model.ErrInvalidOTP
	}

	delete(s.codes, email)
	return nil
}

// purgeExpired drops stale entries. Called with the lock held.
func (s *memoryStore) purgeExpired() {
	now := s.now()
	for email, entry := range s.codes {
		if now.After(entry.expiresAt) {
			delete(s.codes, email)
		}
	}
}
