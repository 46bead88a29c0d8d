// Package otp issues and verifies short-lived one-time codes keyed by email.
package otp

import (
	"context"
	"crypto/rand"
	"math/big"
	"time"
)

// Store holds issued codes until they are consumed or expire. Consume must
// not distinguish an expired code from a mismatched or absent one; callers
// see a single invalid-OTP condition either way.
type Store interface {
	// Put stores a code for an email, replacing any previous code.
	Put(ctx context.Context, email, code string, ttl time.Duration) error

	// Consume verifies a code and removes it on success. A matching code can
	// be consumed exactly once.
	Consume(ctx context.Context, email, code string) error
}

// GenerateCode returns a random 6-digit code.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand failure means the process has bigger problems
		panic(err)
	}
	code := n.Int64() + 100000
	return big.NewInt(code).String()
}
