package otp

import (
	"context"
	"fmt"
	"time"

	"storefront-api/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// redisStore backs the OTP store with Redis so codes survive restarts and
// are shared across instances.
type redisStore struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRedisStore creates a Redis-backed OTP store and verifies connectivity.
func NewRedisStore(ctx context.Context, addr string, logger zerolog.Logger) (Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().Str("addr", addr).Msg("redis OTP store initialised")

	return &redisStore{
		client: client,
		logger: logger.With().Str("component", "otp-redis").Logger(),
	}, nil
}

func (s *redisStore) key(email string) string {
	return fmt.Sprintf("otp:%s", email)
}

// consumeScript deletes the key only when the stored code matches, so a
// code can be consumed exactly once and a mismatch leaves it in place.
var consumeScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Put stores a code for an email with the given TTL.
func (s *redisStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(email), code, ttl).Err(); err != nil {
		s.logger.Error().Err(err).Msg("failed to store OTP")
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// Consume verifies a code and removes it on success. The check and delete
// run in one script so concurrent verifies cannot both succeed. Expiry is
// handled by the key TTL, so an expired code is simply absent.
func (s *redisStore) Consume(ctx context.Context, email, code string) error {
	deleted, err := consumeScript.Run(ctx, s.client, []string{s.key(email)}, code).Int()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to consume OTP")
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	if deleted == 0 {
		return model.ErrInvalidOTP
	}
	return nil
}
