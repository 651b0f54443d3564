package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// OTPStore implements ports.OTPStore using Redis SET with TTL and GETDEL,
// so a code can only ever be verified once.
type OTPStore struct {
	client *goredis.Client
	prefix string
}

// NewOTPStore creates a new Redis-backed OTP store.
func NewOTPStore(client *goredis.Client) *OTPStore {
	return &OTPStore{
		client: client,
		prefix: "otp:",
	}
}

// Set stores a code for a phone number, replacing any previous one.
func (s *OTPStore) Set(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+phone, code, ttl).Err(); err != nil {
		return fmt.Errorf("redis otp set: %w", err)
	}
	return nil
}

// GetDel returns the stored code and consumes it. Returns an empty string
// when no code is present (expired or never issued).
func (s *OTPStore) GetDel(ctx context.Context, phone string) (string, error) {
	code, err := s.client.GetDel(ctx, s.prefix+phone).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis otp getdel: %w", err)
	}
	return code, nil
}
