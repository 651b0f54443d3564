package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// OTPServiceImpl implements ports.OTPService. Codes are 6 decimal digits,
// single use, and expire after the configured TTL. Delivery over SMS is the
// caller's concern; this service only issues and verifies.
type OTPServiceImpl struct {
	store ports.OTPStore
	ttl   time.Duration
	log   zerolog.Logger
}

// NewOTPService creates a new OTPServiceImpl.
func NewOTPService(store ports.OTPStore, ttl time.Duration, log zerolog.Logger) *OTPServiceImpl {
	return &OTPServiceImpl{
		store: store,
		ttl:   ttl,
		log:   log,
	}
}

// Generate issues a fresh code for the phone number, replacing any
// outstanding one.
func (s *OTPServiceImpl) Generate(ctx context.Context, phone string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("generate otp: %w", err))
	}
	code := fmt.Sprintf("%06d", n.Int64())

	if err := s.store.Set(ctx, phone, code, s.ttl); err != nil {
		return "", apperror.InternalError(fmt.Errorf("store otp: %w", err))
	}

	s.log.Info().Str("phone", phone).Msg("otp issued")
	return code, nil
}

// Verify consumes the stored code. Wrong, expired, and already-used codes
// are indistinguishable to the caller.
func (s *OTPServiceImpl) Verify(ctx context.Context, phone, code string) error {
	stored, err := s.store.GetDel(ctx, phone)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("read otp: %w", err))
	}
	if stored == "" || stored != code {
		return apperror.ErrInvalidOTP()
	}
	return nil
}
