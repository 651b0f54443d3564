package service

import (
	"testing"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "mewallet")

	token, expiry, err := svc.Generate("MR1A2B3C", domain.RoleMerchant)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "MR1A2B3C", claims.Subject)
	assert.Equal(t, domain.RoleMerchant, claims.Role)
}

func TestJWTTokenService_UserRole(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "mewallet")

	token, _, err := svc.Generate("UR4D5E6F", domain.RoleUser)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService("secret-a", time.Hour, "mewallet")
	other := NewJWTTokenService("secret-b", time.Hour, "mewallet")

	token, _, err := svc.Generate("MR1A2B3C", domain.RoleMerchant)
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", -time.Minute, "mewallet")

	token, _, err := svc.Generate("MR1A2B3C", domain.RoleMerchant)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Garbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret-key", time.Hour, "mewallet")

	_, err := svc.Validate("not.a.jwt")
	assert.Error(t, err)
}
