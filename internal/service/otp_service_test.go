package service

import (
	"context"
	"testing"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/ports/mocks"
	"github.com/Bhatia06/MEWallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOTPService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockOTPStore(ctrl)
	svc := NewOTPService(store, 5*time.Minute, zerolog.Nop())
	ctx := context.Background()

	var stored string
	store.EXPECT().Set(ctx, "9876543210", gomock.Any(), 5*time.Minute).DoAndReturn(
		func(_ context.Context, _, code string, _ time.Duration) error {
			stored = code
			return nil
		})

	code, err := svc.Generate(ctx, "9876543210")
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, stored, code)
}

func TestOTPService_Verify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockOTPStore(ctrl)
	svc := NewOTPService(store, 5*time.Minute, zerolog.Nop())
	ctx := context.Background()

	store.EXPECT().GetDel(ctx, "9876543210").Return("482915", nil)

	assert.NoError(t, svc.Verify(ctx, "9876543210", "482915"))
}

func TestOTPService_Verify_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockOTPStore(ctrl)
	svc := NewOTPService(store, 5*time.Minute, zerolog.Nop())
	ctx := context.Background()

	store.EXPECT().GetDel(ctx, "9876543210").Return("482915", nil)

	err := svc.Verify(ctx, "9876543210", "000000")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_005", appErr.Code)
}

func TestOTPService_Verify_ExpiredOrMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mocks.NewMockOTPStore(ctrl)
	svc := NewOTPService(store, 5*time.Minute, zerolog.Nop())
	ctx := context.Background()

	store.EXPECT().GetDel(ctx, "9876543210").Return("", nil)

	err := svc.Verify(ctx, "9876543210", "482915")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_005", appErr.Code)
}
