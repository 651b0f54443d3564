package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports/mocks"
	"github.com/Bhatia06/MEWallet/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authTestDeps struct {
	svc          *AuthServiceImpl
	merchantRepo *mocks.MockMerchantRepository
	userRepo     *mocks.MockUserRepository
	linkRepo     *mocks.MockLinkRepository
	txRepo       *mocks.MockTransactionRepository
	requestRepo  *mocks.MockRequestRepository
	transactor   *mocks.MockDBTransactor
	hashSvc      *mocks.MockHashService
	tokenSvc     *mocks.MockTokenService
	ctrl         *gomock.Controller
}

func setupAuthService(t *testing.T) *authTestDeps {
	ctrl := gomock.NewController(t)
	d := &authTestDeps{
		merchantRepo: mocks.NewMockMerchantRepository(ctrl),
		userRepo:     mocks.NewMockUserRepository(ctrl),
		linkRepo:     mocks.NewMockLinkRepository(ctrl),
		txRepo:       mocks.NewMockTransactionRepository(ctrl),
		requestRepo:  mocks.NewMockRequestRepository(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		hashSvc:      mocks.NewMockHashService(ctrl),
		tokenSvc:     mocks.NewMockTokenService(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewAuthService(
		d.merchantRepo, d.userRepo, d.linkRepo, d.txRepo, d.requestRepo,
		d.transactor, d.hashSvc, d.tokenSvc, zerolog.Nop(),
	)
	return d
}

func TestAuthService_RegisterMerchant_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.merchantRepo.EXPECT().GetByPhone(ctx, "9876543210").Return(nil, nil)
	d.hashSvc.EXPECT().Hash("password").Return("hashed", nil)
	d.merchantRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	m, err := d.svc.RegisterMerchant(ctx, "Corner Store", "9876543210", "password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(m.ID, "MR"))
	assert.Len(t, m.ID, 8)
	assert.Equal(t, "hashed", m.PasswordHash)
}

func TestAuthService_RegisterMerchant_PhoneTaken(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.merchantRepo.EXPECT().GetByPhone(ctx, "9876543210").
		Return(&domain.Merchant{ID: testMerchantID, Phone: "9876543210"}, nil)

	_, err := d.svc.RegisterMerchant(ctx, "Corner Store", "9876543210", "password")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_004", appErr.Code)
}

func TestAuthService_LoginMerchant_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	merchant := &domain.Merchant{ID: testMerchantID, Phone: "9876543210", PasswordHash: "hashed"}
	expiry := time.Now().Add(time.Hour)

	d.merchantRepo.EXPECT().GetByPhone(ctx, "9876543210").Return(merchant, nil)
	d.hashSvc.EXPECT().Verify("password", "hashed").Return(true)
	d.tokenSvc.EXPECT().Generate(testMerchantID, domain.RoleMerchant).Return("jwt-token", expiry, nil)

	token, exp, err := d.svc.LoginMerchant(ctx, "9876543210", "password")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAuthService_LoginMerchant_UnknownPhone(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.merchantRepo.EXPECT().GetByPhone(ctx, "0000000000").Return(nil, nil)

	_, _, err := d.svc.LoginMerchant(ctx, "0000000000", "password")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_LoginMerchant_WrongPassword(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	merchant := &domain.Merchant{ID: testMerchantID, PasswordHash: "hashed"}
	d.merchantRepo.EXPECT().GetByPhone(ctx, "9876543210").Return(merchant, nil)
	d.hashSvc.EXPECT().Verify("wrong", "hashed").Return(false)

	_, _, err := d.svc.LoginMerchant(ctx, "9876543210", "wrong")
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	// Same generic code as unknown phone
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.hashSvc.EXPECT().Hash("password").Return("hashed", nil)
	d.userRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	u, err := d.svc.RegisterUser(ctx, "Asha", "password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u.ID, "UR"))
	assert.Len(t, u.ID, 8)
}

func TestAuthService_LoginUser_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	user := &domain.User{ID: testUserID, PasswordHash: "hashed"}
	expiry := time.Now().Add(time.Hour)

	d.userRepo.EXPECT().GetByID(ctx, testUserID).Return(user, nil)
	d.hashSvc.EXPECT().Verify("password", "hashed").Return(true)
	d.tokenSvc.EXPECT().Generate(testUserID, domain.RoleUser).Return("jwt-token", expiry, nil)

	token, _, err := d.svc.LoginUser(ctx, testUserID, "password")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestAuthService_DeleteUserAccount_Success(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.userRepo.EXPECT().GetByID(ctx, testUserID).Return(&domain.User{ID: testUserID}, nil)
	d.linkRepo.EXPECT().ListByUser(ctx, testUserID).Return([]domain.Link{
		{ID: 1, MerchantID: testMerchantID, UserID: testUserID, Balance: 0},
	}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.txRepo.EXPECT().DeleteAllForUser(ctx, tx, testUserID).Return(nil)
	d.requestRepo.EXPECT().DeleteAllForUser(ctx, tx, testUserID).Return(nil)
	d.linkRepo.EXPECT().DeleteAllForUser(ctx, tx, testUserID).Return(nil)
	d.userRepo.EXPECT().Delete(ctx, tx, testUserID).Return(nil)

	err := d.svc.DeleteUserAccount(ctx, testUserID)
	assert.NoError(t, err)
}

func TestAuthService_DeleteUserAccount_NonZeroBalance(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.userRepo.EXPECT().GetByID(ctx, testUserID).Return(&domain.User{ID: testUserID}, nil)
	d.linkRepo.EXPECT().ListByUser(ctx, testUserID).Return([]domain.Link{
		{ID: 1, MerchantID: testMerchantID, UserID: testUserID, Balance: 350},
	}, nil)

	err := d.svc.DeleteUserAccount(ctx, testUserID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LNK_006", appErr.Code)
	assert.Contains(t, appErr.Message, testMerchantID)
}

func TestAuthService_DeleteUserAccount_DebtBlocksToo(t *testing.T) {
	d := setupAuthService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.userRepo.EXPECT().GetByID(ctx, testUserID).Return(&domain.User{ID: testUserID}, nil)
	d.linkRepo.EXPECT().ListByUser(ctx, testUserID).Return([]domain.Link{
		{ID: 1, MerchantID: testMerchantID, UserID: testUserID, Balance: -40},
	}, nil)

	err := d.svc.DeleteUserAccount(ctx, testUserID)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "LNK_006", appErr.Code)
}
