package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	merchantRepo ports.MerchantRepository
	userRepo     ports.UserRepository
	linkRepo     ports.LinkRepository
	txRepo       ports.TransactionRepository
	requestRepo  ports.RequestRepository
	transactor   ports.DBTransactor
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	log          zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	merchantRepo ports.MerchantRepository,
	userRepo ports.UserRepository,
	linkRepo ports.LinkRepository,
	txRepo ports.TransactionRepository,
	requestRepo ports.RequestRepository,
	transactor ports.DBTransactor,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
		linkRepo:     linkRepo,
		txRepo:       txRepo,
		requestRepo:  requestRepo,
		transactor:   transactor,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		log:          log,
	}
}

// RegisterMerchant creates a merchant account keyed by phone number.
func (s *AuthServiceImpl) RegisterMerchant(ctx context.Context, storeName, phone, password string) (*domain.Merchant, error) {
	existing, err := s.merchantRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check phone: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrAlreadyExists("merchant with this phone")
	}

	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	merchant := &domain.Merchant{
		ID:           domain.NewMerchantID(),
		StoreName:    storeName,
		Phone:        phone,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.merchantRepo.Create(ctx, merchant); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create merchant: %w", err))
	}

	s.log.Info().Str("merchant_id", merchant.ID).Msg("merchant registered")
	return merchant, nil
}

// LoginMerchant validates phone+password and returns a JWT. Failures are
// reported as a single generic error to avoid account enumeration.
func (s *AuthServiceImpl) LoginMerchant(ctx context.Context, phone, password string) (string, time.Time, error) {
	merchant, err := s.merchantRepo.GetByPhone(ctx, phone)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find merchant: %w", err))
	}
	if merchant == nil || !s.hashSvc.Verify(password, merchant.PasswordHash) {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(merchant.ID, domain.RoleMerchant)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

// RegisterUser creates a user account. The generated URxxxxxx identifier is
// the login handle; callers must surface it to the user once.
func (s *AuthServiceImpl) RegisterUser(ctx context.Context, name, password string) (*domain.User, error) {
	passwordHash, err := s.hashSvc.Hash(password)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash password: %w", err))
	}

	user := &domain.User{
		ID:           domain.NewUserID(),
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create user: %w", err))
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// LoginUser validates id+password and returns a JWT.
func (s *AuthServiceImpl) LoginUser(ctx context.Context, userID, password string) (string, time.Time, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil || !s.hashSvc.Verify(password, user.PasswordHash) {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(user.ID, domain.RoleUser)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

// DeleteUserAccount removes a user and every dependent row in one database
// transaction. Deletion is refused while any link holds money in either
// direction, so balances must be settled or forfeited explicitly first.
func (s *AuthServiceImpl) DeleteUserAccount(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("find user: %w", err))
	}
	if user == nil {
		return apperror.ErrNotFound("user")
	}

	links, err := s.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list links: %w", err))
	}
	for _, l := range links {
		if l.Balance != 0 {
			return apperror.ErrNonZeroBalance(fmt.Sprintf("balance %d with merchant %s", l.Balance, l.MerchantID))
		}
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.txRepo.DeleteAllForUser(ctx, dbTx, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete transactions: %w", err))
	}
	if err := s.requestRepo.DeleteAllForUser(ctx, dbTx, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete requests: %w", err))
	}
	if err := s.linkRepo.DeleteAllForUser(ctx, dbTx, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete links: %w", err))
	}
	if err := s.userRepo.Delete(ctx, dbTx, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete user: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("user_id", userID).Msg("user account deleted")
	return nil
}
