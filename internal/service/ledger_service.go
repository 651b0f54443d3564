package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"

	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService. Every balance mutation
// locks the link row with SELECT ... FOR UPDATE and commits the new balance
// together with its audit Transaction in one database transaction.
type LedgerServiceImpl struct {
	linkRepo   ports.LinkRepository
	txRepo     ports.TransactionRepository
	transactor ports.DBTransactor
	hashSvc    ports.HashService
	notifier   ports.Notifier
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	linkRepo ports.LinkRepository,
	txRepo ports.TransactionRepository,
	transactor ports.DBTransactor,
	hashSvc ports.HashService,
	notifier ports.Notifier,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		linkRepo:   linkRepo,
		txRepo:     txRepo,
		transactor: transactor,
		hashSvc:    hashSvc,
		notifier:   notifier,
		log:        log,
	}
}

// CreateLink links a merchant and a user with a fresh PIN-protected balance.
func (s *LedgerServiceImpl) CreateLink(ctx context.Context, merchantID, userID, pin string, initialBalance int64) (*domain.Link, error) {
	if initialBalance < 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	pinHash, err := s.hashSvc.Hash(pin)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("hash pin: %w", err))
	}

	link := &domain.Link{
		MerchantID: merchantID,
		UserID:     userID,
		Balance:    initialBalance,
		PINHash:    pinHash,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.linkRepo.Create(ctx, link); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, apperror.ErrAlreadyLinked()
		}
		return nil, apperror.InternalError(fmt.Errorf("create link: %w", err))
	}

	s.log.Info().
		Str("merchant_id", merchantID).
		Str("user_id", userID).
		Int64("initial_balance", initialBalance).
		Msg("link created")

	s.notifier.Notify(ctx, userID, domain.RoleUser, domain.Event{
		Event: domain.EventConnected,
		Data:  link,
	})

	return link, nil
}

// GetBalance returns the current balance of a link.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, merchantID, userID string) (int64, error) {
	link, err := s.linkRepo.GetByPair(ctx, merchantID, userID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get link: %w", err))
	}
	if link == nil {
		return 0, apperror.ErrNotFound("link")
	}
	return link.Balance, nil
}

// AddBalance credits a link. The PIN is verified against the link's stored
// hash; credits always succeed for positive amounts, regardless of balance.
func (s *LedgerServiceImpl) AddBalance(ctx context.Context, req ports.BalanceMutation) (*domain.Transaction, error) {
	txn, err := s.mutate(ctx, req, domain.TransactionTypeCredit)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, req.MerchantID, domain.RoleMerchant, domain.Event{
		Event: domain.EventBalanceAdded,
		Data:  txn,
	})
	s.notifier.Notify(ctx, req.UserID, domain.RoleUser, domain.Event{
		Event: domain.EventBalanceUpdated,
		Data:  txn,
	})

	return txn, nil
}

// Purchase debits a link. Debits that would take the balance below zero are
// refused with InsufficientBalance.
func (s *LedgerServiceImpl) Purchase(ctx context.Context, req ports.BalanceMutation) (*domain.Transaction, error) {
	txn, err := s.mutate(ctx, req, domain.TransactionTypePurchase)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, req.MerchantID, domain.RoleMerchant, domain.Event{
		Event: domain.EventPaymentReceived,
		Data:  txn,
	})
	s.notifier.Notify(ctx, req.UserID, domain.RoleUser, domain.Event{
		Event: domain.EventBalanceUpdated,
		Data:  txn,
	})

	return txn, nil
}

// mutate applies a PIN-gated balance change and appends its audit record,
// both inside one database transaction with the link row locked.
func (s *LedgerServiceImpl) mutate(ctx context.Context, req ports.BalanceMutation, txType domain.TransactionType) (*domain.Transaction, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	link, err := s.linkRepo.GetByPairForUpdate(ctx, dbTx, req.MerchantID, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock link: %w", err))
	}
	if link == nil {
		return nil, apperror.ErrNotFound("link")
	}

	if !s.hashSvc.Verify(req.PIN, link.PINHash) {
		return nil, apperror.ErrInvalidPin()
	}

	var newBalance int64
	switch txType {
	case domain.TransactionTypeCredit:
		newBalance = link.Balance + req.Amount
	default:
		if link.Balance < req.Amount {
			return nil, apperror.ErrInsufficientBalance(link.Balance)
		}
		newBalance = link.Balance - req.Amount
	}

	if err := s.linkRepo.UpdateBalance(ctx, dbTx, req.MerchantID, req.UserID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := &domain.Transaction{
		MerchantID:   req.MerchantID,
		UserID:       req.UserID,
		Amount:       req.Amount,
		Type:         txType,
		BalanceAfter: newBalance,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record transaction: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("merchant_id", req.MerchantID).
		Str("user_id", req.UserID).
		Str("type", string(txType)).
		Int64("amount", req.Amount).
		Int64("balance_after", newBalance).
		Msg("balance mutated")

	return txn, nil
}

// Delink removes a link after re-verifying its PIN. The delete is
// unconditional: any remaining balance is forfeited by the caller.
func (s *LedgerServiceImpl) Delink(ctx context.Context, merchantID, userID, pin string) error {
	link, err := s.linkRepo.GetByPair(ctx, merchantID, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get link: %w", err))
	}
	if link == nil {
		return apperror.ErrNotFound("link")
	}

	if !s.hashSvc.Verify(pin, link.PINHash) {
		return apperror.ErrInvalidPin()
	}

	if err := s.linkRepo.Delete(ctx, merchantID, userID); err != nil {
		return apperror.InternalError(fmt.Errorf("delete link: %w", err))
	}

	s.log.Info().
		Str("merchant_id", merchantID).
		Str("user_id", userID).
		Int64("forfeited_balance", link.Balance).
		Msg("link removed")

	return nil
}

// ListTransactions returns the audit trail for one link, newest first.
func (s *LedgerServiceImpl) ListTransactions(ctx context.Context, merchantID, userID string, limit int) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListByPair(ctx, merchantID, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list transactions: %w", err))
	}
	return txns, nil
}

// ListUserTransactions returns a user's audit trail across all merchants.
func (s *LedgerServiceImpl) ListUserTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list user transactions: %w", err))
	}
	return txns, nil
}

// ListLinkedUsers returns every link a merchant holds.
func (s *LedgerServiceImpl) ListLinkedUsers(ctx context.Context, merchantID string) ([]domain.Link, error) {
	links, err := s.linkRepo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list links by merchant: %w", err))
	}
	return links, nil
}

// ListLinkedMerchants returns every link a user holds.
func (s *LedgerServiceImpl) ListLinkedMerchants(ctx context.Context, userID string) ([]domain.Link, error) {
	links, err := s.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list links by user: %w", err))
	}
	return links, nil
}
