package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"
	"github.com/Bhatia06/MEWallet/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// WorkflowServiceImpl implements ports.WorkflowService. Settling a request is
// a conditional update (status must still be pending) executed in the same
// database transaction as the kind-specific effects, so concurrent accept and
// reject race to exactly one winner and the loser sees AlreadyProcessed.
type WorkflowServiceImpl struct {
	requestRepo  ports.RequestRepository
	linkRepo     ports.LinkRepository
	txRepo       ports.TransactionRepository
	merchantRepo ports.MerchantRepository
	userRepo     ports.UserRepository
	transactor   ports.DBTransactor
	hashSvc      ports.HashService
	notifier     ports.Notifier
	purger       ports.PurgeScheduler
	log          zerolog.Logger
}

// NewWorkflowService creates a new WorkflowServiceImpl.
func NewWorkflowService(
	requestRepo ports.RequestRepository,
	linkRepo ports.LinkRepository,
	txRepo ports.TransactionRepository,
	merchantRepo ports.MerchantRepository,
	userRepo ports.UserRepository,
	transactor ports.DBTransactor,
	hashSvc ports.HashService,
	notifier ports.Notifier,
	purger ports.PurgeScheduler,
	log zerolog.Logger,
) *WorkflowServiceImpl {
	return &WorkflowServiceImpl{
		requestRepo:  requestRepo,
		linkRepo:     linkRepo,
		txRepo:       txRepo,
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
		transactor:   transactor,
		hashSvc:      hashSvc,
		notifier:     notifier,
		purger:       purger,
		log:          log,
	}
}

// checkParties verifies both sides of a request exist.
func (s *WorkflowServiceImpl) checkParties(ctx context.Context, merchantID, userID string) error {
	merchant, err := s.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get merchant: %w", err))
	}
	if merchant == nil {
		return apperror.ErrNotFound("merchant")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return apperror.ErrNotFound("user")
	}
	return nil
}

// CreateLinkRequest records a user's proposal to open a link with a merchant.
func (s *WorkflowServiceImpl) CreateLinkRequest(ctx context.Context, merchantID, userID, pin string) (*domain.Request, error) {
	if err := s.checkParties(ctx, merchantID, userID); err != nil {
		return nil, err
	}

	link, err := s.linkRepo.GetByPair(ctx, merchantID, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check link: %w", err))
	}
	if link != nil {
		return nil, apperror.ErrAlreadyLinked()
	}

	req := &domain.Request{
		Kind:        domain.RequestKindLink,
		MerchantID:  merchantID,
		UserID:      userID,
		ProposedPIN: &pin,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.createRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// CreateBalanceRequest records a user's ask for the merchant to credit their
// balance. The link may not exist yet; acceptance creates it if needed, which
// is why the proposal carries a PIN.
func (s *WorkflowServiceImpl) CreateBalanceRequest(ctx context.Context, merchantID, userID string, amount int64, pin string) (*domain.Request, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if err := s.checkParties(ctx, merchantID, userID); err != nil {
		return nil, err
	}

	req := &domain.Request{
		Kind:        domain.RequestKindBalance,
		MerchantID:  merchantID,
		UserID:      userID,
		ProposedPIN: &pin,
		Amount:      &amount,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.createRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// CreatePayRequest records a merchant's proposal to debit a user. The link
// must exist and the balance is pre-checked; the authoritative check happens
// again under lock at acceptance time.
func (s *WorkflowServiceImpl) CreatePayRequest(ctx context.Context, merchantID, userID string, amount int64, description *string) (*domain.Request, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	link, err := s.linkRepo.GetByPair(ctx, merchantID, userID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get link: %w", err))
	}
	if link == nil {
		return nil, apperror.ErrNotFound("link")
	}
	if link.Balance < amount {
		return nil, apperror.ErrInsufficientBalance(link.Balance)
	}

	req := &domain.Request{
		Kind:        domain.RequestKindPay,
		MerchantID:  merchantID,
		UserID:      userID,
		Amount:      &amount,
		Description: description,
		Status:      domain.RequestStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.createRequest(ctx, req); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, userID, domain.RoleUser, domain.Event{
		Event: domain.EventPaymentRequested,
		Data:  req,
	})

	return req, nil
}

// createRequest inserts a pending request, mapping the partial unique index
// violation to DuplicatePending. No read-before-write: the index is the
// arbiter under concurrency.
func (s *WorkflowServiceImpl) createRequest(ctx context.Context, req *domain.Request) error {
	if err := s.requestRepo.Create(ctx, req); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return apperror.ErrDuplicatePending()
		}
		return apperror.InternalError(fmt.Errorf("create request: %w", err))
	}

	s.log.Info().
		Int64("request_id", req.ID).
		Str("kind", string(req.Kind)).
		Str("merchant_id", req.MerchantID).
		Str("user_id", req.UserID).
		Msg("request created")

	return nil
}

// loadPending fetches a request, checks its kind, and classifies a settled or
// missing row for the caller.
func (s *WorkflowServiceImpl) loadPending(ctx context.Context, id int64, kind domain.RequestKind) (*domain.Request, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get request: %w", err))
	}
	if req == nil || req.Kind != kind {
		return nil, apperror.ErrNotFound("request")
	}
	if !req.IsPending() {
		return nil, apperror.ErrAlreadyProcessed()
	}
	return req, nil
}

// settle runs the conditional pending->status update inside tx and converts a
// lost race into AlreadyProcessed.
func (s *WorkflowServiceImpl) settle(ctx context.Context, tx pgx.Tx, id int64, status domain.RequestStatus) error {
	won, err := s.requestRepo.MarkResolved(ctx, tx, id, status)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("settle request: %w", err))
	}
	if !won {
		return apperror.ErrAlreadyProcessed()
	}
	return nil
}

// AcceptLinkRequest is the merchant's approval of a link proposal: the link
// is created with zero balance and the hash of the proposed PIN.
func (s *WorkflowServiceImpl) AcceptLinkRequest(ctx context.Context, id int64) error {
	req, err := s.loadPending(ctx, id, domain.RequestKindLink)
	if err != nil {
		return err
	}

	pin := ""
	if req.ProposedPIN != nil {
		pin = *req.ProposedPIN
	}
	pinHash, err := s.hashSvc.Hash(pin)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("hash pin: %w", err))
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.settle(ctx, dbTx, id, domain.RequestStatusAccepted); err != nil {
		return err
	}

	link := &domain.Link{
		MerchantID: req.MerchantID,
		UserID:     req.UserID,
		Balance:    0,
		PINHash:    pinHash,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.linkRepo.CreateTx(ctx, dbTx, link); err != nil {
		// A link that appeared since the proposal means the goal is already
		// met; the acceptance still settles the request.
		if !errors.Is(err, ports.ErrDuplicate) {
			return apperror.InternalError(fmt.Errorf("create link: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Int64("request_id", id).Msg("link request accepted")
	s.purger.Schedule(id)

	s.notifier.Notify(ctx, req.UserID, domain.RoleUser, domain.Event{
		Event: domain.EventConnected,
		Data:  link,
	})

	return nil
}

// AcceptBalanceRequest is the merchant's approval of a credit ask. If the
// pair is not linked yet, the link is created carrying the amount.
func (s *WorkflowServiceImpl) AcceptBalanceRequest(ctx context.Context, id int64) (*domain.Transaction, error) {
	req, err := s.loadPending(ctx, id, domain.RequestKindBalance)
	if err != nil {
		return nil, err
	}
	if req.Amount == nil || *req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	amount := *req.Amount

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.settle(ctx, dbTx, id, domain.RequestStatusAccepted); err != nil {
		return nil, err
	}

	link, err := s.linkRepo.GetByPairForUpdate(ctx, dbTx, req.MerchantID, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock link: %w", err))
	}

	var newBalance int64
	if link == nil {
		pin := ""
		if req.ProposedPIN != nil {
			pin = *req.ProposedPIN
		}
		pinHash, err := s.hashSvc.Hash(pin)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("hash pin: %w", err))
		}
		newBalance = amount
		link = &domain.Link{
			MerchantID: req.MerchantID,
			UserID:     req.UserID,
			Balance:    newBalance,
			PINHash:    pinHash,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.linkRepo.CreateTx(ctx, dbTx, link); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("create link: %w", err))
		}
	} else {
		newBalance = link.Balance + amount
		if err := s.linkRepo.UpdateBalance(ctx, dbTx, req.MerchantID, req.UserID, newBalance); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
	}

	txn := &domain.Transaction{
		MerchantID:   req.MerchantID,
		UserID:       req.UserID,
		Amount:       amount,
		Type:         domain.TransactionTypeCredit,
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
		Int64("request_id", id).
		Int64("amount", amount).
		Int64("balance_after", newBalance).
		Msg("balance request accepted")
	s.purger.Schedule(id)

	s.notifier.Notify(ctx, req.UserID, domain.RoleUser, domain.Event{
		Event: domain.EventBalanceAdded,
		Data:  txn,
	})
	s.notifier.Notify(ctx, req.MerchantID, domain.RoleMerchant, domain.Event{
		Event: domain.EventBalanceUpdated,
		Data:  txn,
	})

	return txn, nil
}

// AcceptPayRequest is the user's approval of a merchant's debit proposal.
// The caller must be the request's user, and the PIN is re-verified against
// the link's stored hash before any money moves.
func (s *WorkflowServiceImpl) AcceptPayRequest(ctx context.Context, id int64, callerID, pin string) (*domain.Transaction, error) {
	req, err := s.loadPending(ctx, id, domain.RequestKindPay)
	if err != nil {
		return nil, err
	}
	if req.UserID != callerID {
		return nil, apperror.ErrForbidden()
	}
	if req.Amount == nil || *req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	amount := *req.Amount

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.settle(ctx, dbTx, id, domain.RequestStatusAccepted); err != nil {
		return nil, err
	}

	link, err := s.linkRepo.GetByPairForUpdate(ctx, dbTx, req.MerchantID, req.UserID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock link: %w", err))
	}
	if link == nil {
		return nil, apperror.ErrNotFound("link")
	}

	if !s.hashSvc.Verify(pin, link.PINHash) {
		return nil, apperror.ErrInvalidPin()
	}
	if link.Balance < amount {
		return nil, apperror.ErrInsufficientBalance(link.Balance)
	}

	newBalance := link.Balance - amount
	if err := s.linkRepo.UpdateBalance(ctx, dbTx, req.MerchantID, req.UserID, newBalance); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
	}

	txn := &domain.Transaction{
		MerchantID:   req.MerchantID,
		UserID:       req.UserID,
		Amount:       amount,
		Type:         domain.TransactionTypePurchase,
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
		Int64("request_id", id).
		Int64("amount", amount).
		Int64("balance_after", newBalance).
		Msg("pay request accepted")
	s.purger.Schedule(id)

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

// Reject settles a request as rejected with no side effects beyond the
// transition itself.
func (s *WorkflowServiceImpl) Reject(ctx context.Context, kind domain.RequestKind, id int64) (*domain.Request, error) {
	req, err := s.loadPending(ctx, id, kind)
	if err != nil {
		return nil, err
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.settle(ctx, dbTx, id, domain.RequestStatusRejected); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	now := time.Now().UTC()
	req.Status = domain.RequestStatusRejected
	req.RespondedAt = &now

	s.log.Info().Int64("request_id", id).Str("kind", string(kind)).Msg("request rejected")
	s.purger.Schedule(id)

	return req, nil
}

// ListPendingForMerchant returns a merchant's open requests of one kind.
func (s *WorkflowServiceImpl) ListPendingForMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error) {
	reqs, err := s.requestRepo.ListPendingByMerchant(ctx, merchantID, kind)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pending requests: %w", err))
	}
	return reqs, nil
}

// ListPayRequestsForUser returns a user's pay requests, newest first.
func (s *WorkflowServiceImpl) ListPayRequestsForUser(ctx context.Context, userID string) ([]domain.Request, error) {
	reqs, err := s.requestRepo.ListByUser(ctx, userID, domain.RequestKindPay)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pay requests: %w", err))
	}
	return reqs, nil
}

// ListPayRequestsForMerchant returns a merchant's pay requests, newest first.
func (s *WorkflowServiceImpl) ListPayRequestsForMerchant(ctx context.Context, merchantID string) ([]domain.Request, error) {
	reqs, err := s.requestRepo.ListByMerchant(ctx, merchantID, domain.RequestKindPay)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list pay requests: %w", err))
	}
	return reqs, nil
}
