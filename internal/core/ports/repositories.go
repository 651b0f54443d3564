package ports

import (
	"context"
	"errors"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ErrDuplicate is returned by repositories when an insert violates a
// uniqueness constraint (link pair, pending request per pair, phone number).
// Services map it to the caller-facing error for their workflow.
var ErrDuplicate = errors.New("duplicate row")

// MerchantRepository defines persistence operations for merchants.
type MerchantRepository interface {
	Create(ctx context.Context, m *domain.Merchant) error
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Merchant, error)
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Delete removes the user row inside an account-deletion transaction.
	Delete(ctx context.Context, tx pgx.Tx, id string) error
}

// LinkRepository defines persistence operations for merchant-user links.
// Methods accepting pgx.Tx run inside transaction blocks; balance mutations
// are always keyed by the natural (merchant_id, user_id) pair, never by
// surrogate id, to avoid stale-handle races after delink+recreate.
type LinkRepository interface {
	Create(ctx context.Context, l *domain.Link) error
	CreateTx(ctx context.Context, tx pgx.Tx, l *domain.Link) error
	GetByPair(ctx context.Context, merchantID, userID string) (*domain.Link, error)
	// GetByPairForUpdate locks the link row. MUST be called within a transaction.
	GetByPairForUpdate(ctx context.Context, tx pgx.Tx, merchantID, userID string) (*domain.Link, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, merchantID, userID string, newBalance int64) error
	Delete(ctx context.Context, merchantID, userID string) error
	ListByMerchant(ctx context.Context, merchantID string) ([]domain.Link, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Link, error)
	DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error
}

// TransactionRepository defines persistence for the append-only audit trail.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error
	ListByPair(ctx context.Context, merchantID, userID string, limit int) ([]domain.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error
}

// RequestRepository defines persistence for workflow requests.
type RequestRepository interface {
	// Create inserts a pending request. Returns ErrDuplicate when a pending
	// request of the same kind already exists for the pair.
	Create(ctx context.Context, r *domain.Request) error
	GetByID(ctx context.Context, id int64) (*domain.Request, error)
	// MarkResolved is the atomic check-and-set settling a request: it updates
	// status and responded_at only where status is still pending, and reports
	// whether this caller won. MUST be called within a transaction so the
	// kind-specific effects commit together with the transition.
	MarkResolved(ctx context.Context, tx pgx.Tx, id int64, status domain.RequestStatus) (bool, error)
	ListPendingByMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error)
	ListByMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error)
	ListByUser(ctx context.Context, userID string, kind domain.RequestKind) ([]domain.Request, error)
	Delete(ctx context.Context, id int64) error
	// DeleteTerminalOlderThan purges resolved rows whose responded_at is
	// before the cutoff; used by the reconciliation sweep after restarts.
	DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error
}

// ReminderRepository defines persistence for merchant reminders.
type ReminderRepository interface {
	Create(ctx context.Context, r *domain.Reminder) error
	GetByID(ctx context.Context, id int64) (*domain.Reminder, error)
	Update(ctx context.Context, id int64, upd domain.ReminderUpdate) error
	Delete(ctx context.Context, id int64) error
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Reminder, error)
	// ExpireOverdue transitions active reminders whose date has passed.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

// OTPStore is an expiring key-value store for one-time codes. Single use:
// a successful read consumes the code.
type OTPStore interface {
	Set(ctx context.Context, phone, code string, ttl time.Duration) error
	// GetDel returns the stored code and deletes it; empty string if absent.
	GetDel(ctx context.Context, phone string) (string, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
