package ports

import (
	"context"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
)

// HashService is the credential vault: one slow, salted, one-way transform
// used for both passwords and 4-6 digit PINs.
type HashService interface {
	Hash(secret string) (string, error)
	Verify(secret string, digest string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string, role domain.Role) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    domain.Role
}

// Notifier is the fanout seen by business services: best-effort push to every
// live channel of an identity, silently dropped when none are connected.
type Notifier interface {
	Notify(ctx context.Context, identity string, role domain.Role, event domain.Event)
	IsConnected(identity string, role domain.Role) bool
}

// PurgeScheduler schedules the delayed deletion of a resolved request.
type PurgeScheduler interface {
	Schedule(requestID int64)
	Cancel(requestID int64)
}

// --- Service Ports (Business Logic) ---

// LedgerService owns links and their balance mutations.
type LedgerService interface {
	CreateLink(ctx context.Context, merchantID, userID, pin string, initialBalance int64) (*domain.Link, error)
	GetBalance(ctx context.Context, merchantID, userID string) (int64, error)
	AddBalance(ctx context.Context, req BalanceMutation) (*domain.Transaction, error)
	Purchase(ctx context.Context, req BalanceMutation) (*domain.Transaction, error)
	Delink(ctx context.Context, merchantID, userID, pin string) error
	ListTransactions(ctx context.Context, merchantID, userID string, limit int) ([]domain.Transaction, error)
	ListUserTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error)
	ListLinkedUsers(ctx context.Context, merchantID string) ([]domain.Link, error)
	ListLinkedMerchants(ctx context.Context, userID string) ([]domain.Link, error)
}

// BalanceMutation holds validated input for a PIN-gated balance change.
type BalanceMutation struct {
	MerchantID string
	UserID     string
	Amount     int64
	PIN        string
}

// WorkflowService runs the pending-request state machines.
type WorkflowService interface {
	CreateLinkRequest(ctx context.Context, merchantID, userID, pin string) (*domain.Request, error)
	CreateBalanceRequest(ctx context.Context, merchantID, userID string, amount int64, pin string) (*domain.Request, error)
	CreatePayRequest(ctx context.Context, merchantID, userID string, amount int64, description *string) (*domain.Request, error)
	AcceptLinkRequest(ctx context.Context, id int64) error
	AcceptBalanceRequest(ctx context.Context, id int64) (*domain.Transaction, error)
	// AcceptPayRequest settles a pay request; callerID must be the request's
	// user and pin is re-verified against the link's stored hash.
	AcceptPayRequest(ctx context.Context, id int64, callerID, pin string) (*domain.Transaction, error)
	Reject(ctx context.Context, kind domain.RequestKind, id int64) (*domain.Request, error)
	ListPendingForMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error)
	ListPayRequestsForUser(ctx context.Context, userID string) ([]domain.Request, error)
	ListPayRequestsForMerchant(ctx context.Context, merchantID string) ([]domain.Request, error)
}

// ReminderService owns merchant-authored payment reminders.
type ReminderService interface {
	Create(ctx context.Context, req CreateReminder) (*domain.Reminder, error)
	Update(ctx context.Context, merchantID string, id int64, upd domain.ReminderUpdate) error
	Delete(ctx context.Context, merchantID string, id int64) error
	Dismiss(ctx context.Context, userID string, id int64) error
	ListForUser(ctx context.Context, userID string) ([]domain.Reminder, error)
}

// CreateReminder holds validated input for reminder creation.
type CreateReminder struct {
	MerchantID   string
	UserID       string
	Message      string
	ReminderDate time.Time
}

// AuthService handles identity registration, login and account deletion.
type AuthService interface {
	RegisterMerchant(ctx context.Context, storeName, phone, password string) (*domain.Merchant, error)
	LoginMerchant(ctx context.Context, phone, password string) (string, time.Time, error)
	RegisterUser(ctx context.Context, name, password string) (*domain.User, error)
	LoginUser(ctx context.Context, userID, password string) (string, time.Time, error)
	// DeleteUserAccount removes the user and all dependent rows, refusing
	// while any link carries a non-zero balance.
	DeleteUserAccount(ctx context.Context, userID string) error
}

// OTPService issues and verifies single-use codes for phone verification.
type OTPService interface {
	Generate(ctx context.Context, phone string) (string, error)
	Verify(ctx context.Context, phone, code string) error
}
