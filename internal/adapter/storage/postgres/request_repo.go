package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// RequestRepo implements ports.RequestRepository. The requests table carries
// a partial unique index on (merchant_id, user_id, kind) WHERE status =
// 'pending', which is what enforces the single-pending-request invariant
// under concurrent creates.
type RequestRepo struct {
	pool Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(pool Pool) *RequestRepo {
	return &RequestRepo{pool: pool}
}

const requestColumns = `id, kind, merchant_id, user_id, pin, amount, description, status, created_at, responded_at`

func scanRequest(row pgx.Row) (*domain.Request, error) {
	r := &domain.Request{}
	err := row.Scan(&r.ID, &r.Kind, &r.MerchantID, &r.UserID, &r.ProposedPIN,
		&r.Amount, &r.Description, &r.Status, &r.CreatedAt, &r.RespondedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Create inserts a pending request. Returns ports.ErrDuplicate when a pending
// request of the same kind already exists for the pair.
func (r *RequestRepo) Create(ctx context.Context, req *domain.Request) error {
	query := `INSERT INTO requests (kind, merchant_id, user_id, pin, amount, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		req.Kind, req.MerchantID, req.UserID, req.ProposedPIN,
		req.Amount, req.Description, req.Status, req.CreatedAt,
	).Scan(&req.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID fetches a request by id.
func (r *RequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`

	req, err := scanRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request by id: %w", err)
	}
	return req, nil
}

// MarkResolved settles a request with a single conditional update: the write
// only lands while status is still pending, so of two racing settlers exactly
// one observes rows-affected = 1.
func (r *RequestRepo) MarkResolved(ctx context.Context, tx pgx.Tx, id int64, status domain.RequestStatus) (bool, error) {
	query := `UPDATE requests SET status = $1, responded_at = $2 WHERE id = $3 AND status = 'pending'`

	tag, err := tx.Exec(ctx, query, status, time.Now().UTC(), id)
	if err != nil {
		return false, fmt.Errorf("mark request resolved: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListPendingByMerchant returns pending requests of one kind for a merchant.
func (r *RequestRepo) ListPendingByMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE merchant_id = $1 AND kind = $2 AND status = 'pending' ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, merchantID, kind)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

// ListByMerchant returns all requests of one kind created against a merchant,
// newest first.
func (r *RequestRepo) ListByMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE merchant_id = $1 AND kind = $2 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, merchantID, kind)
	if err != nil {
		return nil, fmt.Errorf("list requests by merchant: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

// ListByUser returns all requests of one kind addressed to a user, newest first.
func (r *RequestRepo) ListByUser(ctx context.Context, userID string, kind domain.RequestKind) ([]domain.Request, error) {
	query := `SELECT ` + requestColumns + ` FROM requests
		WHERE user_id = $1 AND kind = $2 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("list requests by user: %w", err)
	}
	defer rows.Close()
	return collectRequests(rows)
}

// Delete removes a request row (deferred purge).
func (r *RequestRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	return nil
}

// DeleteTerminalOlderThan purges resolved rows left behind by lost purge
// timers (e.g. after a restart).
func (r *RequestRepo) DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM requests WHERE status <> 'pending' AND responded_at < $1`

	tag, err := r.pool.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge stale requests: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAllForUser removes all of a user's requests inside an
// account-deletion transaction.
func (r *RequestRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM requests WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete requests for user: %w", err)
	}
	return nil
}

func collectRequests(rows pgx.Rows) ([]domain.Request, error) {
	var reqs []domain.Request
	for rows.Next() {
		var req domain.Request
		if err := rows.Scan(&req.ID, &req.Kind, &req.MerchantID, &req.UserID, &req.ProposedPIN,
			&req.Amount, &req.Description, &req.Status, &req.CreatedAt, &req.RespondedAt); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
