package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// LinkRepo implements ports.LinkRepository. The links table carries a unique
// constraint on (merchant_id, user_id); all balance writes are keyed by that
// natural pair.
type LinkRepo struct {
	pool Pool
}

// NewLinkRepo creates a new LinkRepo.
func NewLinkRepo(pool Pool) *LinkRepo {
	return &LinkRepo{pool: pool}
}

const linkColumns = `id, merchant_id, user_id, balance, pin_hash, created_at`

func scanLink(row pgx.Row) (*domain.Link, error) {
	l := &domain.Link{}
	err := row.Scan(&l.ID, &l.MerchantID, &l.UserID, &l.Balance, &l.PINHash, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a new link. Returns ports.ErrDuplicate when the pair is
// already linked.
func (r *LinkRepo) Create(ctx context.Context, l *domain.Link) error {
	query := `INSERT INTO links (merchant_id, user_id, balance, pin_hash, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := r.pool.QueryRow(ctx, query, l.MerchantID, l.UserID, l.Balance, l.PINHash, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// CreateTx inserts a new link within an existing transaction.
func (r *LinkRepo) CreateTx(ctx context.Context, tx pgx.Tx, l *domain.Link) error {
	query := `INSERT INTO links (merchant_id, user_id, balance, pin_hash, created_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := tx.QueryRow(ctx, query, l.MerchantID, l.UserID, l.Balance, l.PINHash, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert link: %w", err)
	}
	return nil
}

// GetByPair fetches a link by its natural key (non-locking read).
func (r *LinkRepo) GetByPair(ctx context.Context, merchantID, userID string) (*domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE merchant_id = $1 AND user_id = $2`

	l, err := scanLink(r.pool.QueryRow(ctx, query, merchantID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get link by pair: %w", err)
	}
	return l, nil
}

// GetByPairForUpdate fetches a link with pessimistic locking.
// This MUST be called within a transaction.
func (r *LinkRepo) GetByPairForUpdate(ctx context.Context, tx pgx.Tx, merchantID, userID string) (*domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE merchant_id = $1 AND user_id = $2 FOR UPDATE`

	l, err := scanLink(tx.QueryRow(ctx, query, merchantID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get link for update: %w", err)
	}
	return l, nil
}

// UpdateBalance writes a new balance within a transaction, keyed by the
// natural pair.
func (r *LinkRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, merchantID, userID string, newBalance int64) error {
	query := `UPDATE links SET balance = $1 WHERE merchant_id = $2 AND user_id = $3`

	tag, err := tx.Exec(ctx, query, newBalance, merchantID, userID)
	if err != nil {
		return fmt.Errorf("update link balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link not found: %s/%s", merchantID, userID)
	}
	return nil
}

// Delete removes a link by its natural key.
func (r *LinkRepo) Delete(ctx context.Context, merchantID, userID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM links WHERE merchant_id = $1 AND user_id = $2`, merchantID, userID)
	if err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link not found: %s/%s", merchantID, userID)
	}
	return nil
}

// ListByMerchant returns every link held by a merchant.
func (r *LinkRepo) ListByMerchant(ctx context.Context, merchantID string) ([]domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE merchant_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list links by merchant: %w", err)
	}
	defer rows.Close()
	return collectLinks(rows)
}

// ListByUser returns every link held by a user.
func (r *LinkRepo) ListByUser(ctx context.Context, userID string) ([]domain.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list links by user: %w", err)
	}
	defer rows.Close()
	return collectLinks(rows)
}

// DeleteAllForUser removes every link of a user inside an account-deletion
// transaction.
func (r *LinkRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM links WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete links for user: %w", err)
	}
	return nil
}

func collectLinks(rows pgx.Rows) ([]domain.Link, error) {
	var links []domain.Link
	for rows.Next() {
		var l domain.Link
		if err := rows.Scan(&l.ID, &l.MerchantID, &l.UserID, &l.Balance, &l.PINHash, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}
