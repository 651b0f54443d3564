package postgres

import (
	"context"
	"fmt"

	"github.com/Bhatia06/MEWallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository. Rows are
// append-only; there is no update path.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create appends a transaction row within the same database transaction as
// the balance write it records.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (merchant_id, user_id, amount, transaction_type, balance_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := tx.QueryRow(ctx, query,
		t.MerchantID, t.UserID, t.Amount, t.Type, t.BalanceAfter, t.CreatedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByPair returns the most recent transactions for one link.
func (r *TransactionRepo) ListByPair(ctx context.Context, merchantID, userID string, limit int) ([]domain.Transaction, error) {
	query := `SELECT id, merchant_id, user_id, amount, transaction_type, balance_after, created_at
		FROM transactions WHERE merchant_id = $1 AND user_id = $2
		ORDER BY created_at DESC LIMIT $3`

	rows, err := r.pool.Query(ctx, query, merchantID, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions by pair: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// ListByUser returns the most recent transactions across all of a user's links.
func (r *TransactionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	query := `SELECT id, merchant_id, user_id, amount, transaction_type, balance_after, created_at
		FROM transactions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions by user: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// DeleteAllForUser removes the user's audit trail inside an account-deletion
// transaction.
func (r *TransactionRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete transactions for user: %w", err)
	}
	return nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(&t.ID, &t.MerchantID, &t.UserID, &t.Amount, &t.Type, &t.BalanceAfter, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
