package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant. Returns ports.ErrDuplicate when the phone
// number is already registered.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	query := `INSERT INTO merchants (id, store_name, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, m.ID, m.StoreName, m.Phone, m.PasswordHash, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by its business identifier.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	query := `SELECT id, store_name, phone, password_hash, created_at
		FROM merchants WHERE id = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.StoreName, &m.Phone, &m.PasswordHash, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// GetByPhone fetches a merchant by registered phone number.
func (r *MerchantRepo) GetByPhone(ctx context.Context, phone string) (*domain.Merchant, error) {
	query := `SELECT id, store_name, phone, password_hash, created_at
		FROM merchants WHERE phone = $1`

	m := &domain.Merchant{}
	err := r.pool.QueryRow(ctx, query, phone).Scan(
		&m.ID, &m.StoreName, &m.Phone, &m.PasswordHash, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by phone: %w", err)
	}
	return m, nil
}
