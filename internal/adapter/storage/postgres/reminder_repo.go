package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ReminderRepo implements ports.ReminderRepository.
type ReminderRepo struct {
	pool Pool
}

// NewReminderRepo creates a new ReminderRepo.
func NewReminderRepo(pool Pool) *ReminderRepo {
	return &ReminderRepo{pool: pool}
}

const reminderColumns = `id, merchant_id, user_id, link_id, message, reminder_date, status, created_at`

// Create inserts a new reminder.
func (r *ReminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	query := `INSERT INTO reminders (merchant_id, user_id, link_id, message, reminder_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		rem.MerchantID, rem.UserID, rem.LinkID, rem.Message, rem.ReminderDate, rem.Status, rem.CreatedAt,
	).Scan(&rem.ID)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// GetByID fetches a reminder by id.
func (r *ReminderRepo) GetByID(ctx context.Context, id int64) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`

	rem := &domain.Reminder{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rem.ID, &rem.MerchantID, &rem.UserID, &rem.LinkID,
		&rem.Message, &rem.ReminderDate, &rem.Status, &rem.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reminder by id: %w", err)
	}
	return rem, nil
}

// Update applies an explicit optional-field partial update. Nil fields are
// left untouched.
func (r *ReminderRepo) Update(ctx context.Context, id int64, upd domain.ReminderUpdate) error {
	if upd.Empty() {
		return nil
	}

	var sets []string
	var args []any
	if upd.Message != nil {
		args = append(args, *upd.Message)
		sets = append(sets, "message = $"+strconv.Itoa(len(args)))
	}
	if upd.ReminderDate != nil {
		args = append(args, *upd.ReminderDate)
		sets = append(sets, "reminder_date = $"+strconv.Itoa(len(args)))
	}
	if upd.Status != nil {
		args = append(args, *upd.Status)
		sets = append(sets, "status = $"+strconv.Itoa(len(args)))
	}
	args = append(args, id)
	query := "UPDATE reminders SET " + strings.Join(sets, ", ") + " WHERE id = $" + strconv.Itoa(len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reminder not found: %d", id)
	}
	return nil
}

// Delete removes a reminder.
func (r *ReminderRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reminder not found: %d", id)
	}
	return nil
}

// ListActiveByUser returns a user's active reminders ordered by date.
func (r *ReminderRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders
		WHERE user_id = $1 AND status = 'active' ORDER BY reminder_date`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders by user: %w", err)
	}
	defer rows.Close()

	var rems []domain.Reminder
	for rows.Next() {
		var rem domain.Reminder
		if err := rows.Scan(&rem.ID, &rem.MerchantID, &rem.UserID, &rem.LinkID,
			&rem.Message, &rem.ReminderDate, &rem.Status, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		rems = append(rems, rem)
	}
	return rems, rows.Err()
}

// ExpireOverdue transitions active reminders whose date has passed.
func (r *ReminderRepo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE reminders SET status = 'expired' WHERE status = 'active' AND reminder_date < $1`

	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("expire reminders: %w", err)
	}
	return tag.RowsAffected(), nil
}
