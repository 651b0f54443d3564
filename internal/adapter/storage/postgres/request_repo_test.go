package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(kind domain.RequestKind) *domain.Request {
	amount := int64(250)
	pin := "1234"
	req := &domain.Request{
		Kind:       kind,
		MerchantID: "MR1A2B3C",
		UserID:     "UR4D5E6F",
		Status:     domain.RequestStatusPending,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
	switch kind {
	case domain.RequestKindLink:
		req.ProposedPIN = &pin
	case domain.RequestKindBalance, domain.RequestKindPay:
		req.Amount = &amount
	}
	return req
}

func requestColumnNames() []string {
	return []string{"id", "kind", "merchant_id", "user_id", "pin", "amount", "description", "status", "created_at", "responded_at"}
}

func requestRow(req *domain.Request) *pgxmock.Rows {
	return pgxmock.NewRows(requestColumnNames()).AddRow(
		req.ID, req.Kind, req.MerchantID, req.UserID, req.ProposedPIN,
		req.Amount, req.Description, req.Status, req.CreatedAt, req.RespondedAt,
	)
}

func TestRequestRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	req := newTestRequest(domain.RequestKindBalance)

	mock.ExpectQuery("INSERT INTO requests").
		WithArgs(req.Kind, req.MerchantID, req.UserID, req.ProposedPIN,
			req.Amount, req.Description, req.Status, req.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	err = repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(42), req.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_Create_DuplicatePending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	req := newTestRequest(domain.RequestKindLink)

	mock.ExpectQuery("INSERT INTO requests").
		WithArgs(req.Kind, req.MerchantID, req.UserID, req.ProposedPIN,
			req.Amount, req.Description, req.Status, req.CreatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "requests_pending_pair_kind_idx"})

	err = repo.Create(context.Background(), req)
	assert.ErrorIs(t, err, ports.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	req := newTestRequest(domain.RequestKindPay)
	req.ID = 9

	mock.ExpectQuery("SELECT .+ FROM requests WHERE id").
		WithArgs(req.ID).
		WillReturnRows(requestRow(req))

	result, err := repo.GetByID(context.Background(), req.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.RequestKindPay, result.Kind)
	require.NotNil(t, result.Amount)
	assert.Equal(t, int64(250), *result.Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM requests WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows(requestColumnNames()))

	result, err := repo.GetByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestRequestRepo_MarkResolved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE requests SET status").
		WithArgs(domain.RequestStatusAccepted, pgxmock.AnyArg(), int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	won, err := repo.MarkResolved(context.Background(), tx, 9, domain.RequestStatusAccepted)
	require.NoError(t, err)
	assert.True(t, won)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestRepo_MarkResolved_AlreadySettled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE requests SET status").
		WithArgs(domain.RequestStatusRejected, pgxmock.AnyArg(), int64(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	won, err := repo.MarkResolved(context.Background(), tx, 9, domain.RequestStatusRejected)
	require.NoError(t, err)
	assert.False(t, won)
}

func TestRequestRepo_ListPendingByMerchant(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	req := newTestRequest(domain.RequestKindBalance)
	req.ID = 3

	mock.ExpectQuery("SELECT .+ FROM requests").
		WithArgs(req.MerchantID, domain.RequestKindBalance).
		WillReturnRows(requestRow(req))

	reqs, err := repo.ListPendingByMerchant(context.Background(), req.MerchantID, domain.RequestKindBalance)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, domain.RequestStatusPending, reqs[0].Status)
}

func TestRequestRepo_DeleteTerminalOlderThan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestRepo(mock)
	cutoff := time.Now().UTC().Add(-10 * time.Second)

	mock.ExpectExec("DELETE FROM requests WHERE status").
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.DeleteTerminalOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
