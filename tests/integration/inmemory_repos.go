package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
	"github.com/Bhatia06/MEWallet/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The in-memory repos share one mutex so that "transactions" observe a
// consistent view. Pessimistic row locks degrade to plain reads; the
// request CAS in markResolved still decides races the way the SQL does.
type memStore struct {
	mu        sync.Mutex
	merchants map[string]*domain.Merchant
	users     map[string]*domain.User
	links     map[string]*domain.Link // key: merchantID + "/" + userID
	txs       []domain.Transaction
	requests  map[int64]*domain.Request
	reminders map[int64]*domain.Reminder
	nextTxID  int64
	nextReqID int64
	nextRemID int64
}

func newMemStore() *memStore {
	return &memStore{
		merchants: make(map[string]*domain.Merchant),
		users:     make(map[string]*domain.User),
		links:     make(map[string]*domain.Link),
		requests:  make(map[int64]*domain.Request),
		reminders: make(map[int64]*domain.Reminder),
	}
}

func pairKey(merchantID, userID string) string {
	return merchantID + "/" + userID
}

// linkBalance reads a link's balance directly, for assertions.
func (s *memStore) linkBalance(merchantID, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.links[pairKey(merchantID, userID)]
	if !ok {
		return 0, fmt.Errorf("link %s not found", pairKey(merchantID, userID))
	}
	return l.Balance, nil
}

// --- Merchant Repo ---

type inMemoryMerchantRepo struct{ s *memStore }

func (r *inMemoryMerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.merchants {
		if existing.Phone == m.Phone {
			return ports.ErrDuplicate
		}
	}
	cp := *m
	r.s.merchants[m.ID] = &cp
	return nil
}

func (r *inMemoryMerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.merchants[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *inMemoryMerchantRepo) GetByPhone(ctx context.Context, phone string) (*domain.Merchant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.merchants {
		if m.Phone == phone {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// --- User Repo ---

type inMemoryUserRepo struct{ s *memStore }

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	return nil
}

// --- Link Repo ---

type inMemoryLinkRepo struct{ s *memStore }

func (r *inMemoryLinkRepo) create(l *domain.Link) error {
	key := pairKey(l.MerchantID, l.UserID)
	if _, exists := r.s.links[key]; exists {
		return ports.ErrDuplicate
	}
	cp := *l
	cp.ID = int64(len(r.s.links) + 1)
	r.s.links[key] = &cp
	l.ID = cp.ID
	return nil
}

func (r *inMemoryLinkRepo) Create(ctx context.Context, l *domain.Link) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.create(l)
}

func (r *inMemoryLinkRepo) CreateTx(ctx context.Context, tx pgx.Tx, l *domain.Link) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.create(l)
}

func (r *inMemoryLinkRepo) get(merchantID, userID string) *domain.Link {
	l, ok := r.s.links[pairKey(merchantID, userID)]
	if !ok {
		return nil
	}
	cp := *l
	return &cp
}

func (r *inMemoryLinkRepo) GetByPair(ctx context.Context, merchantID, userID string) (*domain.Link, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.get(merchantID, userID), nil
}

func (r *inMemoryLinkRepo) GetByPairForUpdate(ctx context.Context, tx pgx.Tx, merchantID, userID string) (*domain.Link, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.get(merchantID, userID), nil
}

func (r *inMemoryLinkRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, merchantID, userID string, newBalance int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l, ok := r.s.links[pairKey(merchantID, userID)]
	if !ok {
		return fmt.Errorf("link not found")
	}
	l.Balance = newBalance
	return nil
}

func (r *inMemoryLinkRepo) Delete(ctx context.Context, merchantID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.links, pairKey(merchantID, userID))
	return nil
}

func (r *inMemoryLinkRepo) ListByMerchant(ctx context.Context, merchantID string) ([]domain.Link, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Link
	for _, l := range r.s.links {
		if l.MerchantID == merchantID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *inMemoryLinkRepo) ListByUser(ctx context.Context, userID string) ([]domain.Link, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Link
	for _, l := range r.s.links {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *inMemoryLinkRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for key, l := range r.s.links {
		if l.UserID == userID {
			delete(r.s.links, key)
		}
	}
	return nil
}

// --- Transaction Repo ---

type inMemoryTransactionRepo struct{ s *memStore }

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextTxID++
	t.ID = r.s.nextTxID
	r.s.txs = append(r.s.txs, *t)
	return nil
}

func (r *inMemoryTransactionRepo) ListByPair(ctx context.Context, merchantID, userID string, limit int) ([]domain.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Transaction
	for i := len(r.s.txs) - 1; i >= 0 && len(out) < limit; i-- {
		t := r.s.txs[i]
		if t.MerchantID == merchantID && t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Transaction
	for i := len(r.s.txs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.txs[i].UserID == userID {
			out = append(out, r.s.txs[i])
		}
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.txs[:0]
	for _, t := range r.s.txs {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	r.s.txs = kept
	return nil
}

// --- Request Repo ---

type inMemoryRequestRepo struct{ s *memStore }

func (r *inMemoryRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.requests {
		if existing.MerchantID == req.MerchantID &&
			existing.UserID == req.UserID &&
			existing.Kind == req.Kind &&
			existing.Status == domain.RequestStatusPending {
			return ports.ErrDuplicate
		}
	}
	r.s.nextReqID++
	cp := *req
	cp.ID = r.s.nextReqID
	r.s.requests[cp.ID] = &cp
	req.ID = cp.ID
	return nil
}

func (r *inMemoryRequestRepo) GetByID(ctx context.Context, id int64) (*domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok {
		return nil, nil
	}
	cp := *req
	return &cp, nil
}

func (r *inMemoryRequestRepo) MarkResolved(ctx context.Context, tx pgx.Tx, id int64, status domain.RequestStatus) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	req, ok := r.s.requests[id]
	if !ok || req.Status != domain.RequestStatusPending {
		return false, nil
	}
	now := time.Now()
	req.Status = status
	req.RespondedAt = &now
	return true, nil
}

func (r *inMemoryRequestRepo) ListPendingByMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Request
	for _, req := range r.s.requests {
		if req.MerchantID == merchantID && req.Kind == kind && req.Status == domain.RequestStatusPending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *inMemoryRequestRepo) ListByMerchant(ctx context.Context, merchantID string, kind domain.RequestKind) ([]domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Request
	for _, req := range r.s.requests {
		if req.MerchantID == merchantID && req.Kind == kind {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *inMemoryRequestRepo) ListByUser(ctx context.Context, userID string, kind domain.RequestKind) ([]domain.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Request
	for _, req := range r.s.requests {
		if req.UserID == userID && req.Kind == kind {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *inMemoryRequestRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.requests, id)
	return nil
}

func (r *inMemoryRequestRepo) DeleteTerminalOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, req := range r.s.requests {
		if req.Status != domain.RequestStatusPending && req.RespondedAt != nil && req.RespondedAt.Before(cutoff) {
			delete(r.s.requests, id)
			n++
		}
	}
	return n, nil
}

func (r *inMemoryRequestRepo) DeleteAllForUser(ctx context.Context, tx pgx.Tx, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, req := range r.s.requests {
		if req.UserID == userID {
			delete(r.s.requests, id)
		}
	}
	return nil
}

// --- Reminder Repo ---

type inMemoryReminderRepo struct{ s *memStore }

func (r *inMemoryReminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextRemID++
	cp := *rem
	cp.ID = r.s.nextRemID
	r.s.reminders[cp.ID] = &cp
	rem.ID = cp.ID
	return nil
}

func (r *inMemoryReminderRepo) GetByID(ctx context.Context, id int64) (*domain.Reminder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rem, ok := r.s.reminders[id]
	if !ok {
		return nil, nil
	}
	cp := *rem
	return &cp, nil
}

func (r *inMemoryReminderRepo) Update(ctx context.Context, id int64, upd domain.ReminderUpdate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rem, ok := r.s.reminders[id]
	if !ok {
		return fmt.Errorf("reminder not found")
	}
	if upd.Message != nil {
		rem.Message = *upd.Message
	}
	if upd.ReminderDate != nil {
		rem.ReminderDate = *upd.ReminderDate
	}
	if upd.Status != nil {
		rem.Status = *upd.Status
	}
	return nil
}

func (r *inMemoryReminderRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.reminders, id)
	return nil
}

func (r *inMemoryReminderRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Reminder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Reminder
	for _, rem := range r.s.reminders {
		if rem.UserID == userID && rem.Status == domain.ReminderStatusActive {
			out = append(out, *rem)
		}
	}
	return out, nil
}

func (r *inMemoryReminderRepo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, rem := range r.s.reminders {
		if rem.Status == domain.ReminderStatusActive && rem.ReminderDate.Before(now) {
			rem.Status = domain.ReminderStatusExpired
			n++
		}
	}
	return n, nil
}

// --- Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
