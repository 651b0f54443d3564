package dto

import (
	"time"

	"github.com/Bhatia06/MEWallet/internal/core/domain"
)

// RegisterMerchantRequest is the request body for merchant registration.
type RegisterMerchantRequest struct {
	StoreName string `json:"store_name" binding:"required,min=1,max=100"`
	Phone     string `json:"phone" binding:"required,min=7,max=15"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
}

// MerchantLoginRequest is the request body for merchant login.
type MerchantLoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest is the request body for user registration.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// UserLoginRequest is the request body for user login.
type UserLoginRequest struct {
	UserID   string `json:"user_id" binding:"required,wallet_id"`
	Password string `json:"password" binding:"required"`
}

// RegisterMerchantResponse is returned on successful merchant registration.
type RegisterMerchantResponse struct {
	MerchantID string `json:"merchant_id"`
	StoreName  string `json:"store_name"`
}

// RegisterUserResponse is returned on successful user registration.
type RegisterUserResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// CreateLinkRequest is the request body for direct link creation. The
// merchant side comes from the caller's token.
type CreateLinkRequest struct {
	UserID         string `json:"user_id" binding:"required,wallet_id"`
	PIN            string `json:"pin" binding:"required,wallet_pin"`
	InitialBalance int64  `json:"initial_balance" binding:"gte=0"`
}

// BalanceMutationRequest is the request body for add-balance and purchase.
type BalanceMutationRequest struct {
	MerchantID string `json:"merchant_id" binding:"required,wallet_id"`
	UserID     string `json:"user_id" binding:"required,wallet_id"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	PIN        string `json:"pin" binding:"required,wallet_pin"`
}

// DelinkRequest is the request body for removing a link.
type DelinkRequest struct {
	MerchantID string `json:"merchant_id" binding:"required,wallet_id"`
	UserID     string `json:"user_id" binding:"required,wallet_id"`
	PIN        string `json:"pin" binding:"required,wallet_pin"`
}

// CreateLinkWorkflowRequest is the request body for a user-initiated link request.
type CreateLinkWorkflowRequest struct {
	MerchantID string `json:"merchant_id" binding:"required,wallet_id"`
	PIN        string `json:"pin" binding:"required,wallet_pin"`
}

// CreateBalanceWorkflowRequest is the request body for a user-initiated
// balance top-up request.
type CreateBalanceWorkflowRequest struct {
	MerchantID string `json:"merchant_id" binding:"required,wallet_id"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	PIN        string `json:"pin" binding:"required,wallet_pin"`
}

// CreatePayWorkflowRequest is the request body for a merchant-initiated
// payment request.
type CreatePayWorkflowRequest struct {
	UserID      string  `json:"user_id" binding:"required,wallet_id"`
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
}

// AcceptPayRequest is the request body for a user accepting a payment request.
type AcceptPayRequest struct {
	RequestID int64  `json:"request_id" binding:"required,gt=0"`
	PIN       string `json:"pin" binding:"required,wallet_pin"`
}

// CreateReminderRequest is the request body for reminder creation.
type CreateReminderRequest struct {
	UserID       string    `json:"user_id" binding:"required,wallet_id"`
	Message      string    `json:"message" binding:"required,min=1,max=255"`
	ReminderDate time.Time `json:"reminder_date" binding:"required"`
}

// UpdateReminderRequest carries a partial reminder update. Omitted fields are
// left untouched.
type UpdateReminderRequest struct {
	Message      *string    `json:"message,omitempty" binding:"omitempty,min=1,max=255"`
	ReminderDate *time.Time `json:"reminder_date,omitempty"`
}

// SendOTPRequest is the request body for issuing a verification code.
type SendOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=7,max=15"`
}

// VerifyOTPRequest is the request body for verifying a code.
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=7,max=15"`
	Code  string `json:"code" binding:"required,len=6"`
}

// LinkResponse is the response body for link state.
type LinkResponse struct {
	ID         int64  `json:"id"`
	MerchantID string `json:"merchant_id"`
	UserID     string `json:"user_id"`
	Balance    int64  `json:"balance"`
	CreatedAt  string `json:"created_at"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	MerchantID string `json:"merchant_id"`
	UserID     string `json:"user_id"`
	Balance    int64  `json:"balance"`
}

// TransactionResponse is the response body for ledger entries.
type TransactionResponse struct {
	ID           int64  `json:"id"`
	MerchantID   string `json:"merchant_id"`
	UserID       string `json:"user_id"`
	Amount       int64  `json:"amount"`
	Type         string `json:"type"`
	BalanceAfter int64  `json:"balance_after"`
	CreatedAt    string `json:"created_at"`
}

// WorkflowRequestResponse is the response body for pending-request state.
type WorkflowRequestResponse struct {
	ID          int64   `json:"id"`
	Kind        string  `json:"kind"`
	MerchantID  string  `json:"merchant_id"`
	UserID      string  `json:"user_id"`
	Amount      *int64  `json:"amount,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	RespondedAt *string `json:"responded_at,omitempty"`
}

// ReminderResponse is the response body for reminders.
type ReminderResponse struct {
	ID           int64  `json:"id"`
	MerchantID   string `json:"merchant_id"`
	UserID       string `json:"user_id"`
	Message      string `json:"message"`
	ReminderDate string `json:"reminder_date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

// FromLink maps a domain link to its response shape. The PIN hash never
// leaves the server.
func FromLink(l *domain.Link) LinkResponse {
	return LinkResponse{
		ID:         l.ID,
		MerchantID: l.MerchantID,
		UserID:     l.UserID,
		Balance:    l.Balance,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromLinks maps a slice of links.
func FromLinks(links []domain.Link) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for i := range links {
		out = append(out, FromLink(&links[i]))
	}
	return out
}

// FromTransaction maps a domain transaction to its response shape.
func FromTransaction(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           tx.ID,
		MerchantID:   tx.MerchantID,
		UserID:       tx.UserID,
		Amount:       tx.Amount,
		Type:         string(tx.Type),
		BalanceAfter: tx.BalanceAfter,
		CreatedAt:    tx.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromTransactions maps a slice of transactions.
func FromTransactions(txs []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, FromTransaction(&txs[i]))
	}
	return out
}

// FromRequest maps a domain workflow request to its response shape. The
// proposed PIN is write-only and never echoed back.
func FromRequest(r *domain.Request) WorkflowRequestResponse {
	resp := WorkflowRequestResponse{
		ID:          r.ID,
		Kind:        string(r.Kind),
		MerchantID:  r.MerchantID,
		UserID:      r.UserID,
		Amount:      r.Amount,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.RespondedAt != nil {
		s := r.RespondedAt.UTC().Format(time.RFC3339)
		resp.RespondedAt = &s
	}
	return resp
}

// FromRequests maps a slice of workflow requests.
func FromRequests(requests []domain.Request) []WorkflowRequestResponse {
	out := make([]WorkflowRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, FromRequest(&requests[i]))
	}
	return out
}

// FromReminder maps a domain reminder to its response shape.
func FromReminder(r *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:           r.ID,
		MerchantID:   r.MerchantID,
		UserID:       r.UserID,
		Message:      r.Message,
		ReminderDate: r.ReminderDate.UTC().Format(time.RFC3339),
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromReminders maps a slice of reminders.
func FromReminders(reminders []domain.Reminder) []ReminderResponse {
	out := make([]ReminderResponse, 0, len(reminders))
	for i := range reminders {
		out = append(out, FromReminder(&reminders[i]))
	}
	return out
}
