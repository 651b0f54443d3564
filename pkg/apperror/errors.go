package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Ledger & Links (LNK) ----

func ErrNotFound(entity string) *AppError {
	return New("LNK_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrAlreadyLinked() *AppError {
	return New("LNK_002", "Merchant and user are already linked", http.StatusBadRequest)
}

func ErrInvalidPin() *AppError {
	return New("LNK_003", "Invalid PIN", http.StatusUnauthorized)
}

func ErrInsufficientBalance(balance int64) *AppError {
	return New("LNK_004", fmt.Sprintf("Insufficient balance. Available: %d", balance), http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("LNK_005", "Amount must be positive", http.StatusBadRequest)
}

func ErrNonZeroBalance(detail string) *AppError {
	return New("LNK_006", "Cannot delete account, clear all balances first: "+detail, http.StatusBadRequest)
}

// ---- Request Workflow (REQ) ----

func ErrDuplicatePending() *AppError {
	return New("REQ_001", "A pending request already exists with this counterparty", http.StatusBadRequest)
}

func ErrAlreadyProcessed() *AppError {
	return New("REQ_002", "Request has already been processed", http.StatusBadRequest)
}

// ---- Authentication & Access (AUTH) ----

// ErrInvalidCredentials is deliberately generic to avoid account enumeration.
func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New("AUTH_003", "You do not have access to this resource", http.StatusForbidden)
}

func ErrAlreadyExists(entity string) *AppError {
	return New("AUTH_004", fmt.Sprintf("%s already exists", entity), http.StatusConflict)
}

func ErrInvalidOTP() *AppError {
	return New("AUTH_005", "Invalid or expired OTP", http.StatusUnauthorized)
}

// ---- Reminders (RMD) ----

func ErrReminderDatePast() *AppError {
	return New("RMD_001", "Reminder date must be in the future", http.StatusBadRequest)
}

func ErrReminderNotEligible() *AppError {
	return New("RMD_002", "Reminders can only be created for links with negative balance", http.StatusBadRequest)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
