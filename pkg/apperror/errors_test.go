package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("LNK_003", "Invalid PIN", http.StatusUnauthorized)
	assert.Equal(t, "[LNK_003] Invalid PIN", e.Error())

	wrapped := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, errors.New("pg down"))
	assert.Contains(t, wrapped.Error(), "pg down")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	e := InternalError(fmt.Errorf("query link: %w", inner))

	assert.True(t, errors.Is(e, inner))

	var appErr *AppError
	require.True(t, errors.As(error(e), &appErr))
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestErrorConstructors_Statuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"not found", ErrNotFound("link"), http.StatusNotFound},
		{"already linked", ErrAlreadyLinked(), http.StatusBadRequest},
		{"invalid pin", ErrInvalidPin(), http.StatusUnauthorized},
		{"insufficient balance", ErrInsufficientBalance(150), http.StatusBadRequest},
		{"duplicate pending", ErrDuplicatePending(), http.StatusBadRequest},
		{"already processed", ErrAlreadyProcessed(), http.StatusBadRequest},
		{"invalid credentials", ErrInvalidCredentials(), http.StatusUnauthorized},
		{"forbidden", ErrForbidden(), http.StatusForbidden},
		{"reminder date past", ErrReminderDatePast(), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestErrInsufficientBalance_IncludesAvailable(t *testing.T) {
	e := ErrInsufficientBalance(420)
	assert.Contains(t, e.Message, "420")
}

func TestErrInvalidCredentials_IsGeneric(t *testing.T) {
	// The login error must not reveal whether the account exists.
	e := ErrInvalidCredentials()
	assert.NotContains(t, e.Message, "user")
	assert.NotContains(t, e.Message, "merchant")
}
