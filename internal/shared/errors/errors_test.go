package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("raffle already drawn")

func TestAppError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"validation", NewValidationError("bad"), http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), http.StatusNotFound},
		{"conflict", NewConflictError("taken"), http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("who"), http.StatusUnauthorized},
		{"forbidden", NewForbiddenError("no"), http.StatusForbidden},
		{"internal", NewInternalError("boom"), http.StatusInternalServerError},
		{"rate limited", NewRateLimitedError("slow down"), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestAppError_UnwrapKeepsSentinel(t *testing.T) {
	appErr := NewConflictError("raffle already drawn").
		WithReason("raffle_already_drawn").
		WithCause(errSentinel)

	wrapped := fmt.Errorf("draw failed: %w", appErr)

	assert.True(t, errors.Is(wrapped, errSentinel))
	assert.True(t, IsConflictError(wrapped))
	assert.True(t, HasReason(wrapped, "raffle_already_drawn"))
	assert.False(t, HasReason(wrapped, "no_entries"))
}

func TestAppError_ErrorString(t *testing.T) {
	assert.Equal(t, "not_found: raffle not found", NewNotFoundError("raffle not found").Error())
	assert.Equal(t, "validation_error: bad input (amount)", NewValidationError("bad input", "amount").Error())
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062: Duplicate entry '1-5' for key 'uk_entries_raffle_ticket'")))
	assert.True(t, IsDuplicateError(errors.New("ERROR: duplicate key value violates unique constraint")))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: entries.raffle_id, entries.ticket_number")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
