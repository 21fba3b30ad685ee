package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle/internal/domain/deposit"
	"raffle/internal/domain/raffle"
	apperrors "raffle/internal/shared/errors"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		reason   string
	}{
		{"already drawn", raffle.ErrRaffleAlreadyDrawn, http.StatusConflict, ReasonRaffleAlreadyDrawn},
		{"wrapped cancelled", fmt.Errorf("approve: %w", raffle.ErrRaffleCancelled), http.StatusConflict, ReasonRaffleCancelled},
		{"no entries", raffle.ErrNoEntries, http.StatusConflict, ReasonNoEntries},
		{"winning entry missing", raffle.ErrWinningEntryNotFound, http.StatusInternalServerError, ReasonWinningEntryNotFound},
		{"exhausted", raffle.ErrTicketAllocationExhausted, http.StatusInternalServerError, ReasonTicketAllocationExhausted},
		{"deposit state", deposit.ErrInvalidDepositState, http.StatusConflict, ReasonInvalidDepositState},
		{"below minimum", deposit.ErrAmountBelowMinimum, http.StatusBadRequest, ReasonAmountBelowMinimum},
		{"deposit not found", deposit.ErrDepositNotFound, http.StatusNotFound, ReasonDepositNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapDomainError(tt.err, "fallback")
			appErr := apperrors.GetAppError(mapped)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.reason, appErr.Reason)
			assert.True(t, errors.Is(mapped, tt.err) || errors.Is(mapped, errors.Unwrap(tt.err)))
		})
	}
}

func TestMapDomainError_KeepsValidationDetail(t *testing.T) {
	err := fmt.Errorf("%w: end date must be after start date", raffle.ErrInvalidRaffle)
	appErr := apperrors.GetAppError(MapDomainError(err, "fallback"))
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "end date must be after start date")
}

func TestMapDomainError_Passthrough(t *testing.T) {
	assert.NoError(t, MapDomainError(nil, "x"))

	original := apperrors.NewForbiddenError("nope")
	assert.Same(t, original, MapDomainError(original, "x"))

	unknown := errors.New("connection reset")
	mapped := MapDomainError(unknown, "failed to approve deposit")
	appErr := apperrors.GetAppError(mapped)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
	assert.Equal(t, "failed to approve deposit", appErr.Message)
	assert.ErrorIs(t, mapped, unknown)
}
