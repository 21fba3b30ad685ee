// Package common holds helpers shared by the application use cases.
package common

import (
	"errors"

	"raffle/internal/domain/deposit"
	"raffle/internal/domain/participant"
	"raffle/internal/domain/raffle"
	"raffle/internal/domain/sponsor"
	apperrors "raffle/internal/shared/errors"
)

// Machine readable reasons attached to AppError.
const (
	ReasonRaffleNotFound            = "raffle_not_found"
	ReasonRaffleAlreadyDrawn        = "raffle_already_drawn"
	ReasonRaffleCancelled           = "raffle_cancelled"
	ReasonRaffleNotActive           = "raffle_not_active"
	ReasonNoEntries                 = "no_entries"
	ReasonWinningEntryNotFound      = "winning_entry_not_found"
	ReasonTicketAllocationExhausted = "ticket_allocation_exhausted"
	ReasonDepositNotFound           = "deposit_not_found"
	ReasonInvalidDepositState       = "invalid_deposit_state"
	ReasonAmountBelowMinimum        = "amount_below_minimum"
	ReasonSponsorNotFound           = "sponsor_not_found"
	ReasonSponsorInactive           = "sponsor_inactive"
	ReasonParticipantNotFound       = "participant_not_found"
	ReasonRateLimited               = "rate_limited"
	ReasonInvalidRaffle             = "invalid_raffle"
	ReasonInvalidDeposit            = "invalid_deposit"
)

type mapping struct {
	target error
	build  func(msg string) *apperrors.AppError
	reason string
}

var mappings = []mapping{
	{raffle.ErrRaffleNotFound, notFound, ReasonRaffleNotFound},
	{raffle.ErrRaffleAlreadyDrawn, conflict, ReasonRaffleAlreadyDrawn},
	{raffle.ErrRaffleCancelled, conflict, ReasonRaffleCancelled},
	{raffle.ErrRaffleNotActive, validation, ReasonRaffleNotActive},
	{raffle.ErrNoEntries, conflict, ReasonNoEntries},
	{raffle.ErrWinningEntryNotFound, internal, ReasonWinningEntryNotFound},
	{raffle.ErrTicketAllocationExhausted, internal, ReasonTicketAllocationExhausted},
	{raffle.ErrInvalidRaffle, validation, ReasonInvalidRaffle},
	{deposit.ErrDepositNotFound, notFound, ReasonDepositNotFound},
	{deposit.ErrInvalidDepositState, conflict, ReasonInvalidDepositState},
	{deposit.ErrAmountBelowMinimum, validation, ReasonAmountBelowMinimum},
	{deposit.ErrInvalidDeposit, validation, ReasonInvalidDeposit},
	{sponsor.ErrSponsorNotFound, notFound, ReasonSponsorNotFound},
	{sponsor.ErrSponsorInactive, validation, ReasonSponsorInactive},
	{participant.ErrParticipantNotFound, notFound, ReasonParticipantNotFound},
}

// MapDomainError converts a domain sentinel into an AppError that wraps it,
// so errors.Is keeps matching the sentinel. AppErrors pass through. Anything
// else becomes an internal error carrying fallback as its message.
func MapDomainError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if apperrors.IsAppError(err) {
		return err
	}
	for _, m := range mappings {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.target.Error()
		if m.reason == ReasonInvalidRaffle || m.reason == ReasonInvalidDeposit {
			msg = err.Error()
		}
		return m.build(msg).WithReason(m.reason).WithCause(err)
	}
	return apperrors.NewInternalError(fallback).WithCause(err)
}

func notFound(msg string) *apperrors.AppError   { return apperrors.NewNotFoundError(msg) }
func conflict(msg string) *apperrors.AppError   { return apperrors.NewConflictError(msg) }
func validation(msg string) *apperrors.AppError { return apperrors.NewValidationError(msg) }
func internal(msg string) *apperrors.AppError   { return apperrors.NewInternalError(msg) }
