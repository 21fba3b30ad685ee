package raffle

import "errors"

var (
	ErrRaffleNotFound = errors.New("raffle not found")
	// ErrRaffleAlreadyDrawn is returned when an operation would change a
	// raffle whose winner is already recorded.
	ErrRaffleAlreadyDrawn = errors.New("raffle already drawn")
	ErrRaffleCancelled    = errors.New("raffle cancelled")
	// ErrRaffleNotActive is returned for deposits outside the raffle window.
	ErrRaffleNotActive = errors.New("raffle is not accepting deposits")
	ErrNoEntries       = errors.New("raffle has no entries")
	// ErrWinningEntryNotFound means the drawn number resolved to no entry.
	// It indicates corrupted ticket numbering and must never be ignored.
	ErrWinningEntryNotFound = errors.New("winning entry not found")
	// ErrTicketAllocationExhausted is returned when sparse numbering runs out
	// of attempts before finding enough free ticket numbers.
	ErrTicketAllocationExhausted = errors.New("unable to allocate ticket numbers")
	ErrInvalidRaffle             = errors.New("invalid raffle")
)
