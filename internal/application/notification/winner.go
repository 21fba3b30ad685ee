package notification

import (
	"context"
	"time"

	sharedvo "raffle/internal/domain/shared/valueobjects"
)

// WinnerContact is where a winner gets told.
type WinnerContact struct {
	ParticipantID string
	Name          string
	Email         string
}

// RaffleSummary is the draw outcome as shown to the winner.
type RaffleSummary struct {
	RaffleID            string
	Title               string
	Description         string
	PrizeName           string
	PrizeValue          sharedvo.Money
	WinningTicketNumber int64
	TotalEntries        int64
	WinChancePercent    float64
	DrawDate            time.Time
}

// WinnerNotifier delivers the winner notification. Implementations talk to
// an external provider and may be slow or fail.
type WinnerNotifier interface {
	NotifyWinner(ctx context.Context, contact WinnerContact, summary RaffleSummary) error
}

// Deduplicator keeps two processes from notifying the same raffle at once.
type Deduplicator interface {
	TryAcquire(ctx context.Context, raffleID string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, raffleID string) error
}

// Metrics counts notification outcomes.
type Metrics interface {
	WinnerNotification(status string)
}
