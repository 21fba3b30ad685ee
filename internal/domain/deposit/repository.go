package deposit

import (
	"context"
	"time"

	vo "raffle/internal/domain/deposit/valueobjects"
)

// Filter narrows admin deposit listings. Zero values mean "any".
type Filter struct {
	Status        vo.DepositStatus
	ParticipantID string
	RaffleID      string
	SponsorID     string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	Page          int
	PageSize      int
}

type Repository interface {
	Create(ctx context.Context, d *Deposit) error
	GetByID(ctx context.Context, id string) (*Deposit, error)
	// GetByIDForUpdate locks the deposit row for the rest of the transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*Deposit, error)
	// UpdateReview persists a status transition, guarded by version.
	UpdateReview(ctx context.Context, d *Deposit) error
	List(ctx context.Context, filter Filter) ([]*Deposit, int64, error)
}
