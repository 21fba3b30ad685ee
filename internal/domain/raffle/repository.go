package raffle

import (
	"context"
	"time"

	vo "raffle/internal/domain/raffle/valueobjects"
)

type ListFilter struct {
	Statuses  []vo.RaffleStatus
	EndsAfter *time.Time
	Page      int
	PageSize  int
}

// Repository persists raffles. Methods resolve the transaction from ctx.
type Repository interface {
	Create(ctx context.Context, r *Raffle) error
	GetByID(ctx context.Context, id string) (*Raffle, error)
	// GetByIDForUpdate locks the raffle row for the rest of the transaction.
	// It serializes approvals, rejections and draws of the same raffle.
	GetByIDForUpdate(ctx context.Context, id string) (*Raffle, error)
	List(ctx context.Context, filter ListFilter) ([]*Raffle, int64, error)
	// UpdateStatus persists a non-draw status change (cancel).
	UpdateStatus(ctx context.Context, r *Raffle) error
	// CompleteDraw writes the draw outcome only if the raffle is not already
	// completed. It returns ErrRaffleAlreadyDrawn when no row was updated.
	CompleteDraw(ctx context.Context, r *Raffle) error
	UpdateNotificationStatus(ctx context.Context, id string, status vo.NotificationStatus) error
	// ListAwaitingNotification returns completed raffles whose notification
	// failed, or is still pending and older than pendingBefore.
	ListAwaitingNotification(ctx context.Context, pendingBefore time.Time, limit int) ([]*Raffle, error)
}

type EntryFilter struct {
	ParticipantID string
	Page          int
	PageSize      int
}

// EntryRepository persists tickets.
type EntryRepository interface {
	CreateBatch(ctx context.Context, entries []*Entry) error
	CountByRaffle(ctx context.Context, raffleID string) (int64, error)
	// MaxTicketNumber returns 0 when the raffle has no entries.
	MaxTicketNumber(ctx context.Context, raffleID string) (int64, error)
	// TicketNumbers returns every issued number of the raffle.
	TicketNumbers(ctx context.Context, raffleID string) ([]int64, error)
	// GetByTicketNumber returns nil, nil when no entry has that number.
	GetByTicketNumber(ctx context.Context, raffleID string, ticketNumber int64) (*Entry, error)
	// GetByRank returns the rank-th entry (1-based) in ascending ticket order,
	// or nil, nil when rank is out of range.
	GetByRank(ctx context.Context, raffleID string, rank int64) (*Entry, error)
	ListByRaffle(ctx context.Context, raffleID string, filter EntryFilter) ([]*Entry, int64, error)
	ListByDeposit(ctx context.Context, depositID string) ([]*Entry, error)
	DeleteByDeposit(ctx context.Context, depositID string) (int64, error)
}
