package usecases

import (
	"context"

	"raffle/internal/application/raffle/dto"
	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
)

type CreateRaffleExecutor interface {
	Execute(ctx context.Context, cmd CreateRaffleCommand) (*dto.RaffleDTO, error)
}

type GetRaffleExecutor interface {
	Execute(ctx context.Context, query GetRaffleQuery) (*dto.RaffleDTO, error)
}

type ListRafflesExecutor interface {
	Execute(ctx context.Context, query ListRafflesQuery) (*ListRafflesResult, error)
}

type ListEntriesExecutor interface {
	Execute(ctx context.Context, query ListEntriesQuery) (*ListEntriesResult, error)
}

type CancelRaffleExecutor interface {
	Execute(ctx context.Context, cmd CancelRaffleCommand) (*dto.RaffleDTO, error)
}

type DrawRaffleExecutor interface {
	Execute(ctx context.Context, cmd DrawRaffleCommand) (*dto.DrawResultDTO, error)
}

// WinnerDispatcher delivers the winner notification outside the draw
// transaction.
type WinnerDispatcher interface {
	Dispatch(ctx context.Context, r *raffle.Raffle) vo.NotificationStatus
	Send(ctx context.Context, r *raffle.Raffle) error
}

// DrawMetrics counts draw attempts by result.
type DrawMetrics interface {
	Draw(result string)
}

type nopDrawMetrics struct{}

func (nopDrawMetrics) Draw(string) {}
