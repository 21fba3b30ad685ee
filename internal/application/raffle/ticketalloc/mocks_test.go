package ticketalloc

import (
	"context"

	"raffle/internal/domain/raffle"
)

type mockEntryRepository struct {
	MaxTicketNumberFunc func(ctx context.Context, raffleID string) (int64, error)
	TicketNumbersFunc   func(ctx context.Context, raffleID string) ([]int64, error)
}

func (m *mockEntryRepository) CreateBatch(ctx context.Context, entries []*raffle.Entry) error {
	return nil
}

func (m *mockEntryRepository) CountByRaffle(ctx context.Context, raffleID string) (int64, error) {
	return 0, nil
}

func (m *mockEntryRepository) MaxTicketNumber(ctx context.Context, raffleID string) (int64, error) {
	if m.MaxTicketNumberFunc != nil {
		return m.MaxTicketNumberFunc(ctx, raffleID)
	}
	return 0, nil
}

func (m *mockEntryRepository) TicketNumbers(ctx context.Context, raffleID string) ([]int64, error) {
	if m.TicketNumbersFunc != nil {
		return m.TicketNumbersFunc(ctx, raffleID)
	}
	return nil, nil
}

func (m *mockEntryRepository) GetByTicketNumber(ctx context.Context, raffleID string, ticketNumber int64) (*raffle.Entry, error) {
	return nil, nil
}

func (m *mockEntryRepository) GetByRank(ctx context.Context, raffleID string, rank int64) (*raffle.Entry, error) {
	return nil, nil
}

func (m *mockEntryRepository) ListByRaffle(ctx context.Context, raffleID string, filter raffle.EntryFilter) ([]*raffle.Entry, int64, error) {
	return nil, 0, nil
}

func (m *mockEntryRepository) ListByDeposit(ctx context.Context, depositID string) ([]*raffle.Entry, error) {
	return nil, nil
}

func (m *mockEntryRepository) DeleteByDeposit(ctx context.Context, depositID string) (int64, error) {
	return 0, nil
}
