package usecases

import (
	"context"
	"sync"
	"time"

	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
)

type mockRaffleRepository struct {
	CreateFunc                   func(ctx context.Context, r *raffle.Raffle) error
	GetByIDFunc                  func(ctx context.Context, id string) (*raffle.Raffle, error)
	GetByIDForUpdateFunc         func(ctx context.Context, id string) (*raffle.Raffle, error)
	ListFunc                     func(ctx context.Context, filter raffle.ListFilter) ([]*raffle.Raffle, int64, error)
	UpdateStatusFunc             func(ctx context.Context, r *raffle.Raffle) error
	CompleteDrawFunc             func(ctx context.Context, r *raffle.Raffle) error
	UpdateNotificationStatusFunc func(ctx context.Context, id string, status vo.NotificationStatus) error
	ListAwaitingNotificationFunc func(ctx context.Context, pendingBefore time.Time, limit int) ([]*raffle.Raffle, error)
}

func (m *mockRaffleRepository) Create(ctx context.Context, r *raffle.Raffle) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockRaffleRepository) GetByID(ctx context.Context, id string) (*raffle.Raffle, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, raffle.ErrRaffleNotFound
}

func (m *mockRaffleRepository) GetByIDForUpdate(ctx context.Context, id string) (*raffle.Raffle, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockRaffleRepository) List(ctx context.Context, filter raffle.ListFilter) ([]*raffle.Raffle, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockRaffleRepository) UpdateStatus(ctx context.Context, r *raffle.Raffle) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, r)
	}
	return nil
}

func (m *mockRaffleRepository) CompleteDraw(ctx context.Context, r *raffle.Raffle) error {
	if m.CompleteDrawFunc != nil {
		return m.CompleteDrawFunc(ctx, r)
	}
	return nil
}

func (m *mockRaffleRepository) UpdateNotificationStatus(ctx context.Context, id string, status vo.NotificationStatus) error {
	if m.UpdateNotificationStatusFunc != nil {
		return m.UpdateNotificationStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockRaffleRepository) ListAwaitingNotification(ctx context.Context, pendingBefore time.Time, limit int) ([]*raffle.Raffle, error) {
	if m.ListAwaitingNotificationFunc != nil {
		return m.ListAwaitingNotificationFunc(ctx, pendingBefore, limit)
	}
	return nil, nil
}

// mockEntryRepository serves a fixed, in-memory set of entries.
type mockEntryRepository struct {
	entries []*raffle.Entry

	CountByRaffleFunc     func(ctx context.Context, raffleID string) (int64, error)
	GetByTicketNumberFunc func(ctx context.Context, raffleID string, ticketNumber int64) (*raffle.Entry, error)
	ListByRaffleFunc      func(ctx context.Context, raffleID string, filter raffle.EntryFilter) ([]*raffle.Entry, int64, error)
}

func (m *mockEntryRepository) CreateBatch(ctx context.Context, entries []*raffle.Entry) error {
	m.entries = append(m.entries, entries...)
	return nil
}

func (m *mockEntryRepository) CountByRaffle(ctx context.Context, raffleID string) (int64, error) {
	if m.CountByRaffleFunc != nil {
		return m.CountByRaffleFunc(ctx, raffleID)
	}
	return int64(len(m.sorted(raffleID))), nil
}

func (m *mockEntryRepository) MaxTicketNumber(ctx context.Context, raffleID string) (int64, error) {
	var maxNumber int64
	for _, e := range m.sorted(raffleID) {
		maxNumber = e.TicketNumber()
	}
	return maxNumber, nil
}

func (m *mockEntryRepository) TicketNumbers(ctx context.Context, raffleID string) ([]int64, error) {
	var out []int64
	for _, e := range m.sorted(raffleID) {
		out = append(out, e.TicketNumber())
	}
	return out, nil
}

func (m *mockEntryRepository) GetByTicketNumber(ctx context.Context, raffleID string, ticketNumber int64) (*raffle.Entry, error) {
	if m.GetByTicketNumberFunc != nil {
		return m.GetByTicketNumberFunc(ctx, raffleID, ticketNumber)
	}
	for _, e := range m.sorted(raffleID) {
		if e.TicketNumber() == ticketNumber {
			return e, nil
		}
	}
	return nil, nil
}

func (m *mockEntryRepository) GetByRank(ctx context.Context, raffleID string, rank int64) (*raffle.Entry, error) {
	sorted := m.sorted(raffleID)
	if rank < 1 || rank > int64(len(sorted)) {
		return nil, nil
	}
	return sorted[rank-1], nil
}

func (m *mockEntryRepository) ListByRaffle(ctx context.Context, raffleID string, filter raffle.EntryFilter) ([]*raffle.Entry, int64, error) {
	if m.ListByRaffleFunc != nil {
		return m.ListByRaffleFunc(ctx, raffleID, filter)
	}
	sorted := m.sorted(raffleID)
	return sorted, int64(len(sorted)), nil
}

func (m *mockEntryRepository) ListByDeposit(ctx context.Context, depositID string) ([]*raffle.Entry, error) {
	return nil, nil
}

func (m *mockEntryRepository) DeleteByDeposit(ctx context.Context, depositID string) (int64, error) {
	return 0, nil
}

func (m *mockEntryRepository) sorted(raffleID string) []*raffle.Entry {
	var out []*raffle.Entry
	for _, e := range m.entries {
		if e.RaffleID() == raffleID {
			out = append(out, e)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].TicketNumber() < out[j-1].TicketNumber(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// mockTransactor runs fn directly and records whether it returned an error.
type mockTransactor struct {
	calls      int
	rolledBack int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	err := fn(ctx)
	if err != nil {
		m.rolledBack++
	}
	return err
}

type mockDispatcher struct {
	DispatchFunc func(ctx context.Context, r *raffle.Raffle) vo.NotificationStatus
	SendFunc     func(ctx context.Context, r *raffle.Raffle) error
	dispatched   []string
}

func (m *mockDispatcher) Dispatch(ctx context.Context, r *raffle.Raffle) vo.NotificationStatus {
	m.dispatched = append(m.dispatched, r.ID())
	if m.DispatchFunc != nil {
		return m.DispatchFunc(ctx, r)
	}
	return vo.NotificationSent
}

func (m *mockDispatcher) Send(ctx context.Context, r *raffle.Raffle) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, r)
	}
	return nil
}

type mockDrawMetrics struct {
	mu      sync.Mutex
	results []string
}

func (m *mockDrawMetrics) Draw(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}
