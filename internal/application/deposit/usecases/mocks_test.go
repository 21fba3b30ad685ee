package usecases

import (
	"context"

	"raffle/internal/domain/deposit"
	"raffle/internal/domain/participant"
	"raffle/internal/domain/raffle"
	"raffle/internal/domain/sponsor"
)

type mockDepositRepository struct {
	CreateFunc           func(ctx context.Context, d *deposit.Deposit) error
	GetByIDFunc          func(ctx context.Context, id string) (*deposit.Deposit, error)
	GetByIDForUpdateFunc func(ctx context.Context, id string) (*deposit.Deposit, error)
	UpdateReviewFunc     func(ctx context.Context, d *deposit.Deposit) error
	ListFunc             func(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, int64, error)
}

func (m *mockDepositRepository) Create(ctx context.Context, d *deposit.Deposit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, d)
	}
	return nil
}

func (m *mockDepositRepository) GetByID(ctx context.Context, id string) (*deposit.Deposit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, deposit.ErrDepositNotFound
}

func (m *mockDepositRepository) GetByIDForUpdate(ctx context.Context, id string) (*deposit.Deposit, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *mockDepositRepository) UpdateReview(ctx context.Context, d *deposit.Deposit) error {
	if m.UpdateReviewFunc != nil {
		return m.UpdateReviewFunc(ctx, d)
	}
	return nil
}

func (m *mockDepositRepository) List(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockRaffleRepository struct {
	raffle.Repository
	GetByIDFunc func(ctx context.Context, id string) (*raffle.Raffle, error)
}

func (m *mockRaffleRepository) GetByID(ctx context.Context, id string) (*raffle.Raffle, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, raffle.ErrRaffleNotFound
}

func (m *mockRaffleRepository) GetByIDForUpdate(ctx context.Context, id string) (*raffle.Raffle, error) {
	return m.GetByID(ctx, id)
}

type mockEntryRepository struct {
	raffle.EntryRepository
	created             []*raffle.Entry
	CreateBatchFunc     func(ctx context.Context, entries []*raffle.Entry) error
	DeleteByDepositFunc func(ctx context.Context, depositID string) (int64, error)
	ListByDepositFunc   func(ctx context.Context, depositID string) ([]*raffle.Entry, error)
}

func (m *mockEntryRepository) CreateBatch(ctx context.Context, entries []*raffle.Entry) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, entries)
	}
	m.created = append(m.created, entries...)
	return nil
}

func (m *mockEntryRepository) DeleteByDeposit(ctx context.Context, depositID string) (int64, error) {
	if m.DeleteByDepositFunc != nil {
		return m.DeleteByDepositFunc(ctx, depositID)
	}
	return 0, nil
}

func (m *mockEntryRepository) ListByDeposit(ctx context.Context, depositID string) ([]*raffle.Entry, error) {
	if m.ListByDepositFunc != nil {
		return m.ListByDepositFunc(ctx, depositID)
	}
	return nil, nil
}

type mockAllocator struct {
	AllocateFunc func(ctx context.Context, r *raffle.Raffle, count int) ([]int64, error)
	calls        int
}

func (m *mockAllocator) Allocate(ctx context.Context, r *raffle.Raffle, count int) ([]int64, error) {
	m.calls++
	if m.AllocateFunc != nil {
		return m.AllocateFunc(ctx, r, count)
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(i + 1)
	}
	return out, nil
}

type mockSponsorRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*sponsor.Sponsor, error)
}

func (m *mockSponsorRepository) Create(ctx context.Context, s *sponsor.Sponsor) error { return nil }

func (m *mockSponsorRepository) GetByID(ctx context.Context, id string) (*sponsor.Sponsor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, sponsor.ErrSponsorNotFound
}

func (m *mockSponsorRepository) GetBySlug(ctx context.Context, slug string) (*sponsor.Sponsor, error) {
	return nil, sponsor.ErrSponsorNotFound
}

func (m *mockSponsorRepository) ListActive(ctx context.Context) ([]*sponsor.Sponsor, error) {
	return nil, nil
}

type mockParticipantRepository struct {
	GetByIDFunc func(ctx context.Context, id string) (*participant.Participant, error)
}

func (m *mockParticipantRepository) Create(ctx context.Context, p *participant.Participant) error {
	return nil
}

func (m *mockParticipantRepository) GetByID(ctx context.Context, id string) (*participant.Participant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, participant.ErrParticipantNotFound
}

func (m *mockParticipantRepository) GetByEmail(ctx context.Context, email string) (*participant.Participant, error) {
	return nil, participant.ErrParticipantNotFound
}

type mockLimiter struct {
	AllowFunc func(ctx context.Context, participantID string) (bool, error)
}

func (m *mockLimiter) Allow(ctx context.Context, participantID string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, participantID)
	}
	return true, nil
}

type mockTransactor struct {
	rolledBack int
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err != nil {
		m.rolledBack++
	}
	return err
}

type mockReviewMetrics struct {
	approvedTickets int
	rejected        int
}

func (m *mockReviewMetrics) DepositApproved(tickets int) { m.approvedTickets += tickets }
func (m *mockReviewMetrics) DepositRejected()            { m.rejected++ }
