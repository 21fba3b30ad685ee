package notification

import (
	"context"
	"sync"
	"time"

	"raffle/internal/domain/participant"
	vo "raffle/internal/domain/raffle/valueobjects"
)

type mockNotifier struct {
	NotifyWinnerFunc func(ctx context.Context, contact WinnerContact, summary RaffleSummary) error
}

func (m *mockNotifier) NotifyWinner(ctx context.Context, contact WinnerContact, summary RaffleSummary) error {
	if m.NotifyWinnerFunc != nil {
		return m.NotifyWinnerFunc(ctx, contact, summary)
	}
	return nil
}

type mockParticipantRepository struct {
	CreateFunc  func(ctx context.Context, p *participant.Participant) error
	GetByIDFunc func(ctx context.Context, id string) (*participant.Participant, error)
}

func (m *mockParticipantRepository) Create(ctx context.Context, p *participant.Participant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
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

type mockStatusStore struct {
	mu       sync.Mutex
	statuses []vo.NotificationStatus
	recorded chan vo.NotificationStatus
}

func newMockStatusStore() *mockStatusStore {
	return &mockStatusStore{recorded: make(chan vo.NotificationStatus, 4)}
}

func (m *mockStatusStore) UpdateNotificationStatus(ctx context.Context, id string, status vo.NotificationStatus) error {
	m.mu.Lock()
	m.statuses = append(m.statuses, status)
	m.mu.Unlock()
	m.recorded <- status
	return nil
}

func (m *mockStatusStore) last() vo.NotificationStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.statuses) == 0 {
		return vo.NotificationNone
	}
	return m.statuses[len(m.statuses)-1]
}

type mockDeduplicator struct {
	TryAcquireFunc func(ctx context.Context, raffleID string, ttl time.Duration) (bool, error)
	released       []string
}

func (m *mockDeduplicator) TryAcquire(ctx context.Context, raffleID string, ttl time.Duration) (bool, error) {
	if m.TryAcquireFunc != nil {
		return m.TryAcquireFunc(ctx, raffleID, ttl)
	}
	return true, nil
}

func (m *mockDeduplicator) Release(ctx context.Context, raffleID string) error {
	m.released = append(m.released, raffleID)
	return nil
}

type mockMetrics struct {
	mu     sync.Mutex
	counts map[string]int
}

func (m *mockMetrics) WinnerNotification(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[status]++
}
