package usecases

import (
	"context"

	"raffle/internal/domain/sponsor"
)

type mockSponsorRepository struct {
	GetBySlugFunc  func(ctx context.Context, slug string) (*sponsor.Sponsor, error)
	ListActiveFunc func(ctx context.Context) ([]*sponsor.Sponsor, error)
}

func (m *mockSponsorRepository) Create(ctx context.Context, s *sponsor.Sponsor) error { return nil }

func (m *mockSponsorRepository) GetByID(ctx context.Context, id string) (*sponsor.Sponsor, error) {
	return nil, sponsor.ErrSponsorNotFound
}

func (m *mockSponsorRepository) GetBySlug(ctx context.Context, slug string) (*sponsor.Sponsor, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, sponsor.ErrSponsorNotFound
}

func (m *mockSponsorRepository) ListActive(ctx context.Context) ([]*sponsor.Sponsor, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	return nil, nil
}
