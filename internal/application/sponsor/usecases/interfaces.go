package usecases

import (
	"context"

	"raffle/internal/application/sponsor/dto"
)

type ListActiveSponsorsExecutor interface {
	Execute(ctx context.Context) ([]*dto.SponsorDTO, error)
}

type GetSponsorBySlugExecutor interface {
	Execute(ctx context.Context, query GetSponsorBySlugQuery) (*dto.SponsorDTO, error)
}
