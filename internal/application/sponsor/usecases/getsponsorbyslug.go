package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"raffle/internal/application/common"
	"raffle/internal/application/sponsor/dto"
	"raffle/internal/domain/sponsor"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type GetSponsorBySlugQuery struct {
	Slug string
}

// GetSponsorBySlugUseCase resolves a sponsor from its public slug. Inactive
// sponsors are returned with Active false so links to them still resolve.
type GetSponsorBySlugUseCase struct {
	sponsorRepo sponsor.Repository
	logger      logger.Interface
}

func NewGetSponsorBySlugUseCase(sponsorRepo sponsor.Repository, logger logger.Interface) *GetSponsorBySlugUseCase {
	return &GetSponsorBySlugUseCase{
		sponsorRepo: sponsorRepo,
		logger:      logger,
	}
}

func (uc *GetSponsorBySlugUseCase) Execute(ctx context.Context, query GetSponsorBySlugQuery) (*dto.SponsorDTO, error) {
	slug := strings.ToLower(strings.TrimSpace(query.Slug))
	if slug == "" {
		return nil, errors.NewValidationError("sponsor slug is required")
	}

	s, err := uc.sponsorRepo.GetBySlug(ctx, slug)
	if err != nil {
		if !stderrors.Is(err, sponsor.ErrSponsorNotFound) {
			uc.logger.Errorw("failed to get sponsor", "slug", slug, "error", err)
		}
		return nil, common.MapDomainError(err, "failed to get sponsor")
	}

	return dto.ToSponsorDTO(s), nil
}
