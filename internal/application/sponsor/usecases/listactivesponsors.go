package usecases

import (
	"context"

	"raffle/internal/application/sponsor/dto"
	"raffle/internal/domain/sponsor"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

// ListActiveSponsorsUseCase lists the sponsors a participant can deposit
// through, ordered by name.
type ListActiveSponsorsUseCase struct {
	sponsorRepo sponsor.Repository
	logger      logger.Interface
}

func NewListActiveSponsorsUseCase(sponsorRepo sponsor.Repository, logger logger.Interface) *ListActiveSponsorsUseCase {
	return &ListActiveSponsorsUseCase{
		sponsorRepo: sponsorRepo,
		logger:      logger,
	}
}

func (uc *ListActiveSponsorsUseCase) Execute(ctx context.Context) ([]*dto.SponsorDTO, error) {
	sponsors, err := uc.sponsorRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active sponsors", "error", err)
		return nil, errors.NewInternalError("failed to list sponsors").WithCause(err)
	}
	return dto.ToSponsorDTOs(sponsors), nil
}
