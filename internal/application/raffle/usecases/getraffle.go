package usecases

import (
	"context"

	"raffle/internal/application/common"
	"raffle/internal/application/raffle/dto"
	"raffle/internal/domain/raffle"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/markdown"
)

type GetRaffleQuery struct {
	RaffleID string
}

type GetRaffleUseCase struct {
	raffleRepo raffle.Repository
	entryRepo  raffle.EntryRepository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetRaffleUseCase(
	raffleRepo raffle.Repository,
	entryRepo raffle.EntryRepository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetRaffleUseCase {
	return &GetRaffleUseCase{
		raffleRepo: raffleRepo,
		entryRepo:  entryRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetRaffleUseCase) Execute(ctx context.Context, query GetRaffleQuery) (*dto.RaffleDTO, error) {
	if query.RaffleID == "" {
		return nil, errors.NewValidationError("raffle ID is required")
	}

	r, err := uc.raffleRepo.GetByID(ctx, query.RaffleID)
	if err != nil {
		return nil, common.MapDomainError(err, "failed to get raffle")
	}

	total, err := uc.entryRepo.CountByRaffle(ctx, r.ID())
	if err != nil {
		uc.logger.Errorw("failed to count entries", "raffle_id", r.ID(), "error", err)
		return nil, errors.NewInternalError("failed to get raffle").WithCause(err)
	}

	result := dto.ToRaffleDTO(r)
	result.TotalEntries = &total

	if r.Description() != "" {
		html, err := uc.renderer.ToHTML(r.Description())
		if err != nil {
			uc.logger.Warnw("failed to render raffle description", "raffle_id", r.ID(), "error", err)
		} else {
			result.DescriptionHTML = html
		}
	}

	return result, nil
}
