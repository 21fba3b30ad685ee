package usecases

import (
	"context"
	"time"

	"raffle/internal/application/common"
	"raffle/internal/application/raffle/dto"
	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/markdown"
)

// Settings carries the configured quota value and default numbering. They
// are copied onto each raffle at creation and never read again for it.
type Settings struct {
	QuotaValue       sharedvo.Money
	DefaultNumbering vo.NumberingStrategy
}

type CreateRaffleCommand struct {
	Title           string
	Description     string
	PrizeName       string
	PrizeImageURL   string
	PrizeValueCents int64
	Numbering       string
	StartDate       time.Time
	EndDate         time.Time
}

type CreateRaffleUseCase struct {
	raffleRepo raffle.Repository
	renderer   markdown.Renderer
	settings   Settings
	logger     logger.Interface
}

func NewCreateRaffleUseCase(
	raffleRepo raffle.Repository,
	renderer markdown.Renderer,
	settings Settings,
	logger logger.Interface,
) *CreateRaffleUseCase {
	return &CreateRaffleUseCase{
		raffleRepo: raffleRepo,
		renderer:   renderer,
		settings:   settings,
		logger:     logger,
	}
}

func (uc *CreateRaffleUseCase) Execute(ctx context.Context, cmd CreateRaffleCommand) (*dto.RaffleDTO, error) {
	uc.logger.Infow("executing create raffle use case",
		"title", cmd.Title,
		"numbering", cmd.Numbering,
	)

	numbering := uc.settings.DefaultNumbering
	if cmd.Numbering != "" {
		parsed, ok := vo.ParseNumberingStrategy(cmd.Numbering)
		if !ok {
			return nil, errors.NewValidationError("invalid numbering strategy", cmd.Numbering)
		}
		numbering = parsed
	}

	currency := uc.settings.QuotaValue.Currency()
	r, err := raffle.NewRaffle(raffle.NewRaffleParams{
		Title:         uc.renderer.PlainText(cmd.Title),
		Description:   cmd.Description,
		PrizeName:     uc.renderer.PlainText(cmd.PrizeName),
		PrizeImageURL: cmd.PrizeImageURL,
		PrizeValue:    sharedvo.NewMoney(cmd.PrizeValueCents, currency),
		QuotaValue:    uc.settings.QuotaValue,
		Numbering:     numbering,
		StartDate:     cmd.StartDate,
		EndDate:       cmd.EndDate,
	})
	if err != nil {
		uc.logger.Warnw("invalid raffle", "error", err)
		return nil, common.MapDomainError(err, "failed to create raffle")
	}

	if err := uc.raffleRepo.Create(ctx, r); err != nil {
		uc.logger.Errorw("failed to persist raffle", "error", err)
		return nil, errors.NewInternalError("failed to create raffle").WithCause(err)
	}

	uc.logger.Infow("raffle created",
		"raffle_id", r.ID(),
		"quota_value", r.QuotaValue().String(),
		"numbering", r.Numbering(),
	)

	result := dto.ToRaffleDTO(r)
	zero := int64(0)
	result.TotalEntries = &zero
	return result, nil
}
