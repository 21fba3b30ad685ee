package usecases

import (
	"context"

	"raffle/internal/application/common"
	"raffle/internal/application/deposit/dto"
	"raffle/internal/domain/deposit"
	"raffle/internal/domain/raffle"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type GetDepositQuery struct {
	DepositID string
}

type GetDepositUseCase struct {
	depositRepo deposit.Repository
	entryRepo   raffle.EntryRepository
	logger      logger.Interface
}

func NewGetDepositUseCase(depositRepo deposit.Repository, entryRepo raffle.EntryRepository, logger logger.Interface) *GetDepositUseCase {
	return &GetDepositUseCase{
		depositRepo: depositRepo,
		entryRepo:   entryRepo,
		logger:      logger,
	}
}

func (uc *GetDepositUseCase) Execute(ctx context.Context, query GetDepositQuery) (*dto.DepositDTO, error) {
	if query.DepositID == "" {
		return nil, errors.NewValidationError("deposit ID is required")
	}

	d, err := uc.depositRepo.GetByID(ctx, query.DepositID)
	if err != nil {
		return nil, common.MapDomainError(err, "failed to get deposit")
	}

	result := dto.ToDepositDTO(d)
	if d.Status().IsApproved() {
		entries, err := uc.entryRepo.ListByDeposit(ctx, d.ID())
		if err != nil {
			uc.logger.Errorw("failed to load deposit tickets", "deposit_id", d.ID(), "error", err)
			return nil, errors.NewInternalError("failed to get deposit").WithCause(err)
		}
		result.TicketNumbers = make([]int64, 0, len(entries))
		for _, e := range entries {
			result.TicketNumbers = append(result.TicketNumbers, e.TicketNumber())
		}
	}

	return result, nil
}
