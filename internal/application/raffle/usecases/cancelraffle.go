package usecases

import (
	"context"

	"raffle/internal/application/common"
	"raffle/internal/application/raffle/dto"
	"raffle/internal/domain/raffle"
	"raffle/internal/shared/db"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type CancelRaffleCommand struct {
	RaffleID string
}

type CancelRaffleUseCase struct {
	raffleRepo raffle.Repository
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewCancelRaffleUseCase(raffleRepo raffle.Repository, txMgr db.Transactor, logger logger.Interface) *CancelRaffleUseCase {
	return &CancelRaffleUseCase{
		raffleRepo: raffleRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *CancelRaffleUseCase) Execute(ctx context.Context, cmd CancelRaffleCommand) (*dto.RaffleDTO, error) {
	uc.logger.Infow("executing cancel raffle use case", "raffle_id", cmd.RaffleID)

	if cmd.RaffleID == "" {
		return nil, errors.NewValidationError("raffle ID is required")
	}

	var cancelled *raffle.Raffle
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		r, err := uc.raffleRepo.GetByIDForUpdate(txCtx, cmd.RaffleID)
		if err != nil {
			return err
		}
		if r.Status().IsCancelled() {
			cancelled = r
			return nil
		}
		if err := r.Cancel(); err != nil {
			return err
		}
		if err := uc.raffleRepo.UpdateStatus(txCtx, r); err != nil {
			return err
		}
		cancelled = r
		return nil
	})
	if err != nil {
		uc.logger.Warnw("failed to cancel raffle", "raffle_id", cmd.RaffleID, "error", err)
		return nil, common.MapDomainError(err, "failed to cancel raffle")
	}

	uc.logger.Infow("raffle cancelled", "raffle_id", cancelled.ID())
	return dto.ToRaffleDTO(cancelled), nil
}
