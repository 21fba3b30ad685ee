package usecases

import (
	"context"
	"strings"
	"time"

	"raffle/internal/application/common"
	"raffle/internal/application/deposit/dto"
	"raffle/internal/domain/deposit"
	"raffle/internal/domain/raffle"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/db"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

const maxRejectionReasonLength = 500

type RejectDepositCommand struct {
	DepositID  string
	ReviewerID string
	Reason     string
}

// RejectDepositUseCase rejects a pending or approved deposit and deletes its
// entries in the same transaction. An approved deposit of a drawn raffle
// can no longer be rejected: its entries took part in the draw.
type RejectDepositUseCase struct {
	depositRepo deposit.Repository
	raffleRepo  raffle.Repository
	entryRepo   raffle.EntryRepository
	txMgr       db.Transactor
	metrics     ReviewMetrics
	logger      logger.Interface
	now         func() time.Time
}

// NewRejectDepositUseCase builds the use case. metrics may be nil.
func NewRejectDepositUseCase(
	depositRepo deposit.Repository,
	raffleRepo raffle.Repository,
	entryRepo raffle.EntryRepository,
	txMgr db.Transactor,
	metrics ReviewMetrics,
	logger logger.Interface,
) *RejectDepositUseCase {
	if metrics == nil {
		metrics = nopReviewMetrics{}
	}
	return &RejectDepositUseCase{
		depositRepo: depositRepo,
		raffleRepo:  raffleRepo,
		entryRepo:   entryRepo,
		txMgr:       txMgr,
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *RejectDepositUseCase) Execute(ctx context.Context, cmd RejectDepositCommand) (*dto.RejectResultDTO, error) {
	uc.logger.Infow("executing reject deposit use case",
		"deposit_id", cmd.DepositID,
		"reviewer_id", cmd.ReviewerID,
	)

	if cmd.DepositID == "" {
		return nil, errors.NewValidationError("deposit ID is required")
	}
	if len(strings.TrimSpace(cmd.Reason)) > maxRejectionReasonLength {
		return nil, errors.NewValidationError("rejection reason is too long")
	}

	var (
		rejected    *deposit.Deposit
		removed     int64
		wasApproved bool
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		d, r, err := lockDepositAndRaffle(txCtx, uc.depositRepo, uc.raffleRepo, cmd.DepositID)
		if err != nil {
			return err
		}
		if d.Status().IsApproved() && r.Status().IsCompleted() {
			return raffle.ErrRaffleAlreadyDrawn
		}

		wasApproved, err = d.Reject(cmd.ReviewerID, cmd.Reason, uc.now())
		if err != nil {
			return err
		}

		removed, err = uc.entryRepo.DeleteByDeposit(txCtx, d.ID())
		if err != nil {
			return err
		}
		if !wasApproved && removed > 0 {
			uc.logger.Warnw("pending deposit owned entries, removed them",
				"deposit_id", d.ID(),
				"removed_entries", removed,
			)
		}

		if err := uc.depositRepo.UpdateReview(txCtx, d); err != nil {
			return err
		}

		rejected = d
		return nil
	})
	if err != nil {
		uc.logger.Warnw("deposit rejection failed", "deposit_id", cmd.DepositID, "error", err)
		return nil, common.MapDomainError(err, "failed to reject deposit")
	}

	uc.metrics.DepositRejected()
	uc.logger.Infow("deposit rejected",
		"deposit_id", rejected.ID(),
		"raffle_id", rejected.RaffleID(),
		"was_approved", wasApproved,
		"removed_entries", removed,
	)

	return &dto.RejectResultDTO{
		DepositID:      rejected.ID(),
		Status:         rejected.Status().String(),
		RemovedEntries: removed,
	}, nil
}
