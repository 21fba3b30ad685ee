package usecases

import (
	"context"
	"fmt"
	"time"

	"raffle/internal/application/common"
	"raffle/internal/application/deposit/dto"
	"raffle/internal/application/raffle/ticketalloc"
	"raffle/internal/domain/deposit"
	"raffle/internal/domain/raffle"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/db"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type ApproveDepositCommand struct {
	DepositID  string
	ReviewerID string
}

// ApproveDepositUseCase turns a pending deposit into exactly QuotaCount
// entries. The raffle row is locked before the deposit row (the same order
// reject and draw use), and ticket numbers are allocated and inserted under
// that lock, so concurrent approvals of one raffle never overlap and never
// interleave with its draw.
type ApproveDepositUseCase struct {
	depositRepo deposit.Repository
	raffleRepo  raffle.Repository
	entryRepo   raffle.EntryRepository
	allocator   ticketalloc.Allocator
	txMgr       db.Transactor
	metrics     ReviewMetrics
	logger      logger.Interface
	now         func() time.Time
}

// NewApproveDepositUseCase builds the use case. metrics may be nil.
func NewApproveDepositUseCase(
	depositRepo deposit.Repository,
	raffleRepo raffle.Repository,
	entryRepo raffle.EntryRepository,
	allocator ticketalloc.Allocator,
	txMgr db.Transactor,
	metrics ReviewMetrics,
	logger logger.Interface,
) *ApproveDepositUseCase {
	if metrics == nil {
		metrics = nopReviewMetrics{}
	}
	return &ApproveDepositUseCase{
		depositRepo: depositRepo,
		raffleRepo:  raffleRepo,
		entryRepo:   entryRepo,
		allocator:   allocator,
		txMgr:       txMgr,
		metrics:     metrics,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *ApproveDepositUseCase) Execute(ctx context.Context, cmd ApproveDepositCommand) (*dto.ApproveResultDTO, error) {
	uc.logger.Infow("executing approve deposit use case",
		"deposit_id", cmd.DepositID,
		"reviewer_id", cmd.ReviewerID,
	)

	if cmd.DepositID == "" {
		return nil, errors.NewValidationError("deposit ID is required")
	}

	var (
		approved *deposit.Deposit
		numbers  []int64
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		d, r, err := lockDepositAndRaffle(txCtx, uc.depositRepo, uc.raffleRepo, cmd.DepositID)
		if err != nil {
			return err
		}
		if err := r.EnsureOpenForEntries(); err != nil {
			return err
		}
		if d.QuotaCount() < 1 {
			return deposit.ErrAmountBelowMinimum
		}

		now := uc.now()
		if err := d.Approve(cmd.ReviewerID, now); err != nil {
			return err
		}

		numbers, err = uc.allocator.Allocate(txCtx, r, d.QuotaCount())
		if err != nil {
			return err
		}
		if len(numbers) != d.QuotaCount() {
			return fmt.Errorf("allocator returned %d ticket numbers for %d quotas", len(numbers), d.QuotaCount())
		}

		entries := make([]*raffle.Entry, len(numbers))
		for i, n := range numbers {
			e, err := raffle.NewEntry(r.ID(), d.ParticipantID(), d.ID(), n, now)
			if err != nil {
				return err
			}
			entries[i] = e
		}
		if err := uc.entryRepo.CreateBatch(txCtx, entries); err != nil {
			return err
		}
		if err := uc.depositRepo.UpdateReview(txCtx, d); err != nil {
			return err
		}

		approved = d
		return nil
	})
	if err != nil {
		uc.logger.Warnw("deposit approval failed", "deposit_id", cmd.DepositID, "error", err)
		return nil, common.MapDomainError(err, "failed to approve deposit")
	}

	uc.metrics.DepositApproved(len(numbers))
	uc.logger.Infow("deposit approved",
		"deposit_id", approved.ID(),
		"raffle_id", approved.RaffleID(),
		"quota_count", approved.QuotaCount(),
		"first_ticket", numbers[0],
	)

	return &dto.ApproveResultDTO{
		DepositID:     approved.ID(),
		Status:        approved.Status().String(),
		QuotaCount:    approved.QuotaCount(),
		TicketNumbers: numbers,
	}, nil
}

// lockDepositAndRaffle locks the owning raffle, then re-reads the deposit
// under its own lock.
func lockDepositAndRaffle(
	ctx context.Context,
	depositRepo deposit.Repository,
	raffleRepo raffle.Repository,
	depositID string,
) (*deposit.Deposit, *raffle.Raffle, error) {
	unlocked, err := depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return nil, nil, err
	}
	r, err := raffleRepo.GetByIDForUpdate(ctx, unlocked.RaffleID())
	if err != nil {
		return nil, nil, err
	}
	d, err := depositRepo.GetByIDForUpdate(ctx, depositID)
	if err != nil {
		return nil, nil, err
	}
	return d, r, nil
}
