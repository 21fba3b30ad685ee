package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"raffle/internal/application/common"
	"raffle/internal/application/raffle/dto"
	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/db"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/rng"
)

// Draw results reported to DrawMetrics.
const (
	DrawResultSuccess      = "success"
	DrawResultAlreadyDrawn = "already_drawn"
	DrawResultNoEntries    = "no_entries"
	DrawResultCancelled    = "cancelled"
	DrawResultError        = "error"
)

type DrawRaffleCommand struct {
	RaffleID string
}

// DrawRaffleUseCase picks one winner uniformly among a raffle's entries and
// records it exactly once.
//
// The raffle row is locked for the whole transaction, so approvals and
// rejections of the same raffle wait for the draw and then see it completed.
// CompleteDraw is additionally conditional on the raffle still being active.
// A second concurrent draw therefore always ends in ErrRaffleAlreadyDrawn.
type DrawRaffleUseCase struct {
	raffleRepo raffle.Repository
	entryRepo  raffle.EntryRepository
	txMgr      db.Transactor
	src        rng.Source
	dispatcher WinnerDispatcher
	metrics    DrawMetrics
	logger     logger.Interface
	now        func() time.Time
}

// NewDrawRaffleUseCase builds the draw use case. dispatcher and metrics may
// be nil.
func NewDrawRaffleUseCase(
	raffleRepo raffle.Repository,
	entryRepo raffle.EntryRepository,
	txMgr db.Transactor,
	src rng.Source,
	dispatcher WinnerDispatcher,
	metrics DrawMetrics,
	logger logger.Interface,
) *DrawRaffleUseCase {
	if metrics == nil {
		metrics = nopDrawMetrics{}
	}
	return &DrawRaffleUseCase{
		raffleRepo: raffleRepo,
		entryRepo:  entryRepo,
		txMgr:      txMgr,
		src:        src,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *DrawRaffleUseCase) Execute(ctx context.Context, cmd DrawRaffleCommand) (*dto.DrawResultDTO, error) {
	uc.logger.Infow("executing draw raffle use case", "raffle_id", cmd.RaffleID)

	if cmd.RaffleID == "" {
		return nil, errors.NewValidationError("raffle ID is required")
	}

	var drawn *raffle.Raffle
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		r, err := uc.raffleRepo.GetByIDForUpdate(txCtx, cmd.RaffleID)
		if err != nil {
			return err
		}
		if err := r.EnsureOpenForEntries(); err != nil {
			return err
		}

		total, err := uc.entryRepo.CountByRaffle(txCtx, r.ID())
		if err != nil {
			return fmt.Errorf("failed to count entries: %w", err)
		}
		if total == 0 {
			return raffle.ErrNoEntries
		}

		winningNumber := int64(uc.src.IntN(int(total))) + 1

		winner, resolution, err := uc.resolveWinner(txCtx, r, total, winningNumber)
		if err != nil {
			return err
		}

		audit := raffle.DrawAudit{
			TotalEntries:  total,
			WinningNumber: winningNumber,
			Strategy:      r.Numbering(),
			Resolution:    resolution,
		}
		if err := r.RecordDraw(winner.ParticipantID(), winner.TicketNumber(), audit, uc.now()); err != nil {
			return err
		}
		if err := uc.raffleRepo.CompleteDraw(txCtx, r); err != nil {
			return err
		}

		drawn = r
		return nil
	})
	if err != nil {
		result := drawResultOf(err)
		uc.metrics.Draw(result)
		if result == DrawResultError {
			uc.logger.Errorw("draw failed", "raffle_id", cmd.RaffleID, "error", err)
		} else {
			uc.logger.Warnw("draw refused", "raffle_id", cmd.RaffleID, "reason", result)
		}
		return nil, common.MapDomainError(err, "failed to draw raffle")
	}
	uc.metrics.Draw(DrawResultSuccess)

	audit := drawn.DrawAudit()
	uc.logger.Infow("raffle drawn",
		"raffle_id", drawn.ID(),
		"winner_id", *drawn.WinnerID(),
		"winning_ticket_number", *drawn.WinningTicketNumber(),
		"total_entries", audit.TotalEntries,
		"winning_number", audit.WinningNumber,
		"resolution", audit.Resolution,
	)

	status := vo.NotificationPending
	if uc.dispatcher != nil {
		status = uc.dispatcher.Dispatch(ctx, drawn)
	}

	return &dto.DrawResultDTO{
		RaffleID:            drawn.ID(),
		WinnerID:            *drawn.WinnerID(),
		WinningTicketNumber: *drawn.WinningTicketNumber(),
		TotalEntries:        audit.TotalEntries,
		DrawDate:            *drawn.DrawDate(),
		Notified:            status == vo.NotificationSent,
		NotificationStatus:  status.String(),
	}, nil
}

// resolveWinner maps the drawn value onto an entry. Sparse raffles always
// resolve by rank in ascending ticket order. Sequential raffles look the
// value up as a ticket number while their number space is dense; once a
// rejection has left gaps, rank is the only lookup that still covers every
// entry.
func (uc *DrawRaffleUseCase) resolveWinner(ctx context.Context, r *raffle.Raffle, total, winningNumber int64) (*raffle.Entry, string, error) {
	resolution := raffle.ResolvedByRank
	if !r.Numbering().ResolvesByRank() {
		maxNumber, err := uc.entryRepo.MaxTicketNumber(ctx, r.ID())
		if err != nil {
			return nil, "", fmt.Errorf("failed to load max ticket number: %w", err)
		}
		if maxNumber == total {
			resolution = raffle.ResolvedByTicketNumber
		} else {
			uc.logger.Infow("sequential numbering has gaps, resolving by rank",
				"raffle_id", r.ID(),
				"max_ticket_number", maxNumber,
				"total_entries", total,
			)
		}
	}

	var (
		entry *raffle.Entry
		err   error
	)
	if resolution == raffle.ResolvedByTicketNumber {
		entry, err = uc.entryRepo.GetByTicketNumber(ctx, r.ID(), winningNumber)
	} else {
		entry, err = uc.entryRepo.GetByRank(ctx, r.ID(), winningNumber)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load winning entry: %w", err)
	}
	if entry == nil || entry.RaffleID() != r.ID() {
		return nil, "", fmt.Errorf("%w: raffle %s, %s %d of %d",
			raffle.ErrWinningEntryNotFound, r.ID(), resolution, winningNumber, total)
	}
	return entry, resolution, nil
}

func drawResultOf(err error) string {
	switch {
	case stderrors.Is(err, raffle.ErrRaffleAlreadyDrawn):
		return DrawResultAlreadyDrawn
	case stderrors.Is(err, raffle.ErrNoEntries):
		return DrawResultNoEntries
	case stderrors.Is(err, raffle.ErrRaffleCancelled):
		return DrawResultCancelled
	default:
		return DrawResultError
	}
}
