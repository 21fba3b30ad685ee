package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"raffle/internal/application/notification"
	"raffle/internal/domain/raffle"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/logger"
)

const (
	DefaultRetryBatchSize = 50
	DefaultStalePending   = 10 * time.Minute
)

// RetryWinnerNotificationsUseCase resends winner notifications that failed,
// or that have been pending longer than stalePending (the process that owned
// them probably died). It runs as a scheduled batch job.
type RetryWinnerNotificationsUseCase struct {
	raffleRepo   raffle.Repository
	dispatcher   WinnerDispatcher
	batchSize    int
	stalePending time.Duration
	logger       logger.Interface
	now          func() time.Time
}

func NewRetryWinnerNotificationsUseCase(
	raffleRepo raffle.Repository,
	dispatcher WinnerDispatcher,
	batchSize int,
	stalePending time.Duration,
	logger logger.Interface,
) *RetryWinnerNotificationsUseCase {
	if batchSize <= 0 {
		batchSize = DefaultRetryBatchSize
	}
	if stalePending <= 0 {
		stalePending = DefaultStalePending
	}
	return &RetryWinnerNotificationsUseCase{
		raffleRepo:   raffleRepo,
		dispatcher:   dispatcher,
		batchSize:    batchSize,
		stalePending: stalePending,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

// Execute returns how many notifications were delivered in this run.
func (uc *RetryWinnerNotificationsUseCase) Execute(ctx context.Context) (int, error) {
	raffles, err := uc.raffleRepo.ListAwaitingNotification(ctx, uc.now().Add(-uc.stalePending), uc.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list raffles awaiting notification: %w", err)
	}
	if len(raffles) == 0 {
		return 0, nil
	}

	uc.logger.Infow("retrying winner notifications", "count", len(raffles))

	sent := 0
	for _, r := range raffles {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if err := uc.dispatcher.Send(ctx, r); err != nil {
			if !stderrors.Is(err, notification.ErrInFlight) {
				uc.logger.Warnw("winner notification retry failed", "raffle_id", r.ID(), "error", err)
			}
			continue
		}
		sent++
	}

	return sent, nil
}
