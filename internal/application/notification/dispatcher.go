// Package notification delivers winner notifications after a draw has
// committed. Nothing here runs inside the draw transaction and no outcome
// here can undo a draw.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"raffle/internal/domain/participant"
	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	"raffle/internal/shared/goroutine"
	"raffle/internal/shared/logger"
)

const (
	DefaultWaitTimeout = 5 * time.Second
	DefaultSendTimeout = 30 * time.Second
	DefaultDedupTTL    = 2 * time.Minute
)

// ErrInFlight is returned when another process holds the dedup key.
var ErrInFlight = errors.New("winner notification already in flight")

// StatusStore persists the notification status of a raffle.
type StatusStore interface {
	UpdateNotificationStatus(ctx context.Context, id string, status vo.NotificationStatus) error
}

type DispatcherConfig struct {
	// WaitTimeout bounds how long Dispatch blocks for the send result.
	WaitTimeout time.Duration
	// SendTimeout bounds a single provider call.
	SendTimeout time.Duration
	DedupTTL    time.Duration
}

type Dispatcher struct {
	notifier     WinnerNotifier
	participants participant.Repository
	statuses     StatusStore
	dedup        Deduplicator
	metrics      Metrics
	cfg          DispatcherConfig
	logger       logger.Interface
}

// NewDispatcher builds a dispatcher. dedup and metrics may be nil.
func NewDispatcher(
	notifier WinnerNotifier,
	participants participant.Repository,
	statuses StatusStore,
	dedup Deduplicator,
	metrics Metrics,
	cfg DispatcherConfig,
	log logger.Interface,
) *Dispatcher {
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = DefaultWaitTimeout
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}
	if cfg.DedupTTL <= 0 {
		cfg.DedupTTL = DefaultDedupTTL
	}
	return &Dispatcher{
		notifier:     notifier,
		participants: participants,
		statuses:     statuses,
		dedup:        dedup,
		metrics:      metrics,
		cfg:          cfg,
		logger:       log,
	}
}

// Dispatch sends the notification for a freshly drawn raffle on a recovered
// goroutine and waits at most WaitTimeout for it. It reports sent, failed,
// or pending when the send is still running (or owned by another process).
// The send itself is detached from ctx so a finished request does not
// abort it.
func (d *Dispatcher) Dispatch(ctx context.Context, r *raffle.Raffle) vo.NotificationStatus {
	sendCtx := context.WithoutCancel(ctx)
	done := goroutine.SafeGoErr(d.logger, "winner-notification", func() error {
		return d.Send(sendCtx, r)
	})

	timer := time.NewTimer(d.cfg.WaitTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		switch {
		case err == nil:
			return vo.NotificationSent
		case errors.Is(err, ErrInFlight):
			return vo.NotificationPending
		default:
			return vo.NotificationFailed
		}
	case <-timer.C:
		d.logger.Warnw("winner notification still running, reporting pending",
			"raffle_id", r.ID(),
			"wait_timeout", d.cfg.WaitTimeout,
		)
		return vo.NotificationPending
	}
}

// Send notifies the winner of r synchronously and records the outcome on
// the raffle. It returns ErrInFlight without sending when the dedup key is
// held elsewhere.
func (d *Dispatcher) Send(ctx context.Context, r *raffle.Raffle) error {
	if !r.HasWinner() {
		return fmt.Errorf("raffle %s has no winner", r.ID())
	}

	if d.dedup != nil {
		acquired, err := d.dedup.TryAcquire(ctx, r.ID(), d.cfg.DedupTTL)
		if err != nil {
			// redis being down must not block the notification
			d.logger.Warnw("notification dedup unavailable, sending anyway",
				"raffle_id", r.ID(),
				"error", err,
			)
		} else if !acquired {
			d.logger.Infow("winner notification already in flight", "raffle_id", r.ID())
			return ErrInFlight
		} else {
			defer func() {
				if err := d.dedup.Release(context.WithoutCancel(ctx), r.ID()); err != nil {
					d.logger.Warnw("failed to release notification dedup key", "raffle_id", r.ID(), "error", err)
				}
			}()
		}
	}

	sendErr := d.send(ctx, r)

	status := vo.NotificationSent
	if sendErr != nil {
		status = vo.NotificationFailed
		d.logger.Errorw("failed to notify winner",
			"raffle_id", r.ID(),
			"winner_id", *r.WinnerID(),
			"error", sendErr,
		)
	} else {
		d.logger.Infow("winner notified",
			"raffle_id", r.ID(),
			"winner_id", *r.WinnerID(),
		)
	}

	if d.metrics != nil {
		d.metrics.WinnerNotification(status.String())
	}
	if err := d.statuses.UpdateNotificationStatus(ctx, r.ID(), status); err != nil {
		d.logger.Errorw("failed to record notification status",
			"raffle_id", r.ID(),
			"status", status,
			"error", err,
		)
	}

	return sendErr
}

func (d *Dispatcher) send(ctx context.Context, r *raffle.Raffle) error {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()

	winner, err := d.participants.GetByID(ctx, *r.WinnerID())
	if err != nil {
		return fmt.Errorf("failed to load winner: %w", err)
	}

	return d.notifier.NotifyWinner(ctx, ContactFor(winner), SummaryOf(r))
}

func ContactFor(p *participant.Participant) WinnerContact {
	return WinnerContact{
		ParticipantID: p.ID(),
		Name:          p.Name(),
		Email:         p.Email(),
	}
}

// SummaryOf builds the summary of a drawn raffle.
func SummaryOf(r *raffle.Raffle) RaffleSummary {
	s := RaffleSummary{
		RaffleID:         r.ID(),
		Title:            r.Title(),
		Description:      r.Description(),
		PrizeName:        r.PrizeName(),
		PrizeValue:       r.PrizeValue(),
		WinChancePercent: r.WinChancePercent(),
	}
	if n := r.WinningTicketNumber(); n != nil {
		s.WinningTicketNumber = *n
	}
	if a := r.DrawAudit(); a != nil {
		s.TotalEntries = a.TotalEntries
	}
	if dd := r.DrawDate(); dd != nil {
		s.DrawDate = *dd
	}
	return s
}
