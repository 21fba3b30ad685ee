package http

import (
	"fmt"

	depositUsecases "raffle/internal/application/deposit/usecases"
	raffleUsecases "raffle/internal/application/raffle/usecases"
	sponsorUsecases "raffle/internal/application/sponsor/usecases"
	"raffle/internal/infrastructure/scheduler"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Raffle
	createRaffleUC *raffleUsecases.CreateRaffleUseCase
	getRaffleUC    *raffleUsecases.GetRaffleUseCase
	listRafflesUC  *raffleUsecases.ListRafflesUseCase
	listEntriesUC  *raffleUsecases.ListEntriesUseCase
	cancelRaffleUC *raffleUsecases.CancelRaffleUseCase
	drawRaffleUC   *raffleUsecases.DrawRaffleUseCase
	retryNotifyUC  *raffleUsecases.RetryWinnerNotificationsUseCase

	// Deposit
	submitDepositUC  *depositUsecases.SubmitDepositUseCase
	getDepositUC     *depositUsecases.GetDepositUseCase
	listDepositsUC   *depositUsecases.ListDepositsUseCase
	approveDepositUC *depositUsecases.ApproveDepositUseCase
	rejectDepositUC  *depositUsecases.RejectDepositUseCase

	// Sponsor
	listActiveSponsorsUC *sponsorUsecases.ListActiveSponsorsUseCase
	getSponsorBySlugUC   *sponsorUsecases.GetSponsorBySlugUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	s := c.svcs
	log := c.log
	cfg := c.cfg

	return &allUseCases{
		createRaffleUC: raffleUsecases.NewCreateRaffleUseCase(r.raffleRepo, s.renderer, s.raffleSettings, log),
		getRaffleUC:    raffleUsecases.NewGetRaffleUseCase(r.raffleRepo, r.entryRepo, s.renderer, log),
		listRafflesUC:  raffleUsecases.NewListRafflesUseCase(r.raffleRepo, log),
		listEntriesUC:  raffleUsecases.NewListEntriesUseCase(r.raffleRepo, r.entryRepo, log),
		cancelRaffleUC: raffleUsecases.NewCancelRaffleUseCase(r.raffleRepo, r.txMgr, log),
		drawRaffleUC: raffleUsecases.NewDrawRaffleUseCase(
			r.raffleRepo, r.entryRepo, r.txMgr, s.rng, s.dispatcher, c.metrics, log),
		retryNotifyUC: raffleUsecases.NewRetryWinnerNotificationsUseCase(
			r.raffleRepo, s.dispatcher, cfg.Notification.RetryBatch, cfg.Notification.StalePending, log),

		submitDepositUC: depositUsecases.NewSubmitDepositUseCase(
			r.depositRepo, r.raffleRepo, r.sponsorRepo, r.participantRepo, s.depositLimiter, log),
		getDepositUC:   depositUsecases.NewGetDepositUseCase(r.depositRepo, r.entryRepo, log),
		listDepositsUC: depositUsecases.NewListDepositsUseCase(r.depositRepo, log),
		approveDepositUC: depositUsecases.NewApproveDepositUseCase(
			r.depositRepo, r.raffleRepo, r.entryRepo, s.allocator, r.txMgr, c.metrics, log),
		rejectDepositUC: depositUsecases.NewRejectDepositUseCase(
			r.depositRepo, r.raffleRepo, r.entryRepo, r.txMgr, c.metrics, log),

		listActiveSponsorsUC: sponsorUsecases.NewListActiveSponsorsUseCase(r.sponsorRepo, log),
		getSponsorBySlugUC:   sponsorUsecases.NewGetSponsorBySlugUseCase(r.sponsorRepo, log),
	}
}

func (c *Container) initScheduler() error {
	manager, err := scheduler.NewSchedulerManager(c.log.Named("scheduler"), c.metrics)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	c.schedulerManager = manager
	return c.schedulerManager.RegisterWinnerNotificationRetry(
		c.cfg.Notification.RetrySchedule, c.ucs.retryNotifyUC, 0)
}
