package usecases

import (
	"context"
	"time"

	"raffle/internal/application/common"
	"raffle/internal/application/deposit/dto"
	"raffle/internal/application/raffle/ticketalloc"
	"raffle/internal/domain/deposit"
	"raffle/internal/domain/participant"
	"raffle/internal/domain/raffle"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/domain/sponsor"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type SubmitDepositCommand struct {
	RaffleID      string
	SponsorID     string
	ParticipantID string
	AmountCents   int64
	ProofRef      string
}

type SubmitDepositUseCase struct {
	depositRepo     deposit.Repository
	raffleRepo      raffle.Repository
	sponsorRepo     sponsor.Repository
	participantRepo participant.Repository
	limiter         SubmissionLimiter
	logger          logger.Interface
	now             func() time.Time
}

// NewSubmitDepositUseCase builds the use case. limiter may be nil.
func NewSubmitDepositUseCase(
	depositRepo deposit.Repository,
	raffleRepo raffle.Repository,
	sponsorRepo sponsor.Repository,
	participantRepo participant.Repository,
	limiter SubmissionLimiter,
	logger logger.Interface,
) *SubmitDepositUseCase {
	return &SubmitDepositUseCase{
		depositRepo:     depositRepo,
		raffleRepo:      raffleRepo,
		sponsorRepo:     sponsorRepo,
		participantRepo: participantRepo,
		limiter:         limiter,
		logger:          logger,
		now:             biztime.NowUTC,
	}
}

func (uc *SubmitDepositUseCase) Execute(ctx context.Context, cmd SubmitDepositCommand) (*dto.DepositDTO, error) {
	uc.logger.Infow("executing submit deposit use case",
		"raffle_id", cmd.RaffleID,
		"sponsor_id", cmd.SponsorID,
		"participant_id", cmd.ParticipantID,
		"amount_cents", cmd.AmountCents,
	)

	if err := validateSubmit(cmd); err != nil {
		return nil, err
	}

	r, err := uc.raffleRepo.GetByID(ctx, cmd.RaffleID)
	if err != nil {
		return nil, common.MapDomainError(err, "failed to submit deposit")
	}
	if err := r.AcceptsDepositsAt(uc.now()); err != nil {
		uc.logger.Warnw("raffle not accepting deposits", "raffle_id", r.ID(), "status", r.Status(), "error", err)
		return nil, common.MapDomainError(err, "failed to submit deposit")
	}

	s, err := uc.sponsorRepo.GetByID(ctx, cmd.SponsorID)
	if err != nil {
		return nil, common.MapDomainError(err, "failed to submit deposit")
	}
	if err := s.EnsureActive(); err != nil {
		return nil, common.MapDomainError(err, "failed to submit deposit")
	}

	if _, err := uc.participantRepo.GetByID(ctx, cmd.ParticipantID); err != nil {
		return nil, common.MapDomainError(err, "failed to submit deposit")
	}

	amount := sharedvo.NewMoney(cmd.AmountCents, r.QuotaValue().Currency())
	quotas := ticketalloc.ComputeQuotas(amount, r.QuotaValue())

	d, err := deposit.NewDeposit(deposit.NewDepositParams{
		RaffleID:      r.ID(),
		SponsorID:     s.ID(),
		ParticipantID: cmd.ParticipantID,
		Amount:        amount,
		QuotaCount:    quotas,
		ProofRef:      cmd.ProofRef,
	})
	if err != nil {
		uc.logger.Warnw("deposit refused",
			"raffle_id", r.ID(),
			"amount", amount.String(),
			"quota_value", r.QuotaValue().String(),
			"error", err,
		)
		return nil, common.MapDomainError(err, "failed to submit deposit")
	}

	// Only submissions that would be accepted count against the budget.
	if err := uc.allow(ctx, cmd.ParticipantID); err != nil {
		return nil, err
	}

	if err := uc.depositRepo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to persist deposit", "error", err)
		return nil, errors.NewInternalError("failed to submit deposit").WithCause(err)
	}

	uc.logger.Infow("deposit submitted",
		"deposit_id", d.ID(),
		"raffle_id", d.RaffleID(),
		"quota_count", d.QuotaCount(),
	)

	return dto.ToDepositDTO(d), nil
}

func (uc *SubmitDepositUseCase) allow(ctx context.Context, participantID string) error {
	if uc.limiter == nil {
		return nil
	}
	allowed, err := uc.limiter.Allow(ctx, participantID)
	if err != nil {
		uc.logger.Warnw("rate limiter unavailable, allowing submission",
			"participant_id", participantID,
			"error", err,
		)
		return nil
	}
	if !allowed {
		return errors.NewRateLimitedError("too many deposit submissions, try again later").
			WithReason(common.ReasonRateLimited)
	}
	return nil
}

func validateSubmit(cmd SubmitDepositCommand) error {
	if cmd.RaffleID == "" {
		return errors.NewValidationError("raffle ID is required")
	}
	if cmd.SponsorID == "" {
		return errors.NewValidationError("sponsor ID is required")
	}
	if cmd.ParticipantID == "" {
		return errors.NewValidationError("participant ID is required")
	}
	if cmd.AmountCents < 0 {
		return errors.NewValidationError("amount must not be negative")
	}
	return nil
}
