package usecases

import (
	"context"

	"raffle/internal/application/deposit/dto"
)

type SubmitDepositExecutor interface {
	Execute(ctx context.Context, cmd SubmitDepositCommand) (*dto.DepositDTO, error)
}

type GetDepositExecutor interface {
	Execute(ctx context.Context, query GetDepositQuery) (*dto.DepositDTO, error)
}

type ListDepositsExecutor interface {
	Execute(ctx context.Context, query ListDepositsQuery) (*ListDepositsResult, error)
}

type ApproveDepositExecutor interface {
	Execute(ctx context.Context, cmd ApproveDepositCommand) (*dto.ApproveResultDTO, error)
}

type RejectDepositExecutor interface {
	Execute(ctx context.Context, cmd RejectDepositCommand) (*dto.RejectResultDTO, error)
}

// SubmissionLimiter throttles deposit submissions per participant.
type SubmissionLimiter interface {
	Allow(ctx context.Context, participantID string) (bool, error)
}

// ReviewMetrics counts review outcomes.
type ReviewMetrics interface {
	DepositApproved(tickets int)
	DepositRejected()
}

type nopReviewMetrics struct{}

func (nopReviewMetrics) DepositApproved(int) {}
func (nopReviewMetrics) DepositRejected()    {}
