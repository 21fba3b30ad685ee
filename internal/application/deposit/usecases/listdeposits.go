package usecases

import (
	"context"
	"time"

	"raffle/internal/application/deposit/dto"
	"raffle/internal/domain/deposit"
	vo "raffle/internal/domain/deposit/valueobjects"
	"raffle/internal/shared/db"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type ListDepositsQuery struct {
	Status        string
	ParticipantID string
	RaffleID      string
	SponsorID     string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	Page          int
	PageSize      int
}

type ListDepositsResult struct {
	Deposits   []*dto.DepositDTO `json:"deposits"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
}

type ListDepositsUseCase struct {
	depositRepo deposit.Repository
	logger      logger.Interface
}

func NewListDepositsUseCase(depositRepo deposit.Repository, logger logger.Interface) *ListDepositsUseCase {
	return &ListDepositsUseCase{
		depositRepo: depositRepo,
		logger:      logger,
	}
}

func (uc *ListDepositsUseCase) Execute(ctx context.Context, query ListDepositsQuery) (*ListDepositsResult, error) {
	status := vo.DepositStatus(query.Status)
	if status != "" && !status.IsValid() {
		return nil, errors.NewValidationError("invalid deposit status", query.Status)
	}
	if query.CreatedFrom != nil && query.CreatedTo != nil && query.CreatedTo.Before(*query.CreatedFrom) {
		return nil, errors.NewValidationError("created_to must not be before created_from")
	}

	page, pageSize := db.NormalizePage(query.Page, query.PageSize)
	deposits, total, err := uc.depositRepo.List(ctx, deposit.Filter{
		Status:        status,
		ParticipantID: query.ParticipantID,
		RaffleID:      query.RaffleID,
		SponsorID:     query.SponsorID,
		CreatedFrom:   query.CreatedFrom,
		CreatedTo:     query.CreatedTo,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list deposits", "error", err)
		return nil, errors.NewInternalError("failed to list deposits").WithCause(err)
	}

	return &ListDepositsResult{
		Deposits:   dto.ToDepositDTOs(deposits),
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
