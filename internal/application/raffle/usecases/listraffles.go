package usecases

import (
	"context"
	"time"

	"raffle/internal/application/raffle/dto"
	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/db"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

// ListRafflesQuery lists raffles. With no Status the listing shows active
// raffles that have not ended yet.
type ListRafflesQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ListRafflesResult struct {
	Raffles    []*dto.RaffleDTO `json:"raffles"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

type ListRafflesUseCase struct {
	raffleRepo raffle.Repository
	logger     logger.Interface
	now        func() time.Time
}

func NewListRafflesUseCase(raffleRepo raffle.Repository, logger logger.Interface) *ListRafflesUseCase {
	return &ListRafflesUseCase{
		raffleRepo: raffleRepo,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *ListRafflesUseCase) Execute(ctx context.Context, query ListRafflesQuery) (*ListRafflesResult, error) {
	page, pageSize := db.NormalizePage(query.Page, query.PageSize)
	filter := raffle.ListFilter{Page: page, PageSize: pageSize}

	if query.Status == "" {
		now := uc.now()
		filter.Statuses = []vo.RaffleStatus{vo.RaffleStatusActive}
		filter.EndsAfter = &now
	} else {
		status := vo.RaffleStatus(query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid raffle status", query.Status)
		}
		filter.Statuses = []vo.RaffleStatus{status}
	}

	raffles, total, err := uc.raffleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list raffles", "error", err)
		return nil, errors.NewInternalError("failed to list raffles").WithCause(err)
	}

	return &ListRafflesResult{
		Raffles:    dto.ToRaffleDTOs(raffles),
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
