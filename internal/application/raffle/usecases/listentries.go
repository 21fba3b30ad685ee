package usecases

import (
	"context"

	"raffle/internal/application/common"
	"raffle/internal/application/raffle/dto"
	"raffle/internal/domain/raffle"
	"raffle/internal/shared/db"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
)

type ListEntriesQuery struct {
	RaffleID      string
	ParticipantID string
	Page          int
	PageSize      int
}

type ListEntriesResult struct {
	Entries    []*dto.EntryDTO `json:"entries"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
}

// ListEntriesUseCase lists a raffle's tickets in ascending ticket order, the
// order ranks are resolved against at draw time.
type ListEntriesUseCase struct {
	raffleRepo raffle.Repository
	entryRepo  raffle.EntryRepository
	logger     logger.Interface
}

func NewListEntriesUseCase(raffleRepo raffle.Repository, entryRepo raffle.EntryRepository, logger logger.Interface) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		raffleRepo: raffleRepo,
		entryRepo:  entryRepo,
		logger:     logger,
	}
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context, query ListEntriesQuery) (*ListEntriesResult, error) {
	if query.RaffleID == "" {
		return nil, errors.NewValidationError("raffle ID is required")
	}
	if _, err := uc.raffleRepo.GetByID(ctx, query.RaffleID); err != nil {
		return nil, common.MapDomainError(err, "failed to list entries")
	}

	page, pageSize := db.NormalizePage(query.Page, query.PageSize)
	entries, total, err := uc.entryRepo.ListByRaffle(ctx, query.RaffleID, raffle.EntryFilter{
		ParticipantID: query.ParticipantID,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list entries", "raffle_id", query.RaffleID, "error", err)
		return nil, errors.NewInternalError("failed to list entries").WithCause(err)
	}

	return &ListEntriesResult{
		Entries:    dto.ToEntryDTOs(entries),
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
