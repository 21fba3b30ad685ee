package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"raffle/internal/domain/raffle"
	"raffle/internal/infrastructure/persistence/mappers"
	"raffle/internal/infrastructure/persistence/models"
	"raffle/internal/shared/db"
	apperrors "raffle/internal/shared/errors"
)

const entryBatchSize = 500

type EntryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

var _ raffle.EntryRepository = (*EntryRepository)(nil)

func (r *EntryRepository) CreateBatch(ctx context.Context, entries []*raffle.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]*models.EntryModel, len(entries))
	for i, e := range entries {
		rows[i] = mappers.EntryToModel(e)
	}

	if err := db.GetTxFromContext(ctx, r.db).CreateInBatches(rows, entryBatchSize).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return fmt.Errorf("ticket number collision: %w", err)
		}
		return fmt.Errorf("failed to create entries: %w", err)
	}

	for i, row := range rows {
		entries[i].SetID(row.ID)
	}
	return nil
}

func (r *EntryRepository) CountByRaffle(ctx context.Context, raffleID string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EntryModel{}).
		Where("raffle_id = ?", raffleID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func (r *EntryRepository) MaxTicketNumber(ctx context.Context, raffleID string) (int64, error) {
	var max int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EntryModel{}).
		Where("raffle_id = ?", raffleID).
		Select("COALESCE(MAX(ticket_number), 0)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to get max ticket number: %w", err)
	}
	return max, nil
}

func (r *EntryRepository) TicketNumbers(ctx context.Context, raffleID string) ([]int64, error) {
	var numbers []int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EntryModel{}).
		Where("raffle_id = ?", raffleID).
		Pluck("ticket_number", &numbers).Error; err != nil {
		return nil, fmt.Errorf("failed to load ticket numbers: %w", err)
	}
	return numbers, nil
}

func (r *EntryRepository) GetByTicketNumber(ctx context.Context, raffleID string, ticketNumber int64) (*raffle.Entry, error) {
	var rows []models.EntryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("raffle_id = ? AND ticket_number = ?", raffleID, ticketNumber).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get entry by ticket number: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mappers.EntryToDomain(&rows[0]), nil
}

// GetByRank orders by ticket_number, which is unique per raffle, so the
// ordering is total and stable.
func (r *EntryRepository) GetByRank(ctx context.Context, raffleID string, rank int64) (*raffle.Entry, error) {
	if rank < 1 {
		return nil, nil
	}
	var rows []models.EntryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("raffle_id = ?", raffleID).
		Order("ticket_number ASC").
		Offset(int(rank - 1)).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get entry by rank: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mappers.EntryToDomain(&rows[0]), nil
}

func (r *EntryRepository) ListByRaffle(ctx context.Context, raffleID string, filter raffle.EntryFilter) ([]*raffle.Entry, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.EntryModel{}).
		Where("raffle_id = ?", raffleID)
	if filter.ParticipantID != "" {
		query = query.Where("participant_id = ?", filter.ParticipantID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count entries: %w", err)
	}

	var rows []models.EntryModel
	if err := query.Order("ticket_number ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list entries: %w", err)
	}
	return mappers.EntriesToDomain(rows), total, nil
}

func (r *EntryRepository) ListByDeposit(ctx context.Context, depositID string) ([]*raffle.Entry, error) {
	var rows []models.EntryModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("deposit_id = ?", depositID).
		Order("ticket_number ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list deposit entries: %w", err)
	}
	return mappers.EntriesToDomain(rows), nil
}

func (r *EntryRepository) DeleteByDeposit(ctx context.Context, depositID string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("deposit_id = ?", depositID).
		Delete(&models.EntryModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete deposit entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
