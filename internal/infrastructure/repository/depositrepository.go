package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"raffle/internal/domain/deposit"
	"raffle/internal/infrastructure/persistence/mappers"
	"raffle/internal/infrastructure/persistence/models"
	"raffle/internal/shared/db"
)

type DepositRepository struct {
	db *gorm.DB
}

func NewDepositRepository(db *gorm.DB) *DepositRepository {
	return &DepositRepository{db: db}
}

var _ deposit.Repository = (*DepositRepository)(nil)

func (r *DepositRepository) Create(ctx context.Context, d *deposit.Deposit) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.DepositToModel(d)).Error; err != nil {
		return fmt.Errorf("failed to create deposit: %w", err)
	}
	return nil
}

func (r *DepositRepository) GetByID(ctx context.Context, id string) (*deposit.Deposit, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *DepositRepository) GetByIDForUpdate(ctx context.Context, id string) (*deposit.Deposit, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *DepositRepository) get(tx *gorm.DB, id string) (*deposit.Deposit, error) {
	var model models.DepositModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, deposit.ErrDepositNotFound
		}
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}
	return mappers.DepositToDomain(&model)
}

// UpdateReview uses the version as an optimistic guard on top of the row lock.
func (r *DepositRepository) UpdateReview(ctx context.Context, d *deposit.Deposit) error {
	model := mappers.DepositToModel(d)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DepositModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":           model.Status,
			"reviewed_by":      model.ReviewedBy,
			"reviewed_at":      model.ReviewedAt,
			"rejection_reason": model.RejectionReason,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update deposit: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: deposit %s was modified concurrently", deposit.ErrInvalidDepositState, model.ID)
	}
	return nil
}

func (r *DepositRepository) List(ctx context.Context, filter deposit.Filter) ([]*deposit.Deposit, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.DepositModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ParticipantID != "" {
		query = query.Where("participant_id = ?", filter.ParticipantID)
	}
	if filter.RaffleID != "" {
		query = query.Where("raffle_id = ?", filter.RaffleID)
	}
	if filter.SponsorID != "" {
		query = query.Where("sponsor_id = ?", filter.SponsorID)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count deposits: %w", err)
	}

	var rows []models.DepositModel
	if err := query.Order("created_at DESC, id DESC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list deposits: %w", err)
	}

	deposits, err := mappers.DepositsToDomain(rows)
	if err != nil {
		return nil, 0, err
	}
	return deposits, total, nil
}
