package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	"raffle/internal/infrastructure/persistence/mappers"
	"raffle/internal/infrastructure/persistence/models"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/db"
)

type RaffleRepository struct {
	db *gorm.DB
}

func NewRaffleRepository(db *gorm.DB) *RaffleRepository {
	return &RaffleRepository{db: db}
}

var _ raffle.Repository = (*RaffleRepository)(nil)

func (r *RaffleRepository) Create(ctx context.Context, rf *raffle.Raffle) error {
	model, err := mappers.RaffleToModel(rf)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create raffle: %w", err)
	}
	return nil
}

func (r *RaffleRepository) GetByID(ctx context.Context, id string) (*raffle.Raffle, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *RaffleRepository) GetByIDForUpdate(ctx context.Context, id string) (*raffle.Raffle, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *RaffleRepository) get(tx *gorm.DB, id string) (*raffle.Raffle, error) {
	var model models.RaffleModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, raffle.ErrRaffleNotFound
		}
		return nil, fmt.Errorf("failed to get raffle: %w", err)
	}
	return mappers.RaffleToDomain(&model)
}

func (r *RaffleRepository) List(ctx context.Context, filter raffle.ListFilter) ([]*raffle.Raffle, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.RaffleModel{})

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where("status IN ?", statuses)
	}
	if filter.EndsAfter != nil {
		query = query.Where("end_date >= ?", *filter.EndsAfter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count raffles: %w", err)
	}

	var rows []models.RaffleModel
	if err := query.Order("end_date ASC, id ASC").
		Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list raffles: %w", err)
	}

	raffles, err := mappers.RafflesToDomain(rows)
	if err != nil {
		return nil, 0, err
	}
	return raffles, total, nil
}

func (r *RaffleRepository) UpdateStatus(ctx context.Context, rf *raffle.Raffle) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RaffleModel{}).
		Where("id = ? AND status <> ?", rf.ID(), vo.RaffleStatusCompleted.String()).
		Updates(map[string]interface{}{
			"status":     rf.Status().String(),
			"version":    rf.Version(),
			"updated_at": rf.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update raffle status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return raffle.ErrRaffleAlreadyDrawn
	}
	return nil
}

// CompleteDraw is a conditional update: it only touches a raffle that is
// still active, so a second writer always observes RowsAffected == 0.
func (r *RaffleRepository) CompleteDraw(ctx context.Context, rf *raffle.Raffle) error {
	if !rf.HasWinner() {
		return fmt.Errorf("raffle %s has no winner to persist", rf.ID())
	}
	model, err := mappers.RaffleToModel(rf)
	if err != nil {
		return err
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RaffleModel{}).
		Where("id = ? AND status = ?", rf.ID(), vo.RaffleStatusActive.String()).
		Updates(map[string]interface{}{
			"status":                model.Status,
			"winner_id":             model.WinnerID,
			"winning_ticket_number": model.WinningTicketNumber,
			"draw_date":             model.DrawDate,
			"draw_audit":            model.DrawAudit,
			"notification_status":   model.NotificationStatus,
			"version":               model.Version,
			"updated_at":            model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete draw: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return raffle.ErrRaffleAlreadyDrawn
	}
	return nil
}

func (r *RaffleRepository) UpdateNotificationStatus(ctx context.Context, id string, status vo.NotificationStatus) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RaffleModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"notification_status": status.String(),
			"updated_at":          biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update notification status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return raffle.ErrRaffleNotFound
	}
	return nil
}

func (r *RaffleRepository) ListAwaitingNotification(ctx context.Context, pendingBefore time.Time, limit int) ([]*raffle.Raffle, error) {
	var rows []models.RaffleModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", vo.RaffleStatusCompleted.String()).
		Where("notification_status = ? OR (notification_status = ? AND draw_date < ?)",
			vo.NotificationFailed.String(), vo.NotificationPending.String(), pendingBefore).
		Order("draw_date ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list raffles awaiting notification: %w", err)
	}
	return mappers.RafflesToDomain(rows)
}
