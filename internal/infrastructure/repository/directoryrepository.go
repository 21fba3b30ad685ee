package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"raffle/internal/domain/participant"
	"raffle/internal/domain/sponsor"
	"raffle/internal/infrastructure/persistence/mappers"
	"raffle/internal/infrastructure/persistence/models"
	"raffle/internal/shared/db"
)

type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

var _ participant.Repository = (*ParticipantRepository)(nil)

func (r *ParticipantRepository) Create(ctx context.Context, p *participant.Participant) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.ParticipantToModel(p)).Error; err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}
	return nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id string) (*participant.Participant, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *ParticipantRepository) GetByEmail(ctx context.Context, email string) (*participant.Participant, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *ParticipantRepository) getBy(ctx context.Context, cond string, arg string) (*participant.Participant, error) {
	var model models.ParticipantModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, participant.ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return mappers.ParticipantToDomain(&model), nil
}

type SponsorRepository struct {
	db *gorm.DB
}

func NewSponsorRepository(db *gorm.DB) *SponsorRepository {
	return &SponsorRepository{db: db}
}

var _ sponsor.Repository = (*SponsorRepository)(nil)

func (r *SponsorRepository) Create(ctx context.Context, s *sponsor.Sponsor) error {
	// Select all columns so a deactivated sponsor is not stored with the column default.
	if err := db.GetTxFromContext(ctx, r.db).Select("*").Create(mappers.SponsorToModel(s)).Error; err != nil {
		return fmt.Errorf("failed to create sponsor: %w", err)
	}
	return nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id string) (*sponsor.Sponsor, error) {
	return r.getBy(ctx, "id = ?", id)
}

func (r *SponsorRepository) GetBySlug(ctx context.Context, slug string) (*sponsor.Sponsor, error) {
	return r.getBy(ctx, "slug = ?", slug)
}

func (r *SponsorRepository) ListActive(ctx context.Context) ([]*sponsor.Sponsor, error) {
	var rows []models.SponsorModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sponsors: %w", err)
	}

	sponsors := make([]*sponsor.Sponsor, 0, len(rows))
	for i := range rows {
		sponsors = append(sponsors, mappers.SponsorToDomain(&rows[i]))
	}
	return sponsors, nil
}

func (r *SponsorRepository) getBy(ctx context.Context, cond string, arg string) (*sponsor.Sponsor, error) {
	var model models.SponsorModel
	if err := db.GetTxFromContext(ctx, r.db).Where(cond, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sponsor.ErrSponsorNotFound
		}
		return nil, fmt.Errorf("failed to get sponsor: %w", err)
	}
	return mappers.SponsorToDomain(&model), nil
}
