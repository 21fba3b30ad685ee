package mappers

import (
	"fmt"

	"raffle/internal/domain/deposit"
	vo "raffle/internal/domain/deposit/valueobjects"
	"raffle/internal/domain/participant"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/domain/sponsor"
	"raffle/internal/infrastructure/persistence/models"
)

func DepositToModel(d *deposit.Deposit) *models.DepositModel {
	return &models.DepositModel{
		ID:              d.ID(),
		RaffleID:        d.RaffleID(),
		SponsorID:       d.SponsorID(),
		ParticipantID:   d.ParticipantID(),
		Amount:          d.Amount().AmountInCents(),
		Currency:        d.Amount().Currency(),
		QuotaCount:      d.QuotaCount(),
		ProofRef:        d.ProofRef(),
		Status:          d.Status().String(),
		ReviewedBy:      d.ReviewedBy(),
		ReviewedAt:      d.ReviewedAt(),
		RejectionReason: d.RejectionReason(),
		Version:         d.Version(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func DepositToDomain(m *models.DepositModel) (*deposit.Deposit, error) {
	status := vo.DepositStatus(m.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid deposit status: %s", m.Status)
	}

	return deposit.ReconstructDeposit(deposit.DepositReconstructParams{
		ID:              m.ID,
		RaffleID:        m.RaffleID,
		SponsorID:       m.SponsorID,
		ParticipantID:   m.ParticipantID,
		Amount:          sharedvo.NewMoney(m.Amount, m.Currency),
		QuotaCount:      m.QuotaCount,
		ProofRef:        m.ProofRef,
		Status:          status,
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      m.ReviewedAt,
		RejectionReason: m.RejectionReason,
		Version:         m.Version,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}), nil
}

func DepositsToDomain(rows []models.DepositModel) ([]*deposit.Deposit, error) {
	out := make([]*deposit.Deposit, 0, len(rows))
	for i := range rows {
		d, err := DepositToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func ParticipantToModel(p *participant.Participant) *models.ParticipantModel {
	return &models.ParticipantModel{
		ID:        p.ID(),
		Name:      p.Name(),
		Email:     p.Email(),
		CreatedAt: p.CreatedAt(),
	}
}

func ParticipantToDomain(m *models.ParticipantModel) *participant.Participant {
	return participant.ReconstructParticipant(m.ID, m.Name, m.Email, m.CreatedAt)
}

func SponsorToModel(s *sponsor.Sponsor) *models.SponsorModel {
	return &models.SponsorModel{
		ID:         s.ID(),
		Name:       s.Name(),
		Slug:       s.Slug(),
		LogoURL:    s.LogoURL(),
		CouponCode: s.CouponCode(),
		Active:     s.IsActive(),
		CreatedAt:  s.CreatedAt(),
	}
}

func SponsorToDomain(m *models.SponsorModel) *sponsor.Sponsor {
	return sponsor.ReconstructSponsor(m.ID, m.Name, m.Slug, m.LogoURL, m.CouponCode, m.Active, m.CreatedAt)
}
