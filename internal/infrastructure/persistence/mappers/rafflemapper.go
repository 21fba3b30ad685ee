package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/infrastructure/persistence/models"
)

func RaffleToModel(r *raffle.Raffle) (*models.RaffleModel, error) {
	model := &models.RaffleModel{
		ID:                  r.ID(),
		Title:               r.Title(),
		Description:         r.Description(),
		PrizeName:           r.PrizeName(),
		PrizeImageURL:       r.PrizeImageURL(),
		PrizeValue:          r.PrizeValue().AmountInCents(),
		Currency:            r.PrizeValue().Currency(),
		QuotaValue:          r.QuotaValue().AmountInCents(),
		Numbering:           r.Numbering().String(),
		StartDate:           r.StartDate(),
		EndDate:             r.EndDate(),
		Status:              r.Status().String(),
		WinnerID:            r.WinnerID(),
		WinningTicketNumber: r.WinningTicketNumber(),
		DrawDate:            r.DrawDate(),
		NotificationStatus:  r.NotificationStatus().String(),
		Version:             r.Version(),
		CreatedAt:           r.CreatedAt(),
		UpdatedAt:           r.UpdatedAt(),
	}

	if audit := r.DrawAudit(); audit != nil {
		raw, err := json.Marshal(audit)
		if err != nil {
			return nil, fmt.Errorf("failed to encode draw audit: %w", err)
		}
		model.DrawAudit = datatypes.JSON(raw)
	}

	return model, nil
}

func RaffleToDomain(model *models.RaffleModel) (*raffle.Raffle, error) {
	status := vo.RaffleStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid raffle status: %s", model.Status)
	}
	numbering := vo.NumberingStrategy(model.Numbering)
	if !numbering.IsValid() {
		return nil, fmt.Errorf("invalid numbering strategy: %s", model.Numbering)
	}

	var audit *raffle.DrawAudit
	if len(model.DrawAudit) > 0 {
		audit = &raffle.DrawAudit{}
		if err := json.Unmarshal(model.DrawAudit, audit); err != nil {
			return nil, fmt.Errorf("invalid draw audit for raffle %s: %w", model.ID, err)
		}
	}

	return raffle.ReconstructRaffle(raffle.RaffleReconstructParams{
		ID:                  model.ID,
		Title:               model.Title,
		Description:         model.Description,
		PrizeName:           model.PrizeName,
		PrizeImageURL:       model.PrizeImageURL,
		PrizeValue:          sharedvo.NewMoney(model.PrizeValue, model.Currency),
		QuotaValue:          sharedvo.NewMoney(model.QuotaValue, model.Currency),
		Numbering:           numbering,
		StartDate:           model.StartDate.UTC(),
		EndDate:             model.EndDate.UTC(),
		Status:              status,
		WinnerID:            model.WinnerID,
		WinningTicketNumber: model.WinningTicketNumber,
		DrawDate:            model.DrawDate,
		DrawAudit:           audit,
		NotificationStatus:  vo.NotificationStatus(model.NotificationStatus),
		Version:             model.Version,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}), nil
}

func RafflesToDomain(rows []models.RaffleModel) ([]*raffle.Raffle, error) {
	out := make([]*raffle.Raffle, 0, len(rows))
	for i := range rows {
		r, err := RaffleToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func EntryToModel(e *raffle.Entry) *models.EntryModel {
	return &models.EntryModel{
		ID:            e.ID(),
		RaffleID:      e.RaffleID(),
		TicketNumber:  e.TicketNumber(),
		ParticipantID: e.ParticipantID(),
		DepositID:     e.DepositID(),
		CreatedAt:     e.CreatedAt(),
	}
}

func EntryToDomain(m *models.EntryModel) *raffle.Entry {
	return raffle.ReconstructEntry(m.ID, m.RaffleID, m.ParticipantID, m.DepositID, m.TicketNumber, m.CreatedAt)
}

func EntriesToDomain(rows []models.EntryModel) []*raffle.Entry {
	out := make([]*raffle.Entry, len(rows))
	for i := range rows {
		out[i] = EntryToDomain(&rows[i])
	}
	return out
}
