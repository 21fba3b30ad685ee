package dto

import (
	"time"

	"raffle/internal/domain/raffle"
)

type RaffleDTO struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	DescriptionHTML     string     `json:"description_html,omitempty"`
	PrizeName           string     `json:"prize_name"`
	PrizeImageURL       string     `json:"prize_image_url,omitempty"`
	PrizeValueCents     int64      `json:"prize_value_cents"`
	QuotaValueCents     int64      `json:"quota_value_cents"`
	Currency            string     `json:"currency"`
	Numbering           string     `json:"numbering"`
	StartDate           time.Time  `json:"start_date"`
	EndDate             time.Time  `json:"end_date"`
	Status              string     `json:"status"`
	TotalEntries        *int64     `json:"total_entries,omitempty"`
	WinnerID            *string    `json:"winner_id,omitempty"`
	WinningTicketNumber *int64     `json:"winning_ticket_number,omitempty"`
	DrawDate            *time.Time `json:"draw_date,omitempty"`
	NotificationStatus  string     `json:"notification_status,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type EntryDTO struct {
	TicketNumber  int64     `json:"ticket_number"`
	ParticipantID string    `json:"participant_id"`
	DepositID     string    `json:"deposit_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// DrawResultDTO distinguishes the committed draw from the notification
// outcome: a failed or pending notification never means the draw failed.
type DrawResultDTO struct {
	RaffleID            string    `json:"raffle_id"`
	WinnerID            string    `json:"winner_id"`
	WinningTicketNumber int64     `json:"winning_ticket_number"`
	TotalEntries        int64     `json:"total_entries"`
	DrawDate            time.Time `json:"draw_date"`
	Notified            bool      `json:"notified"`
	NotificationStatus  string    `json:"notification_status"`
}

func ToRaffleDTO(r *raffle.Raffle) *RaffleDTO {
	if r == nil {
		return nil
	}
	return &RaffleDTO{
		ID:                  r.ID(),
		Title:               r.Title(),
		Description:         r.Description(),
		PrizeName:           r.PrizeName(),
		PrizeImageURL:       r.PrizeImageURL(),
		PrizeValueCents:     r.PrizeValue().AmountInCents(),
		QuotaValueCents:     r.QuotaValue().AmountInCents(),
		Currency:            r.QuotaValue().Currency(),
		Numbering:           r.Numbering().String(),
		StartDate:           r.StartDate(),
		EndDate:             r.EndDate(),
		Status:              r.Status().String(),
		WinnerID:            r.WinnerID(),
		WinningTicketNumber: r.WinningTicketNumber(),
		DrawDate:            r.DrawDate(),
		NotificationStatus:  r.NotificationStatus().String(),
		CreatedAt:           r.CreatedAt(),
	}
}

func ToRaffleDTOs(raffles []*raffle.Raffle) []*RaffleDTO {
	out := make([]*RaffleDTO, 0, len(raffles))
	for _, r := range raffles {
		out = append(out, ToRaffleDTO(r))
	}
	return out
}

func ToEntryDTOs(entries []*raffle.Entry) []*EntryDTO {
	out := make([]*EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, &EntryDTO{
			TicketNumber:  e.TicketNumber(),
			ParticipantID: e.ParticipantID(),
			DepositID:     e.DepositID(),
			CreatedAt:     e.CreatedAt(),
		})
	}
	return out
}
