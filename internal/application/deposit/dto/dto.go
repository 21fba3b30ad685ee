package dto

import (
	"time"

	"raffle/internal/domain/deposit"
)

type DepositDTO struct {
	ID              string     `json:"id"`
	RaffleID        string     `json:"raffle_id"`
	SponsorID       string     `json:"sponsor_id"`
	ParticipantID   string     `json:"participant_id"`
	AmountCents     int64      `json:"amount_cents"`
	Currency        string     `json:"currency"`
	QuotaCount      int        `json:"quota_count"`
	ProofRef        string     `json:"proof_ref,omitempty"`
	Status          string     `json:"status"`
	TicketNumbers   []int64    `json:"ticket_numbers,omitempty"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ApproveResultDTO struct {
	DepositID     string  `json:"deposit_id"`
	Status        string  `json:"status"`
	QuotaCount    int     `json:"quota_count"`
	TicketNumbers []int64 `json:"ticket_numbers"`
}

type RejectResultDTO struct {
	DepositID      string `json:"deposit_id"`
	Status         string `json:"status"`
	RemovedEntries int64  `json:"removed_entries"`
}

func ToDepositDTO(d *deposit.Deposit) *DepositDTO {
	if d == nil {
		return nil
	}
	return &DepositDTO{
		ID:              d.ID(),
		RaffleID:        d.RaffleID(),
		SponsorID:       d.SponsorID(),
		ParticipantID:   d.ParticipantID(),
		AmountCents:     d.Amount().AmountInCents(),
		Currency:        d.Amount().Currency(),
		QuotaCount:      d.QuotaCount(),
		ProofRef:        d.ProofRef(),
		Status:          d.Status().String(),
		ReviewedBy:      d.ReviewedBy(),
		ReviewedAt:      d.ReviewedAt(),
		RejectionReason: d.RejectionReason(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

func ToDepositDTOs(deposits []*deposit.Deposit) []*DepositDTO {
	out := make([]*DepositDTO, 0, len(deposits))
	for _, d := range deposits {
		out = append(out, ToDepositDTO(d))
	}
	return out
}
