package deposit

import (
	"time"

	"github.com/gin-gonic/gin"

	"raffle/internal/application/deposit/usecases"
	"raffle/internal/shared/errors"
	"raffle/internal/shared/utils"
)

type SubmitDepositRequest struct {
	RaffleID    string `json:"raffle_id" validate:"required,max=32"`
	SponsorID   string `json:"sponsor_id" validate:"required,max=32"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	ProofRef    string `json:"proof_ref" validate:"max=500"`
}

func (r *SubmitDepositRequest) ToCommand(participantID string) usecases.SubmitDepositCommand {
	return usecases.SubmitDepositCommand{
		RaffleID:      r.RaffleID,
		SponsorID:     r.SponsorID,
		ParticipantID: participantID,
		AmountCents:   r.AmountCents,
		ProofRef:      r.ProofRef,
	}
}

type RejectDepositRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// parseListDepositsQuery reads filters shared by the admin and participant
// listings. The participant listing overrides participant_id.
func parseListDepositsQuery(c *gin.Context) (usecases.ListDepositsQuery, error) {
	p := utils.ParsePagination(c)
	query := usecases.ListDepositsQuery{
		Status:        c.Query("status"),
		ParticipantID: c.Query("participant_id"),
		RaffleID:      c.Query("raffle_id"),
		SponsorID:     c.Query("sponsor_id"),
		Page:          p.Page,
		PageSize:      p.PageSize,
	}

	var err error
	if query.CreatedFrom, err = parseTimeParam(c, "created_from"); err != nil {
		return query, err
	}
	if query.CreatedTo, err = parseTimeParam(c, "created_to"); err != nil {
		return query, err
	}
	return query, nil
}

func parseTimeParam(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.NewValidationError("invalid "+key, "expected RFC3339 timestamp")
	}
	return &t, nil
}
