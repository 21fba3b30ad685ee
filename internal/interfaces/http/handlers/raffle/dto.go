package raffle

import (
	"time"

	"raffle/internal/application/raffle/usecases"
)

type CreateRaffleRequest struct {
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"max=20000"`
	PrizeName       string    `json:"prize_name" validate:"required,max=200"`
	PrizeImageURL   string    `json:"prize_image_url" validate:"omitempty,url,max=500"`
	PrizeValueCents int64     `json:"prize_value_cents" validate:"gte=0"`
	Numbering       string    `json:"numbering" validate:"omitempty,oneof=sequential sparse_random"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

func (r *CreateRaffleRequest) ToCommand() usecases.CreateRaffleCommand {
	return usecases.CreateRaffleCommand{
		Title:           r.Title,
		Description:     r.Description,
		PrizeName:       r.PrizeName,
		PrizeImageURL:   r.PrizeImageURL,
		PrizeValueCents: r.PrizeValueCents,
		Numbering:       r.Numbering,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
	}
}
