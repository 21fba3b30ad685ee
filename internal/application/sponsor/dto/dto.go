package dto

import (
	"time"

	"raffle/internal/domain/sponsor"
)

type SponsorDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	LogoURL    string    `json:"logo_url,omitempty"`
	CouponCode string    `json:"coupon_code,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToSponsorDTO(s *sponsor.Sponsor) *SponsorDTO {
	return &SponsorDTO{
		ID:         s.ID(),
		Name:       s.Name(),
		Slug:       s.Slug(),
		LogoURL:    s.LogoURL(),
		CouponCode: s.CouponCode(),
		Active:     s.IsActive(),
		CreatedAt:  s.CreatedAt(),
	}
}

func ToSponsorDTOs(sponsors []*sponsor.Sponsor) []*SponsorDTO {
	out := make([]*SponsorDTO, 0, len(sponsors))
	for _, s := range sponsors {
		out = append(out, ToSponsorDTO(s))
	}
	return out
}
