// Package seeds loads development fixtures (sponsors, participants and
// raffles) from YAML.
package seeds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"raffle/internal/application/raffle/usecases"
	"raffle/internal/domain/participant"
	"raffle/internal/domain/sponsor"
	"raffle/internal/shared/logger"
)

type Fixtures struct {
	Sponsors     []SponsorFixture     `yaml:"sponsors"`
	Participants []ParticipantFixture `yaml:"participants"`
	Raffles      []RaffleFixture      `yaml:"raffles"`
}

type SponsorFixture struct {
	Name       string `yaml:"name"`
	Slug       string `yaml:"slug"`
	LogoURL    string `yaml:"logo_url"`
	CouponCode string `yaml:"coupon_code"`
}

type ParticipantFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

type RaffleFixture struct {
	Title           string    `yaml:"title"`
	Description     string    `yaml:"description"`
	PrizeName       string    `yaml:"prize_name"`
	PrizeImageURL   string    `yaml:"prize_image_url"`
	PrizeValueCents int64     `yaml:"prize_value_cents"`
	Numbering       string    `yaml:"numbering"`
	StartDate       time.Time `yaml:"start_date"`
	EndDate         time.Time `yaml:"end_date"`
}

// Parse decodes fixtures, rejecting unknown keys.
func Parse(r io.Reader) (*Fixtures, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Summary counts what Apply created and what already existed.
type Summary struct {
	SponsorsCreated     int
	SponsorsSkipped     int
	ParticipantsCreated int
	ParticipantsSkipped int
	RafflesCreated      int
	RaffleIDs           []string
}

type Seeder struct {
	sponsors     sponsor.Repository
	participants participant.Repository
	createRaffle usecases.CreateRaffleExecutor
	logger       logger.Interface
}

func NewSeeder(
	sponsors sponsor.Repository,
	participants participant.Repository,
	createRaffle usecases.CreateRaffleExecutor,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		sponsors:     sponsors,
		participants: participants,
		createRaffle: createRaffle,
		logger:       logger,
	}
}

// Apply inserts the fixtures. Sponsors (by slug) and participants (by email)
// that already exist are skipped; raffles are always created, through the
// same use case as the API so they capture the configured quota value.
func (s *Seeder) Apply(ctx context.Context, f *Fixtures) (*Summary, error) {
	summary := &Summary{}

	for _, fx := range f.Sponsors {
		if _, err := s.sponsors.GetBySlug(ctx, fx.Slug); err == nil {
			summary.SponsorsSkipped++
			continue
		} else if !errors.Is(err, sponsor.ErrSponsorNotFound) {
			return summary, err
		}

		sp, err := sponsor.NewSponsor(fx.Name, fx.Slug, fx.LogoURL, fx.CouponCode)
		if err != nil {
			return summary, fmt.Errorf("sponsor %q: %w", fx.Slug, err)
		}
		if err := s.sponsors.Create(ctx, sp); err != nil {
			return summary, err
		}
		s.logger.Infow("seeded sponsor", "sponsor_id", sp.ID(), "slug", sp.Slug())
		summary.SponsorsCreated++
	}

	for _, fx := range f.Participants {
		p, err := participant.NewParticipant(fx.Name, fx.Email)
		if err != nil {
			return summary, fmt.Errorf("participant %q: %w", fx.Email, err)
		}
		if _, err := s.participants.GetByEmail(ctx, p.Email()); err == nil {
			summary.ParticipantsSkipped++
			continue
		} else if !errors.Is(err, participant.ErrParticipantNotFound) {
			return summary, err
		}

		if err := s.participants.Create(ctx, p); err != nil {
			return summary, err
		}
		s.logger.Infow("seeded participant", "participant_id", p.ID())
		summary.ParticipantsCreated++
	}

	for _, fx := range f.Raffles {
		created, err := s.createRaffle.Execute(ctx, usecases.CreateRaffleCommand{
			Title:           fx.Title,
			Description:     fx.Description,
			PrizeName:       fx.PrizeName,
			PrizeImageURL:   fx.PrizeImageURL,
			PrizeValueCents: fx.PrizeValueCents,
			Numbering:       fx.Numbering,
			StartDate:       fx.StartDate,
			EndDate:         fx.EndDate,
		})
		if err != nil {
			return summary, fmt.Errorf("raffle %q: %w", fx.Title, err)
		}
		summary.RafflesCreated++
		summary.RaffleIDs = append(summary.RaffleIDs, created.ID)
	}

	return summary, nil
}
