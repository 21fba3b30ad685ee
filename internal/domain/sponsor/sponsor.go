// Package sponsor models the counterparty a deposit is paid through. Sponsors
// only matter for attribution; the draw never looks at them.
package sponsor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"raffle/internal/shared/biztime"
	"raffle/internal/shared/id"
)

var (
	ErrSponsorNotFound = errors.New("sponsor not found")
	ErrSponsorInactive = errors.New("sponsor is inactive")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Sponsor struct {
	id         string
	name       string
	slug       string
	logoURL    string
	couponCode string
	active     bool
	createdAt  time.Time
}

func NewSponsor(name, slug, logoURL, couponCode string) (*Sponsor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("sponsor name is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid sponsor slug %q", slug)
	}
	sponsorID, err := id.NewSponsorID()
	if err != nil {
		return nil, err
	}
	return &Sponsor{
		id:         sponsorID,
		name:       name,
		slug:       slug,
		logoURL:    logoURL,
		couponCode: strings.ToUpper(strings.TrimSpace(couponCode)),
		active:     true,
		createdAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructSponsor(id, name, slug, logoURL, couponCode string, active bool, createdAt time.Time) *Sponsor {
	return &Sponsor{
		id:         id,
		name:       name,
		slug:       slug,
		logoURL:    logoURL,
		couponCode: couponCode,
		active:     active,
		createdAt:  createdAt,
	}
}

// EnsureActive fails for deactivated sponsors.
func (s *Sponsor) EnsureActive() error {
	if !s.active {
		return ErrSponsorInactive
	}
	return nil
}

func (s *Sponsor) Deactivate() {
	s.active = false
}

func (s *Sponsor) ID() string           { return s.id }
func (s *Sponsor) Name() string         { return s.name }
func (s *Sponsor) Slug() string         { return s.slug }
func (s *Sponsor) LogoURL() string      { return s.logoURL }
func (s *Sponsor) CouponCode() string   { return s.couponCode }
func (s *Sponsor) IsActive() bool       { return s.active }
func (s *Sponsor) CreatedAt() time.Time { return s.createdAt }

type Repository interface {
	Create(ctx context.Context, s *Sponsor) error
	// GetByID returns ErrSponsorNotFound when missing.
	GetByID(ctx context.Context, id string) (*Sponsor, error)
	GetBySlug(ctx context.Context, slug string) (*Sponsor, error)
	// ListActive returns active sponsors ordered by name.
	ListActive(ctx context.Context) ([]*Sponsor, error)
}
