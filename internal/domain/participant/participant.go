// Package participant holds the contact details the draw needs to notify a
// winner. Account management lives outside this service.
package participant

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"raffle/internal/shared/biztime"
	"raffle/internal/shared/id"
)

var ErrParticipantNotFound = errors.New("participant not found")

type Participant struct {
	id        string
	name      string
	email     string
	createdAt time.Time
}

func NewParticipant(name, email string) (*Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("participant name is required")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("invalid participant email: %w", err)
	}
	participantID, err := id.NewParticipantID()
	if err != nil {
		return nil, err
	}
	return &Participant{
		id:        participantID,
		name:      name,
		email:     addr.Address,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructParticipant(id, name, email string, createdAt time.Time) *Participant {
	return &Participant{id: id, name: name, email: email, createdAt: createdAt}
}

func (p *Participant) ID() string           { return p.id }
func (p *Participant) Name() string         { return p.name }
func (p *Participant) Email() string        { return p.email }
func (p *Participant) CreatedAt() time.Time { return p.createdAt }

type Repository interface {
	Create(ctx context.Context, p *Participant) error
	// GetByID returns ErrParticipantNotFound when missing.
	GetByID(ctx context.Context, id string) (*Participant, error)
	GetByEmail(ctx context.Context, email string) (*Participant, error)
}
