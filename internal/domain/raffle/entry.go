package raffle

import (
	"fmt"
	"time"
)

// Entry is one ticket. It belongs to exactly one deposit for its lifetime and
// its ticket number is unique within the raffle.
type Entry struct {
	id            uint
	raffleID      string
	participantID string
	depositID     string
	ticketNumber  int64
	createdAt     time.Time
}

func NewEntry(raffleID, participantID, depositID string, ticketNumber int64, createdAt time.Time) (*Entry, error) {
	if raffleID == "" || participantID == "" || depositID == "" {
		return nil, fmt.Errorf("entry requires raffle, participant and deposit")
	}
	if ticketNumber < 1 {
		return nil, fmt.Errorf("ticket number must be positive, got %d", ticketNumber)
	}
	return &Entry{
		raffleID:      raffleID,
		participantID: participantID,
		depositID:     depositID,
		ticketNumber:  ticketNumber,
		createdAt:     createdAt,
	}, nil
}

func ReconstructEntry(id uint, raffleID, participantID, depositID string, ticketNumber int64, createdAt time.Time) *Entry {
	return &Entry{
		id:            id,
		raffleID:      raffleID,
		participantID: participantID,
		depositID:     depositID,
		ticketNumber:  ticketNumber,
		createdAt:     createdAt,
	}
}

func (e *Entry) ID() uint              { return e.id }
func (e *Entry) RaffleID() string      { return e.raffleID }
func (e *Entry) ParticipantID() string { return e.participantID }
func (e *Entry) DepositID() string     { return e.depositID }
func (e *Entry) TicketNumber() int64   { return e.ticketNumber }
func (e *Entry) CreatedAt() time.Time  { return e.createdAt }

// SetID is used by repositories after insert.
func (e *Entry) SetID(id uint) {
	e.id = id
}
