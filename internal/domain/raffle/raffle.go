package raffle

import (
	"fmt"
	"strings"
	"time"

	vo "raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/id"
)

// Draw resolutions recorded in DrawAudit.
const (
	ResolvedByTicketNumber = "ticket_number"
	ResolvedByRank         = "rank"
)

// DrawAudit records how a winner was selected. WinningNumber is the value
// drawn in [1, TotalEntries]; Resolution says whether it was looked up as a
// ticket number or as a rank in ascending ticket order.
type DrawAudit struct {
	TotalEntries  int64                `json:"total_entries"`
	WinningNumber int64                `json:"winning_number"`
	Strategy      vo.NumberingStrategy `json:"strategy"`
	Resolution    string               `json:"resolution"`
}

// Raffle owns its lifecycle and, once drawn, its immutable outcome.
// Winner, winning ticket number and draw date are set together exactly once.
type Raffle struct {
	id            string
	title         string
	description   string
	prizeName     string
	prizeImageURL string
	prizeValue    sharedvo.Money
	quotaValue    sharedvo.Money
	numbering     vo.NumberingStrategy
	startDate     time.Time
	endDate       time.Time
	status        vo.RaffleStatus

	winnerID            *string
	winningTicketNumber *int64
	drawDate            *time.Time
	drawAudit           *DrawAudit
	notificationStatus  vo.NotificationStatus

	version   int
	createdAt time.Time
	updatedAt time.Time
}

type NewRaffleParams struct {
	Title         string
	Description   string
	PrizeName     string
	PrizeImageURL string
	PrizeValue    sharedvo.Money
	QuotaValue    sharedvo.Money
	Numbering     vo.NumberingStrategy
	StartDate     time.Time
	EndDate       time.Time
}

func NewRaffle(p NewRaffleParams) (*Raffle, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRaffle)
	}
	if !p.EndDate.After(p.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalidRaffle)
	}
	if p.PrizeValue.IsNegative() {
		return nil, fmt.Errorf("%w: prize value must not be negative", ErrInvalidRaffle)
	}
	if !p.QuotaValue.IsPositive() {
		return nil, fmt.Errorf("%w: quota value must be positive", ErrInvalidRaffle)
	}
	numbering := p.Numbering
	if numbering == "" {
		numbering = vo.NumberingSequential
	}
	if !numbering.IsValid() {
		return nil, fmt.Errorf("%w: unknown numbering strategy %q", ErrInvalidRaffle, numbering)
	}

	raffleID, err := id.NewRaffleID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate raffle id: %w", err)
	}

	now := biztime.NowUTC()
	return &Raffle{
		id:            raffleID,
		title:         title,
		description:   p.Description,
		prizeName:     strings.TrimSpace(p.PrizeName),
		prizeImageURL: p.PrizeImageURL,
		prizeValue:    p.PrizeValue,
		quotaValue:    p.QuotaValue,
		numbering:     numbering,
		startDate:     p.StartDate.UTC(),
		endDate:       p.EndDate.UTC(),
		status:        vo.RaffleStatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// EnsureOpenForEntries fails when entries can no longer be added or removed.
func (r *Raffle) EnsureOpenForEntries() error {
	switch {
	case r.status.IsCompleted():
		return ErrRaffleAlreadyDrawn
	case r.status.IsCancelled():
		return ErrRaffleCancelled
	}
	return nil
}

// AcceptsDepositsAt checks the raffle is open and now lies in its window.
func (r *Raffle) AcceptsDepositsAt(now time.Time) error {
	if err := r.EnsureOpenForEntries(); err != nil {
		return err
	}
	if now.Before(r.startDate) || now.After(r.endDate) {
		return ErrRaffleNotActive
	}
	return nil
}

// RecordDraw stores the winner. It is the only way into COMPLETED.
func (r *Raffle) RecordDraw(winnerID string, ticketNumber int64, audit DrawAudit, drawnAt time.Time) error {
	if err := r.EnsureOpenForEntries(); err != nil {
		return err
	}
	if winnerID == "" {
		return fmt.Errorf("%w: winner is required", ErrWinningEntryNotFound)
	}

	r.status = vo.RaffleStatusCompleted
	r.winnerID = &winnerID
	r.winningTicketNumber = &ticketNumber
	r.drawDate = &drawnAt
	r.drawAudit = &audit
	r.notificationStatus = vo.NotificationPending
	r.updatedAt = drawnAt
	r.version++

	return nil
}

func (r *Raffle) Cancel() error {
	if r.status.IsCancelled() {
		return nil
	}
	if r.status.IsCompleted() {
		return ErrRaffleAlreadyDrawn
	}

	r.status = vo.RaffleStatusCancelled
	r.updatedAt = biztime.NowUTC()
	r.version++

	return nil
}

func (r *Raffle) SetNotificationStatus(s vo.NotificationStatus) {
	r.notificationStatus = s
	r.updatedAt = biztime.NowUTC()
}

func (r *Raffle) HasWinner() bool {
	return r.winnerID != nil && r.winningTicketNumber != nil
}

// WinChancePercent is the probability, in percent, that a single ticket won.
func (r *Raffle) WinChancePercent() float64 {
	if r.drawAudit == nil || r.drawAudit.TotalEntries == 0 {
		return 0
	}
	return 100 / float64(r.drawAudit.TotalEntries)
}

func (r *Raffle) ID() string                                { return r.id }
func (r *Raffle) Title() string                             { return r.title }
func (r *Raffle) Description() string                       { return r.description }
func (r *Raffle) PrizeName() string                         { return r.prizeName }
func (r *Raffle) PrizeImageURL() string                     { return r.prizeImageURL }
func (r *Raffle) PrizeValue() sharedvo.Money                { return r.prizeValue }
func (r *Raffle) QuotaValue() sharedvo.Money                { return r.quotaValue }
func (r *Raffle) Numbering() vo.NumberingStrategy           { return r.numbering }
func (r *Raffle) StartDate() time.Time                      { return r.startDate }
func (r *Raffle) EndDate() time.Time                        { return r.endDate }
func (r *Raffle) Status() vo.RaffleStatus                   { return r.status }
func (r *Raffle) WinnerID() *string                         { return r.winnerID }
func (r *Raffle) WinningTicketNumber() *int64               { return r.winningTicketNumber }
func (r *Raffle) DrawDate() *time.Time                      { return r.drawDate }
func (r *Raffle) DrawAudit() *DrawAudit                     { return r.drawAudit }
func (r *Raffle) NotificationStatus() vo.NotificationStatus { return r.notificationStatus }
func (r *Raffle) Version() int                              { return r.version }
func (r *Raffle) CreatedAt() time.Time                      { return r.createdAt }
func (r *Raffle) UpdatedAt() time.Time                      { return r.updatedAt }

// RaffleReconstructParams carries persisted state back into an aggregate.
type RaffleReconstructParams struct {
	ID                  string
	Title               string
	Description         string
	PrizeName           string
	PrizeImageURL       string
	PrizeValue          sharedvo.Money
	QuotaValue          sharedvo.Money
	Numbering           vo.NumberingStrategy
	StartDate           time.Time
	EndDate             time.Time
	Status              vo.RaffleStatus
	WinnerID            *string
	WinningTicketNumber *int64
	DrawDate            *time.Time
	DrawAudit           *DrawAudit
	NotificationStatus  vo.NotificationStatus
	Version             int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func ReconstructRaffle(p RaffleReconstructParams) *Raffle {
	return &Raffle{
		id:                  p.ID,
		title:               p.Title,
		description:         p.Description,
		prizeName:           p.PrizeName,
		prizeImageURL:       p.PrizeImageURL,
		prizeValue:          p.PrizeValue,
		quotaValue:          p.QuotaValue,
		numbering:           p.Numbering,
		startDate:           p.StartDate,
		endDate:             p.EndDate,
		status:              p.Status,
		winnerID:            p.WinnerID,
		winningTicketNumber: p.WinningTicketNumber,
		drawDate:            p.DrawDate,
		drawAudit:           p.DrawAudit,
		notificationStatus:  p.NotificationStatus,
		version:             p.Version,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
	}
}
