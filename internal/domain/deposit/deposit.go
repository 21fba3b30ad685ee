package deposit

import (
	"fmt"
	"strings"
	"time"

	vo "raffle/internal/domain/deposit/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/shared/biztime"
	"raffle/internal/shared/id"
)

// Deposit is a participant's payment through a sponsor towards a raffle.
// quotaCount is computed once at submission and never recomputed.
type Deposit struct {
	id              string
	raffleID        string
	sponsorID       string
	participantID   string
	amount          sharedvo.Money
	quotaCount      int
	proofRef        string
	status          vo.DepositStatus
	reviewedBy      *string
	reviewedAt      *time.Time
	rejectionReason string

	version   int
	createdAt time.Time
	updatedAt time.Time
}

type NewDepositParams struct {
	RaffleID      string
	SponsorID     string
	ParticipantID string
	Amount        sharedvo.Money
	QuotaCount    int
	ProofRef      string
}

func NewDeposit(p NewDepositParams) (*Deposit, error) {
	if p.RaffleID == "" || p.SponsorID == "" || p.ParticipantID == "" {
		return nil, fmt.Errorf("%w: raffle, sponsor and participant are required", ErrInvalidDeposit)
	}
	if p.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidDeposit)
	}
	if p.QuotaCount < 1 {
		return nil, ErrAmountBelowMinimum
	}

	depositID, err := id.NewDepositID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate deposit id: %w", err)
	}

	now := biztime.NowUTC()
	return &Deposit{
		id:            depositID,
		raffleID:      p.RaffleID,
		sponsorID:     p.SponsorID,
		participantID: p.ParticipantID,
		amount:        p.Amount,
		quotaCount:    p.QuotaCount,
		proofRef:      strings.TrimSpace(p.ProofRef),
		status:        vo.DepositStatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// Approve moves PENDING to APPROVED.
func (d *Deposit) Approve(reviewer string, at time.Time) error {
	if !d.status.IsPending() {
		return fmt.Errorf("%w: cannot approve deposit with status %s", ErrInvalidDepositState, d.status)
	}

	d.status = vo.DepositStatusApproved
	d.markReviewed(reviewer, at)
	return nil
}

// Reject moves PENDING or APPROVED to REJECTED. The caller is responsible for
// removing the entries of a previously approved deposit in the same
// transaction. It reports whether the deposit had been approved.
func (d *Deposit) Reject(reviewer, reason string, at time.Time) (wasApproved bool, err error) {
	if d.status.IsRejected() {
		return false, fmt.Errorf("%w: deposit already rejected", ErrInvalidDepositState)
	}

	wasApproved = d.status.IsApproved()
	d.status = vo.DepositStatusRejected
	d.rejectionReason = strings.TrimSpace(reason)
	d.markReviewed(reviewer, at)
	return wasApproved, nil
}

func (d *Deposit) markReviewed(reviewer string, at time.Time) {
	if reviewer != "" {
		d.reviewedBy = &reviewer
	}
	d.reviewedAt = &at
	d.updatedAt = at
	d.version++
}

func (d *Deposit) ID() string               { return d.id }
func (d *Deposit) RaffleID() string         { return d.raffleID }
func (d *Deposit) SponsorID() string        { return d.sponsorID }
func (d *Deposit) ParticipantID() string    { return d.participantID }
func (d *Deposit) Amount() sharedvo.Money   { return d.amount }
func (d *Deposit) QuotaCount() int          { return d.quotaCount }
func (d *Deposit) ProofRef() string         { return d.proofRef }
func (d *Deposit) Status() vo.DepositStatus { return d.status }
func (d *Deposit) ReviewedBy() *string      { return d.reviewedBy }
func (d *Deposit) ReviewedAt() *time.Time   { return d.reviewedAt }
func (d *Deposit) RejectionReason() string  { return d.rejectionReason }
func (d *Deposit) Version() int             { return d.version }
func (d *Deposit) CreatedAt() time.Time     { return d.createdAt }
func (d *Deposit) UpdatedAt() time.Time     { return d.updatedAt }

type DepositReconstructParams struct {
	ID              string
	RaffleID        string
	SponsorID       string
	ParticipantID   string
	Amount          sharedvo.Money
	QuotaCount      int
	ProofRef        string
	Status          vo.DepositStatus
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason string
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructDeposit(p DepositReconstructParams) *Deposit {
	return &Deposit{
		id:              p.ID,
		raffleID:        p.RaffleID,
		sponsorID:       p.SponsorID,
		participantID:   p.ParticipantID,
		amount:          p.Amount,
		quotaCount:      p.QuotaCount,
		proofRef:        p.ProofRef,
		status:          p.Status,
		reviewedBy:      p.ReviewedBy,
		reviewedAt:      p.ReviewedAt,
		rejectionReason: p.RejectionReason,
		version:         p.Version,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}
}
