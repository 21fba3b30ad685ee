package deposit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "raffle/internal/domain/deposit/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
)

func validDeposit(t *testing.T) *Deposit {
	t.Helper()
	d, err := NewDeposit(NewDepositParams{
		RaffleID:      "rfl_1",
		SponsorID:     "spn_1",
		ParticipantID: "usr_1",
		Amount:        sharedvo.NewMoney(4700, "BRL"),
		QuotaCount:    3,
		ProofRef:      " receipts/abc.png ",
	})
	require.NoError(t, err)
	return d
}

func TestNewDeposit(t *testing.T) {
	d := validDeposit(t)

	assert.True(t, strings.HasPrefix(d.ID(), "dep_"))
	assert.Equal(t, vo.DepositStatusPending, d.Status())
	assert.Equal(t, 3, d.QuotaCount())
	assert.Equal(t, "receipts/abc.png", d.ProofRef())
	assert.Nil(t, d.ReviewedAt())
}

func TestNewDeposit_ZeroQuotasRefused(t *testing.T) {
	_, err := NewDeposit(NewDepositParams{
		RaffleID:      "rfl_1",
		SponsorID:     "spn_1",
		ParticipantID: "usr_1",
		Amount:        sharedvo.NewMoney(1000, "BRL"),
		QuotaCount:    0,
	})
	assert.ErrorIs(t, err, ErrAmountBelowMinimum)
}

func TestNewDeposit_MissingReferences(t *testing.T) {
	_, err := NewDeposit(NewDepositParams{RaffleID: "rfl_1", QuotaCount: 1})
	assert.ErrorIs(t, err, ErrInvalidDeposit)
}

func TestDeposit_Approve(t *testing.T) {
	d := validDeposit(t)
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, d.Approve("usr_admin", at))

	assert.Equal(t, vo.DepositStatusApproved, d.Status())
	assert.Equal(t, "usr_admin", *d.ReviewedBy())
	assert.Equal(t, at, *d.ReviewedAt())
	assert.Equal(t, 1, d.Version())

	assert.ErrorIs(t, d.Approve("usr_admin", at), ErrInvalidDepositState)
}

func TestDeposit_Reject(t *testing.T) {
	tests := []struct {
		name            string
		approveFirst    bool
		wantWasApproved bool
	}{
		{"from pending", false, false},
		{"from approved", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDeposit(t)
			if tt.approveFirst {
				require.NoError(t, d.Approve("usr_admin", time.Now()))
			}

			wasApproved, err := d.Reject("usr_admin", " blurry receipt ", time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.wantWasApproved, wasApproved)
			assert.Equal(t, vo.DepositStatusRejected, d.Status())
			assert.Equal(t, "blurry receipt", d.RejectionReason())
		})
	}
}

func TestDeposit_RejectedIsTerminal(t *testing.T) {
	d := validDeposit(t)
	_, err := d.Reject("usr_admin", "", time.Now())
	require.NoError(t, err)

	_, err = d.Reject("usr_admin", "", time.Now())
	assert.ErrorIs(t, err, ErrInvalidDepositState)
	assert.ErrorIs(t, d.Approve("usr_admin", time.Now()), ErrInvalidDepositState)
}
