package usecases

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
)

func activeRaffle(id string, numbering vo.NumberingStrategy) *raffle.Raffle {
	now := time.Now().UTC()
	return raffle.ReconstructRaffle(raffle.RaffleReconstructParams{
		ID:         id,
		Title:      "Kit churrasco",
		PrizeName:  "Kit churrasco",
		PrizeValue: sharedvo.NewMoney(45000, "BRL"),
		QuotaValue: sharedvo.NewMoney(1500, "BRL"),
		Numbering:  numbering,
		StartDate:  now.Add(-24 * time.Hour),
		EndDate:    now.Add(24 * time.Hour),
		Status:     vo.RaffleStatusActive,
		CreatedAt:  now.Add(-24 * time.Hour),
		UpdatedAt:  now.Add(-24 * time.Hour),
	})
}

func completedRaffle(id string, winnerID string, ticket int64, drawnAt time.Time) *raffle.Raffle {
	r := activeRaffle(id, vo.NumberingSequential)
	audit := raffle.DrawAudit{TotalEntries: 5, WinningNumber: ticket, Strategy: vo.NumberingSequential, Resolution: raffle.ResolvedByTicketNumber}
	if err := r.RecordDraw(winnerID, ticket, audit, drawnAt); err != nil {
		panic(err)
	}
	return r
}

// entriesFor builds one entry per ticket number, owned by participant
// "usr_<number>".
func entriesFor(t *testing.T, raffleID string, numbers ...int64) []*raffle.Entry {
	t.Helper()
	out := make([]*raffle.Entry, len(numbers))
	for i, n := range numbers {
		e, err := raffle.NewEntry(raffleID, participantFor(n), "dep_1", n, time.Now().UTC())
		require.NoError(t, err)
		out[i] = e
	}
	return out
}

func participantFor(n int64) string {
	return fmt.Sprintf("usr_%d", n)
}
