package usecases_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle/internal/application/deposit/usecases"
	"raffle/internal/application/raffle/ticketalloc"
	raffleusecases "raffle/internal/application/raffle/usecases"
	"raffle/internal/domain/deposit"
	"raffle/internal/domain/participant"
	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/domain/sponsor"
	"raffle/internal/infrastructure/persistence/testdb"
	"raffle/internal/infrastructure/repository"
	"raffle/internal/shared/db"
	apperrors "raffle/internal/shared/errors"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/rng"
)

// workflow wires the review and draw use cases to a real sqlite database.
type workflow struct {
	raffles      *repository.RaffleRepository
	entries      *repository.EntryRepository
	deposits     *repository.DepositRepository
	participants *repository.ParticipantRepository
	sponsors     *repository.SponsorRepository

	submit  *usecases.SubmitDepositUseCase
	approve *usecases.ApproveDepositUseCase
	reject  *usecases.RejectDepositUseCase
	draw    *raffleusecases.DrawRaffleUseCase

	sponsorID string
	seq       int
}

func newWorkflow(t *testing.T, drawSource rng.Source) *workflow {
	t.Helper()
	gdb := testdb.Open(t)
	log := logger.NewNop()
	txMgr := db.NewTransactionManager(gdb)

	w := &workflow{
		raffles:      repository.NewRaffleRepository(gdb),
		entries:      repository.NewEntryRepository(gdb),
		deposits:     repository.NewDepositRepository(gdb),
		participants: repository.NewParticipantRepository(gdb),
		sponsors:     repository.NewSponsorRepository(gdb),
	}
	allocator := ticketalloc.NewRepositoryAllocator(w.entries, rng.NewSeeded(7), ticketalloc.Config{SparseMaxNumber: 500}, log)

	w.submit = usecases.NewSubmitDepositUseCase(w.deposits, w.raffles, w.sponsors, w.participants, nil, log)
	w.approve = usecases.NewApproveDepositUseCase(w.deposits, w.raffles, w.entries, allocator, txMgr, nil, log)
	w.reject = usecases.NewRejectDepositUseCase(w.deposits, w.raffles, w.entries, txMgr, nil, log)
	w.draw = raffleusecases.NewDrawRaffleUseCase(w.raffles, w.entries, txMgr, drawSource, nil, nil, log)

	s, err := sponsor.NewSponsor("Padaria Sol", "padaria-sol", "", "SOL5")
	require.NoError(t, err)
	require.NoError(t, w.sponsors.Create(context.Background(), s))
	w.sponsorID = s.ID()

	return w
}

func (w *workflow) newRaffle(t *testing.T, numbering vo.NumberingStrategy) *raffle.Raffle {
	t.Helper()
	now := time.Now().UTC()
	r, err := raffle.NewRaffle(raffle.NewRaffleParams{
		Title:      "Smart TV 55",
		PrizeName:  "Smart TV",
		PrizeValue: sharedvo.NewMoney(320000, "BRL"),
		QuotaValue: sharedvo.NewMoney(15, "BRL"),
		Numbering:  numbering,
		StartDate:  now.Add(-time.Hour),
		EndDate:    now.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, w.raffles.Create(context.Background(), r))
	return r
}

// submitDeposit registers a fresh participant and submits a deposit for them.
func (w *workflow) submitDeposit(t *testing.T, raffleID string, amountCents int64) string {
	t.Helper()
	ctx := context.Background()

	w.seq++
	p, err := participant.NewParticipant(fmt.Sprintf("Participante %d", w.seq), fmt.Sprintf("p%d@example.com", w.seq))
	require.NoError(t, err)
	require.NoError(t, w.participants.Create(ctx, p))

	d, err := w.submit.Execute(ctx, usecases.SubmitDepositCommand{
		RaffleID:      raffleID,
		SponsorID:     w.sponsorID,
		ParticipantID: p.ID(),
		AmountCents:   amountCents,
	})
	require.NoError(t, err)
	return d.ID
}

func (w *workflow) approveDeposit(t *testing.T, depositID string) []int64 {
	t.Helper()
	result, err := w.approve.Execute(context.Background(), usecases.ApproveDepositCommand{DepositID: depositID, ReviewerID: "usr_admin"})
	require.NoError(t, err)
	return result.TicketNumbers
}

func (w *workflow) ticketNumbers(t *testing.T, raffleID string) []int64 {
	t.Helper()
	numbers, err := w.entries.TicketNumbers(context.Background(), raffleID)
	require.NoError(t, err)
	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	return numbers
}

func TestWorkflow_SequentialTicketsContinueFromMax(t *testing.T) {
	w := newWorkflow(t, rng.New())
	r := w.newRaffle(t, vo.NumberingSequential)

	first := w.approveDeposit(t, w.submitDeposit(t, r.ID(), 150))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, first)

	second := w.approveDeposit(t, w.submitDeposit(t, r.ID(), 47))
	assert.Equal(t, []int64{11, 12, 13}, second)

	count, err := w.entries.CountByRaffle(context.Background(), r.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(13), count)
}

func TestWorkflow_BelowMinimumCreatesNothing(t *testing.T) {
	w := newWorkflow(t, rng.New())
	r := w.newRaffle(t, vo.NumberingSequential)

	p, err := participant.NewParticipant("Bia", "bia@example.com")
	require.NoError(t, err)
	require.NoError(t, w.participants.Create(context.Background(), p))

	_, err = w.submit.Execute(context.Background(), usecases.SubmitDepositCommand{
		RaffleID: r.ID(), SponsorID: w.sponsorID, ParticipantID: p.ID(), AmountCents: 10,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))

	_, total, err := w.deposits.List(context.Background(), depositFilterFor(r.ID()))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, w.ticketNumbers(t, r.ID()))
}

func TestWorkflow_RejectApprovedRemovesItsEntries(t *testing.T) {
	w := newWorkflow(t, rng.New())
	r := w.newRaffle(t, vo.NumberingSequential)

	keep := w.approveDeposit(t, w.submitDeposit(t, r.ID(), 30))
	dropped := w.submitDeposit(t, r.ID(), 45)
	w.approveDeposit(t, dropped)
	after := w.approveDeposit(t, w.submitDeposit(t, r.ID(), 15))
	assert.Equal(t, []int64{6}, after)

	result, err := w.reject.Execute(context.Background(), usecases.RejectDepositCommand{DepositID: dropped, Reason: "pix estornado"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.RemovedEntries)

	remaining := w.ticketNumbers(t, r.ID())
	assert.Equal(t, append(keep, 6), remaining)

	// Numbers of the rejected deposit are never reissued.
	next := w.approveDeposit(t, w.submitDeposit(t, r.ID(), 15))
	assert.Equal(t, []int64{7}, next)

	// The gap makes the draw resolve by rank, so every remaining ticket is
	// reachable.
	drawn, err := w.draw.Execute(context.Background(), raffleusecases.DrawRaffleCommand{RaffleID: r.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(4), drawn.TotalEntries)
	assert.Contains(t, []int64{1, 2, 6, 7}, drawn.WinningTicketNumber)

	stored, err := w.raffles.GetByID(context.Background(), r.ID())
	require.NoError(t, err)
	assert.Equal(t, raffle.ResolvedByRank, stored.DrawAudit().Resolution)
}

func TestWorkflow_ConcurrentApprovalsNeverCollide(t *testing.T) {
	for _, numbering := range []vo.NumberingStrategy{vo.NumberingSequential, vo.NumberingSparseRandom} {
		t.Run(numbering.String(), func(t *testing.T) {
			w := newWorkflow(t, rng.New())
			r := w.newRaffle(t, numbering)

			const deposits = 8
			ids := make([]string, deposits)
			for i := range ids {
				ids[i] = w.submitDeposit(t, r.ID(), int64(15*(i+1)))
			}

			var wg sync.WaitGroup
			errs := make([]error, deposits)
			for i, id := range ids {
				wg.Add(1)
				go func(i int, id string) {
					defer wg.Done()
					_, errs[i] = w.approve.Execute(context.Background(), usecases.ApproveDepositCommand{DepositID: id})
				}(i, id)
			}
			wg.Wait()
			for _, err := range errs {
				require.NoError(t, err)
			}

			numbers := w.ticketNumbers(t, r.ID())
			// 1+2+...+8 quotas
			require.Len(t, numbers, 36)
			seen := make(map[int64]struct{}, len(numbers))
			for _, n := range numbers {
				_, dup := seen[n]
				assert.False(t, dup, "ticket %d issued twice", n)
				seen[n] = struct{}{}
				assert.GreaterOrEqual(t, n, int64(1))
			}
			if numbering == vo.NumberingSequential {
				assert.Equal(t, int64(36), numbers[len(numbers)-1])
			} else {
				assert.LessOrEqual(t, numbers[len(numbers)-1], int64(500))
			}
		})
	}
}

func TestWorkflow_ApprovingTwiceIsRefused(t *testing.T) {
	w := newWorkflow(t, rng.New())
	r := w.newRaffle(t, vo.NumberingSequential)
	id := w.submitDeposit(t, r.ID(), 30)

	w.approveDeposit(t, id)
	_, err := w.approve.Execute(context.Background(), usecases.ApproveDepositCommand{DepositID: id})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
	assert.Len(t, w.ticketNumbers(t, r.ID()), 2)
}

func TestWorkflow_DrawEmptyRaffleLeavesItActive(t *testing.T) {
	w := newWorkflow(t, rng.New())
	r := w.newRaffle(t, vo.NumberingSequential)
	w.submitDeposit(t, r.ID(), 30) // pending deposits own no entries

	_, err := w.draw.Execute(context.Background(), raffleusecases.DrawRaffleCommand{RaffleID: r.ID()})
	require.Error(t, err)
	assert.ErrorIs(t, err, raffle.ErrNoEntries)

	stored, err := w.raffles.GetByID(context.Background(), r.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.RaffleStatusActive, stored.Status())
	assert.Nil(t, stored.WinnerID())
}

func TestWorkflow_DrawIsFinal(t *testing.T) {
	w := newWorkflow(t, &rng.Fixed{Values: []int{2}})
	r := w.newRaffle(t, vo.NumberingSequential)

	winnerDeposit := w.submitDeposit(t, r.ID(), 45)
	w.approveDeposit(t, winnerDeposit)
	other := w.submitDeposit(t, r.ID(), 30)
	w.approveDeposit(t, other)

	first, err := w.draw.Execute(context.Background(), raffleusecases.DrawRaffleCommand{RaffleID: r.ID()})
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.WinningTicketNumber)
	assert.Equal(t, int64(5), first.TotalEntries)

	_, err = w.draw.Execute(context.Background(), raffleusecases.DrawRaffleCommand{RaffleID: r.ID()})
	assert.ErrorIs(t, err, raffle.ErrRaffleAlreadyDrawn)

	stored, err := w.raffles.GetByID(context.Background(), r.ID())
	require.NoError(t, err)
	assert.Equal(t, first.WinnerID, *stored.WinnerID())
	assert.Equal(t, first.WinningTicketNumber, *stored.WinningTicketNumber())
	assert.Equal(t, raffle.ResolvedByTicketNumber, stored.DrawAudit().Resolution)

	// Entries of a drawn raffle are frozen.
	_, err = w.reject.Execute(context.Background(), usecases.RejectDepositCommand{DepositID: winnerDeposit})
	assert.ErrorIs(t, err, raffle.ErrRaffleAlreadyDrawn)

	late := w.newDepositOnDrawnRaffle(t, r.ID())
	_, err = w.approve.Execute(context.Background(), usecases.ApproveDepositCommand{DepositID: late})
	assert.ErrorIs(t, err, raffle.ErrRaffleAlreadyDrawn)
	assert.Len(t, w.ticketNumbers(t, r.ID()), 5)
}

func TestWorkflow_ConcurrentDrawsPickOneWinner(t *testing.T) {
	w := newWorkflow(t, rng.New())
	r := w.newRaffle(t, vo.NumberingSequential)
	for i := 0; i < 4; i++ {
		w.approveDeposit(t, w.submitDeposit(t, r.ID(), 30))
	}

	const callers = 6
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = w.draw.Execute(context.Background(), raffleusecases.DrawRaffleCommand{RaffleID: r.ID()})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, raffle.ErrRaffleAlreadyDrawn)
	}
	assert.Equal(t, 1, succeeded)
}

func depositFilterFor(raffleID string) deposit.Filter {
	return deposit.Filter{RaffleID: raffleID, Page: 1, PageSize: 50}
}

// newDepositOnDrawnRaffle stores a pending deposit directly, since submission
// is closed once a raffle is drawn.
func (w *workflow) newDepositOnDrawnRaffle(t *testing.T, raffleID string) string {
	t.Helper()
	ctx := context.Background()

	w.seq++
	p, err := participant.NewParticipant("Atrasado", fmt.Sprintf("late%d@example.com", w.seq))
	require.NoError(t, err)
	require.NoError(t, w.participants.Create(ctx, p))

	d, err := deposit.NewDeposit(deposit.NewDepositParams{
		RaffleID:      raffleID,
		SponsorID:     w.sponsorID,
		ParticipantID: p.ID(),
		Amount:        sharedvo.NewMoney(30, "BRL"),
		QuotaCount:    2,
	})
	require.NoError(t, err)
	require.NoError(t, w.deposits.Create(ctx, d))
	return d.ID()
}
