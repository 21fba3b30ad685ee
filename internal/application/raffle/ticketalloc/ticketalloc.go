// Package ticketalloc converts deposit amounts into quota counts and issues
// ticket numbers that never collide within a raffle.
//
// Allocation must run inside the transaction that holds the raffle row lock
// and inserts the entries; otherwise two approvals could read the same
// maximum and issue overlapping numbers.
package ticketalloc

import (
	"context"
	"fmt"

	"raffle/internal/domain/raffle"
	vo "raffle/internal/domain/raffle/valueobjects"
	sharedvo "raffle/internal/domain/shared/valueobjects"
	"raffle/internal/shared/logger"
	"raffle/internal/shared/rng"
)

const (
	DefaultSparseMaxNumber         = 1_000_000
	DefaultSparseAttemptsPerTicket = 100
)

// ComputeQuotas returns floor(amount / quotaValue). Amounts below one quota,
// negative amounts and a non-positive quota value all yield 0, which callers
// must treat as "below minimum".
func ComputeQuotas(amount, quotaValue sharedvo.Money) int {
	if quotaValue.AmountInCents() <= 0 || amount.AmountInCents() <= 0 {
		return 0
	}
	return int(amount.AmountInCents() / quotaValue.AmountInCents())
}

// Sequential returns count consecutive numbers starting at currentMax+1.
func Sequential(currentMax int64, count int) []int64 {
	numbers := make([]int64, count)
	for i := range numbers {
		numbers[i] = currentMax + int64(i) + 1
	}
	return numbers
}

// SparseRandom draws count distinct numbers in [1, maxNumber] that are not in
// existing. It gives up after count*attemptsPerTicket draws and then returns
// no numbers at all.
func SparseRandom(src rng.Source, count int, existing map[int64]struct{}, maxNumber, attemptsPerTicket int) ([]int64, error) {
	if count > maxNumber-len(existing) {
		return nil, fmt.Errorf("%w: %d requested, %d free", raffle.ErrTicketAllocationExhausted, count, maxNumber-len(existing))
	}

	taken := make(map[int64]struct{}, count)
	numbers := make([]int64, 0, count)
	budget := count * attemptsPerTicket

	for attempt := 0; attempt < budget && len(numbers) < count; attempt++ {
		n := int64(src.IntN(maxNumber)) + 1
		if _, ok := existing[n]; ok {
			continue
		}
		if _, ok := taken[n]; ok {
			continue
		}
		taken[n] = struct{}{}
		numbers = append(numbers, n)
	}

	if len(numbers) < count {
		return nil, fmt.Errorf("%w: found %d of %d after %d attempts", raffle.ErrTicketAllocationExhausted, len(numbers), count, budget)
	}
	return numbers, nil
}

// Allocator issues ticket numbers for one raffle.
type Allocator interface {
	Allocate(ctx context.Context, r *raffle.Raffle, count int) ([]int64, error)
}

type Config struct {
	SparseMaxNumber         int
	SparseAttemptsPerTicket int
}

// RepositoryAllocator reads the issued numbers through the entry repository
// and applies the raffle's numbering strategy.
type RepositoryAllocator struct {
	entries raffle.EntryRepository
	src     rng.Source
	cfg     Config
	logger  logger.Interface
}

var _ Allocator = (*RepositoryAllocator)(nil)

func NewRepositoryAllocator(entries raffle.EntryRepository, src rng.Source, cfg Config, log logger.Interface) *RepositoryAllocator {
	if cfg.SparseMaxNumber <= 0 {
		cfg.SparseMaxNumber = DefaultSparseMaxNumber
	}
	if cfg.SparseAttemptsPerTicket <= 0 {
		cfg.SparseAttemptsPerTicket = DefaultSparseAttemptsPerTicket
	}
	return &RepositoryAllocator{
		entries: entries,
		src:     src,
		cfg:     cfg,
		logger:  log,
	}
}

func (a *RepositoryAllocator) Allocate(ctx context.Context, r *raffle.Raffle, count int) ([]int64, error) {
	if count < 1 {
		return nil, fmt.Errorf("quota count must be positive, got %d", count)
	}

	switch r.Numbering() {
	case vo.NumberingSparseRandom:
		issued, err := a.entries.TicketNumbers(ctx, r.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load issued ticket numbers: %w", err)
		}
		existing := make(map[int64]struct{}, len(issued))
		for _, n := range issued {
			existing[n] = struct{}{}
		}

		numbers, err := SparseRandom(a.src, count, existing, a.cfg.SparseMaxNumber, a.cfg.SparseAttemptsPerTicket)
		if err != nil {
			a.logger.Warnw("sparse ticket allocation exhausted",
				"raffle_id", r.ID(),
				"requested", count,
				"issued", len(issued),
				"error", err,
			)
			return nil, err
		}
		return numbers, nil

	default:
		currentMax, err := a.entries.MaxTicketNumber(ctx, r.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load max ticket number: %w", err)
		}
		numbers := Sequential(currentMax, count)
		a.logger.Debugw("sequential tickets allocated",
			"raffle_id", r.ID(),
			"from", numbers[0],
			"to", numbers[len(numbers)-1],
		)
		return numbers, nil
	}
}
