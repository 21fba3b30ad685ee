package valueobjects

// NumberingStrategy decides how ticket numbers are issued for a raffle and,
// correspondingly, how a drawn winning number is resolved to an entry.
// It is fixed when the raffle is created.
type NumberingStrategy string

const (
	// NumberingSequential issues max+1..max+count. Ticket numbers form the
	// dense range 1..N, so the drawn number is looked up literally.
	NumberingSequential NumberingStrategy = "sequential"
	// NumberingSparseRandom issues random numbers in 1..SparseMaxNumber.
	// The drawn number is a 1-based rank over entries ordered by ticket number.
	NumberingSparseRandom NumberingStrategy = "sparse_random"
)

func (n NumberingStrategy) IsValid() bool {
	return n == NumberingSequential || n == NumberingSparseRandom
}

// ResolvesByRank reports whether a winning number must be treated as a rank
// rather than a ticket number.
func (n NumberingStrategy) ResolvesByRank() bool {
	return n == NumberingSparseRandom
}

func (n NumberingStrategy) String() string {
	return string(n)
}

// ParseNumberingStrategy falls back to sequential for empty input.
func ParseNumberingStrategy(s string) (NumberingStrategy, bool) {
	if s == "" {
		return NumberingSequential, true
	}
	n := NumberingStrategy(s)
	return n, n.IsValid()
}
