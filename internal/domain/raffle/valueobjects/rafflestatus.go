package valueobjects

type RaffleStatus string

const (
	RaffleStatusActive    RaffleStatus = "active"
	RaffleStatusCompleted RaffleStatus = "completed"
	RaffleStatusCancelled RaffleStatus = "cancelled"
)

func (s RaffleStatus) IsValid() bool {
	switch s {
	case RaffleStatusActive, RaffleStatusCompleted, RaffleStatusCancelled:
		return true
	default:
		return false
	}
}

func (s RaffleStatus) IsActive() bool {
	return s == RaffleStatusActive
}

func (s RaffleStatus) IsCompleted() bool {
	return s == RaffleStatusCompleted
}

func (s RaffleStatus) IsCancelled() bool {
	return s == RaffleStatusCancelled
}

// IsFinal reports whether no further transition is possible.
func (s RaffleStatus) IsFinal() bool {
	return s == RaffleStatusCompleted || s == RaffleStatusCancelled
}

func (s RaffleStatus) String() string {
	return string(s)
}
