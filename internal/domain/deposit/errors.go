package deposit

import "errors"

var (
	ErrDepositNotFound = errors.New("deposit not found")
	// ErrInvalidDepositState is returned for a transition the current status
	// does not allow.
	ErrInvalidDepositState = errors.New("invalid deposit state")
	// ErrAmountBelowMinimum is returned when the amount buys zero quotas.
	ErrAmountBelowMinimum = errors.New("amount below minimum, no tickets issued")
	ErrInvalidDeposit     = errors.New("invalid deposit")
)
