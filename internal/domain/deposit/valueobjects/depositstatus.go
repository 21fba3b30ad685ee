package valueobjects

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusRejected DepositStatus = "rejected"
)

func (s DepositStatus) IsValid() bool {
	switch s {
	case DepositStatusPending, DepositStatusApproved, DepositStatusRejected:
		return true
	default:
		return false
	}
}

func (s DepositStatus) IsPending() bool {
	return s == DepositStatusPending
}

func (s DepositStatus) IsApproved() bool {
	return s == DepositStatusApproved
}

func (s DepositStatus) IsRejected() bool {
	return s == DepositStatusRejected
}

func (s DepositStatus) String() string {
	return string(s)
}
