package valueobjects

// NotificationStatus tracks the winner notification after a draw.
type NotificationStatus string

const (
	NotificationNone    NotificationStatus = ""
	NotificationPending NotificationStatus = "pending"
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
)

// NeedsRetry reports whether the retry job should pick the raffle up.
func (s NotificationStatus) NeedsRetry() bool {
	return s == NotificationPending || s == NotificationFailed
}

func (s NotificationStatus) String() string {
	return string(s)
}
