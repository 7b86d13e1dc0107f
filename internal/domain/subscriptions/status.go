package subscriptions

import "time"

// State is the user-facing classification of a subscription record.
type State string

const (
	StateNone              State = "no_subscription"
	StateActive            State = "active"
	StateCancelledInWindow State = "cancelled_in_window"
	StateCancelledExpired  State = "cancelled_expired"
)

// Classify maps a raw subscription record plus the current time into a
// user-facing state. A cancelled subscription keeps its access until the
// already-paid end date; the end date itself still counts as in-window.
func Classify(sub *Subscription, now time.Time) State {
	if sub == nil || sub.Status == StatusNone {
		return StateNone
	}

	switch sub.Status {
	case StatusActive:
		return StateActive
	case StatusCancelled:
		if !now.After(sub.EndDate) {
			return StateCancelledInWindow
		}
		return StateCancelledExpired
	}

	return StateNone
}

// HasAccess reports whether paywalled actions (playback, downloads) are
// permitted in the given state.
func HasAccess(state State) bool {
	return state == StateActive || state == StateCancelledInWindow
}
