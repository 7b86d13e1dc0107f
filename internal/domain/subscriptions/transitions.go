package subscriptions

import "time"

// Cancel validates and applies a grace-period cancellation: access continues
// until the already-scheduled end date, only renewal stops. The input is not
// mutated; callers persist the returned copy once the billing service has
// confirmed the request.
func Cancel(sub Subscription) (Subscription, error) {
	if sub.Status != StatusActive {
		return sub, ErrInvalidTransition
	}

	sub.Status = StatusCancelled
	sub.AutoRenew = false
	// EndDate stays as scheduled
	return sub, nil
}

// Reactivate undoes a cancellation while the original access window is still
// open (the end date itself is still legal).
func Reactivate(sub Subscription, now time.Time) (Subscription, error) {
	if sub.Status != StatusCancelled {
		return sub, ErrInvalidTransition
	}
	if now.After(sub.EndDate) {
		return sub, ErrExpiredWindow
	}

	sub.Status = StatusActive
	sub.AutoRenew = true
	return sub, nil
}
