package subscriptions

import "errors"

// Pre-flight validation failures. Handlers surface these before any call to
// the payment gateway is attempted.
var (
	ErrInvalidTransition = errors.New("subscription: invalid state transition")
	ErrExpiredWindow     = errors.New("subscription: access window has expired")
	ErrNoMatchingPlan    = errors.New("subscription: no matching upgrade plan")
)
