package stripe

import "strings"

// Stripe-ish normalization used ONLY for payment intent statuses coming back
// from the gateway or its webhooks.
func NormalizeIntentStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return "none"
	case "succeeded":
		return "succeeded"
	case "processing", "requires_action", "requires_confirmation", "requires_payment_method":
		return "pending"
	case "canceled":
		return "failed"
	default:
		return strings.TrimSpace(s)
	}
}
