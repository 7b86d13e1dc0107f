package stripewebhooks

import (
	"fmt"

	"streamflix-app/database"
	billingapi "streamflix-app/internal/api/billing"
	"streamflix-app/internal/domain/billing"

	"github.com/stripe/stripe-go/v75"
)

// Authoritative confirmation path: activates the purchased subscription once
// Stripe reports the intent as paid, regardless of whether the client ever
// called verify-payment.
func handlePaymentIntentSucceeded(intent *stripe.PaymentIntent) error {
	var payment billing.Payment
	if err := database.DB.
		Where("stripe_payment_intent_id = ?", intent.ID).
		First(&payment).Error; err != nil {
		return fmt.Errorf("no payment order for intent %s: %w", intent.ID, err)
	}

	if _, err := billingapi.FinalizePayment(&payment); err != nil {
		return err
	}
	return nil
}

func handlePaymentIntentFailed(intent *stripe.PaymentIntent) error {
	res := database.DB.Model(&billing.Payment{}).
		Where("stripe_payment_intent_id = ? AND status = ?", intent.ID, billing.StatusPending).
		Update("status", billing.StatusFailed)
	if res.Error != nil {
		return fmt.Errorf("failed to mark payment failed: %w", res.Error)
	}
	return nil
}
