package billing

import (
	"time"

	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
)

// orderAmount prices a checkout order. A fresh purchase charges the plan's
// full price; an upgrade charges whatever the policy engine quotes. ok is
// false when an upgrade was requested but is not available.
func orderAmount(sub *subscriptions.Subscription, target *plans.Plan, isUpgrade bool, now time.Time) (amount int64, offer subscriptions.UpgradeOffer, ok bool) {
	if !isUpgrade {
		return target.Price, subscriptions.UpgradeOffer{}, true
	}

	if sub == nil || sub.Plan == nil {
		return 0, subscriptions.UpgradeOffer{Reason: subscriptions.ReasonNotEligible}, false
	}

	offer = subscriptions.EvaluateUpgrade(sub, sub.Plan, target, now)
	return offer.AmountDue, offer, offer.Eligible
}
