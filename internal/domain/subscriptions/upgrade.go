package subscriptions

import (
	"time"

	"streamflix-app/internal/domain/plans"
)

// UpgradeWindowDays is the period after subscription start during which
// moving to an advance plan costs only the price difference.
const UpgradeWindowDays = 5

// Upgrade offer reason codes.
const (
	ReasonWithinWindow   = "within-window"
	ReasonOutsideWindow  = "outside-window"
	ReasonNotEligible    = "not-eligible"
	ReasonNoMatchingPlan = "no-matching-plan"
)

// UpgradeOffer is derived fresh on every evaluation and never persisted. It
// is advisory pricing only; the billing service confirms the actual charge.
type UpgradeOffer struct {
	From        *plans.Plan `json:"currentPlan"`
	To          *plans.Plan `json:"targetPlan"`
	Eligible    bool        `json:"eligible"`
	AmountDue   int64       `json:"amountDue"`
	Reason      string      `json:"reason"`
	DaysElapsed int         `json:"daysElapsed"`
}

// DaysSinceStart returns whole days elapsed since the subscription started,
// clamped at zero for clock skew.
func DaysSinceStart(sub *Subscription, now time.Time) int {
	if sub == nil {
		return 0
	}
	days := int(now.Sub(sub.StartDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// EvaluateUpgrade prices a move from the current plan to the target plan.
//
// Within the upgrade window the user pays only the difference. Outside it the
// charge is the sum of both plan prices. That outside-window total matches the
// live billing behavior and is kept as-is until product says otherwise.
func EvaluateUpgrade(sub *Subscription, current, target *plans.Plan, now time.Time) UpgradeOffer {
	offer := UpgradeOffer{
		From:        current,
		To:          target,
		DaysElapsed: DaysSinceStart(sub, now),
	}

	if target == nil {
		offer.Reason = ReasonNoMatchingPlan
		return offer
	}

	eligible := sub != nil &&
		sub.Status == StatusActive &&
		plans.PlanTier(current) == plans.TierBasic &&
		plans.PlanTier(target) == plans.TierAdvance &&
		current.Billing == target.Billing

	if !eligible {
		offer.Reason = ReasonNotEligible
		return offer
	}

	offer.Eligible = true
	if offer.DaysElapsed <= UpgradeWindowDays {
		offer.Reason = ReasonWithinWindow
		offer.AmountDue = target.Price - current.Price
		if offer.AmountDue < 0 {
			offer.AmountDue = 0
		}
	} else {
		offer.Reason = ReasonOutsideWindow
		offer.AmountDue = current.Price + target.Price
	}
	return offer
}

// FindUpgradeTarget picks the first advance plan whose billing cycle matches
// the current plan, in catalog order. Returns nil when none exists.
func FindUpgradeTarget(catalog []plans.Plan, current *plans.Plan) *plans.Plan {
	if current == nil {
		return nil
	}
	for i := range catalog {
		p := &catalog[i]
		if plans.PlanTier(p) == plans.TierAdvance && p.Billing == current.Billing {
			return p
		}
	}
	return nil
}
