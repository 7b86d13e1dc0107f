package users

import (
	"time"

	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
)

func BuildPlanDTO(p *plans.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:      p.ID,
		Name:    p.Name,
		Tier:    plans.PlanTier(p),
		Billing: p.Billing,
		Price:   p.Price,
	}
}

func BuildSubscriptionDTO(sub *subscriptions.Subscription, now time.Time) *SubscriptionDTO {
	if sub == nil || sub.Status == subscriptions.StatusNone {
		return nil
	}
	start := sub.StartDate
	end := sub.EndDate
	return &SubscriptionDTO{
		Status:      sub.Status,
		State:       string(subscriptions.Classify(sub, now)),
		StartDate:   &start,
		EndDate:     &end,
		AutoRenew:   sub.AutoRenew,
		DaysElapsed: subscriptions.DaysSinceStart(sub, now),
	}
}

// BuildUpgradeDTO surfaces the advisory upgrade offer on the account screen
// so every surface shows the same pricing as the subscription page.
func BuildUpgradeDTO(sub *subscriptions.Subscription, catalog []plans.Plan, now time.Time) *UpgradeDTO {
	if sub == nil || sub.Plan == nil {
		return nil
	}

	target := subscriptions.FindUpgradeTarget(catalog, sub.Plan)
	offer := subscriptions.EvaluateUpgrade(sub, sub.Plan, target, now)

	dto := &UpgradeDTO{
		Eligible:  offer.Eligible,
		Reason:    offer.Reason,
		AmountDue: offer.AmountDue,
	}
	if offer.To != nil {
		id := offer.To.ID
		dto.TargetPlanID = &id
	}
	return dto
}
