package subscriptions

import (
	"testing"

	"streamflix-app/internal/domain/plans"

	"github.com/stretchr/testify/assert"
)

func basicMonthly(price int64) *plans.Plan {
	return &plans.Plan{ID: 1, Name: "Basic Monthly", Tier: plans.TierBasic, Billing: plans.BillingMonthly, Price: price}
}

func advanceMonthly(price int64) *plans.Plan {
	return &plans.Plan{ID: 3, Name: "Advance Monthly", Tier: plans.TierAdvance, Billing: plans.BillingMonthly, Price: price}
}

func activeSince(n int) *Subscription {
	return &Subscription{Status: StatusActive, StartDate: day(n), EndDate: day(n + 30)}
}

func TestEvaluateUpgrade(t *testing.T) {
	t.Run("within window pays only the difference", func(t *testing.T) {
		offer := EvaluateUpgrade(activeSince(0), basicMonthly(199), advanceMonthly(499), day(3))

		assert.True(t, offer.Eligible)
		assert.Equal(t, ReasonWithinWindow, offer.Reason)
		assert.Equal(t, int64(300), offer.AmountDue)
		assert.Equal(t, 3, offer.DaysElapsed)
	})

	t.Run("day five is still inside the window", func(t *testing.T) {
		offer := EvaluateUpgrade(activeSince(0), basicMonthly(199), advanceMonthly(499), day(5))

		assert.Equal(t, ReasonWithinWindow, offer.Reason)
		assert.Equal(t, int64(300), offer.AmountDue)
	})

	t.Run("outside window pays both plan prices", func(t *testing.T) {
		offer := EvaluateUpgrade(activeSince(0), basicMonthly(199), advanceMonthly(499), day(10))

		assert.True(t, offer.Eligible)
		assert.Equal(t, ReasonOutsideWindow, offer.Reason)
		assert.Equal(t, int64(698), offer.AmountDue)
		assert.Equal(t, 10, offer.DaysElapsed)
	})

	t.Run("advance plan holders cannot upgrade", func(t *testing.T) {
		offer := EvaluateUpgrade(activeSince(0), advanceMonthly(499), advanceMonthly(999), day(3))

		assert.False(t, offer.Eligible)
		assert.Equal(t, ReasonNotEligible, offer.Reason)
		assert.Equal(t, int64(0), offer.AmountDue)
	})

	t.Run("cancelled subscription is not eligible", func(t *testing.T) {
		sub := &Subscription{Status: StatusCancelled, StartDate: day(0), EndDate: day(30)}
		offer := EvaluateUpgrade(sub, basicMonthly(199), advanceMonthly(499), day(3))

		assert.False(t, offer.Eligible)
		assert.Equal(t, ReasonNotEligible, offer.Reason)
	})

	t.Run("mismatched billing cycle is not eligible", func(t *testing.T) {
		target := &plans.Plan{Tier: plans.TierAdvance, Billing: plans.BillingYearly, Price: 4999}
		offer := EvaluateUpgrade(activeSince(0), basicMonthly(199), target, day(3))

		assert.False(t, offer.Eligible)
		assert.Equal(t, ReasonNotEligible, offer.Reason)
	})

	t.Run("missing target plan", func(t *testing.T) {
		offer := EvaluateUpgrade(activeSince(0), basicMonthly(199), nil, day(3))

		assert.False(t, offer.Eligible)
		assert.Equal(t, ReasonNoMatchingPlan, offer.Reason)
	})

	t.Run("days elapsed clamps at zero before start", func(t *testing.T) {
		offer := EvaluateUpgrade(activeSince(5), basicMonthly(199), advanceMonthly(499), day(2))

		assert.Equal(t, 0, offer.DaysElapsed)
		assert.Equal(t, ReasonWithinWindow, offer.Reason)
	})

	t.Run("window amount never goes negative", func(t *testing.T) {
		offer := EvaluateUpgrade(activeSince(0), basicMonthly(999), advanceMonthly(499), day(3))

		assert.Equal(t, int64(0), offer.AmountDue)
	})
}

// raising the target price never lowers the amount due within a branch
func TestUpgradeAmountMonotonic(t *testing.T) {
	for _, currentDay := range []int{3, 10} {
		var prev int64 = -1
		for _, targetPrice := range []int64{100, 199, 300, 499, 1000} {
			offer := EvaluateUpgrade(activeSince(0), basicMonthly(199), advanceMonthly(targetPrice), day(currentDay))
			assert.GreaterOrEqual(t, offer.AmountDue, prev)
			prev = offer.AmountDue
		}
	}
}

func TestFindUpgradeTarget(t *testing.T) {
	catalog := []plans.Plan{
		{ID: 1, Tier: plans.TierBasic, Billing: plans.BillingMonthly},
		{ID: 2, Tier: plans.TierBasic, Billing: plans.BillingYearly},
		{ID: 3, Tier: plans.TierAdvance, Billing: plans.BillingMonthly},
		{ID: 4, Tier: plans.TierAdvance, Billing: plans.BillingYearly},
	}

	t.Run("matches the billing cycle", func(t *testing.T) {
		got := FindUpgradeTarget(catalog, &catalog[1])
		assert.NotNil(t, got)
		assert.Equal(t, uint(4), got.ID)
	})

	t.Run("nil when no advance plan shares the cycle", func(t *testing.T) {
		onlyBasic := catalog[:2]
		assert.Nil(t, FindUpgradeTarget(onlyBasic, &onlyBasic[0]))
	})

	t.Run("nil current plan", func(t *testing.T) {
		assert.Nil(t, FindUpgradeTarget(catalog, nil))
	})
}
