package billing

import (
	"testing"
	"time"

	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"

	"github.com/stretchr/testify/assert"
)

func TestOrderAmount(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	basic := &plans.Plan{ID: 1, Tier: plans.TierBasic, Billing: plans.BillingMonthly, Price: 199}
	advance := &plans.Plan{ID: 3, Tier: plans.TierAdvance, Billing: plans.BillingMonthly, Price: 499}

	activeOn := func(start time.Time) *subscriptions.Subscription {
		return &subscriptions.Subscription{
			Status:    subscriptions.StatusActive,
			Plan:      basic,
			StartDate: start,
			EndDate:   start.AddDate(0, 1, 0),
		}
	}

	t.Run("fresh purchase charges the full plan price", func(t *testing.T) {
		amount, _, ok := orderAmount(nil, advance, false, now)
		assert.True(t, ok)
		assert.Equal(t, int64(499), amount)
	})

	t.Run("upgrade within window charges the difference", func(t *testing.T) {
		amount, offer, ok := orderAmount(activeOn(now.AddDate(0, 0, -3)), advance, true, now)
		assert.True(t, ok)
		assert.Equal(t, int64(300), amount)
		assert.Equal(t, subscriptions.ReasonWithinWindow, offer.Reason)
	})

	t.Run("upgrade outside window charges both prices", func(t *testing.T) {
		amount, offer, ok := orderAmount(activeOn(now.AddDate(0, 0, -10)), advance, true, now)
		assert.True(t, ok)
		assert.Equal(t, int64(698), amount)
		assert.Equal(t, subscriptions.ReasonOutsideWindow, offer.Reason)
	})

	t.Run("upgrade to an equally priced plan owes nothing", func(t *testing.T) {
		sub := activeOn(now.AddDate(0, 0, -3))
		cheap := &plans.Plan{ID: 5, Tier: plans.TierAdvance, Billing: plans.BillingMonthly, Price: 199}

		amount, _, ok := orderAmount(sub, cheap, true, now)
		assert.True(t, ok)
		assert.Equal(t, int64(0), amount)
	})

	t.Run("upgrade without a subscription is refused", func(t *testing.T) {
		_, offer, ok := orderAmount(nil, advance, true, now)
		assert.False(t, ok)
		assert.Equal(t, subscriptions.ReasonNotEligible, offer.Reason)
	})

	t.Run("upgrade with no plan on the subscription is refused", func(t *testing.T) {
		sub := activeOn(now.AddDate(0, 0, -3))
		sub.Plan = nil

		_, _, ok := orderAmount(sub, advance, true, now)
		assert.False(t, ok)
	})

	t.Run("advance plan holders cannot upgrade", func(t *testing.T) {
		sub := activeOn(now.AddDate(0, 0, -3))
		sub.Plan = advance

		_, offer, ok := orderAmount(sub, advance, true, now)
		assert.False(t, ok)
		assert.Equal(t, subscriptions.ReasonNotEligible, offer.Reason)
	})
}
