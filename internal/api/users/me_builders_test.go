package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
)

func TestBuildSubscriptionDTO(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	assert.Nil(t, BuildSubscriptionDTO(nil, now))
	assert.Nil(t, BuildSubscriptionDTO(&subscriptions.Subscription{Status: subscriptions.StatusNone}, now))

	sub := &subscriptions.Subscription{
		Status:    subscriptions.StatusActive,
		StartDate: now.AddDate(0, 0, -3),
		EndDate:   now.AddDate(0, 0, 27),
		AutoRenew: true,
	}
	dto := BuildSubscriptionDTO(sub, now)
	require.NotNil(t, dto)
	assert.Equal(t, subscriptions.StatusActive, dto.Status)
	assert.Equal(t, "active", dto.State)
	assert.Equal(t, 3, dto.DaysElapsed)
	assert.True(t, dto.AutoRenew)
}

func TestBuildUpgradeDTO(t *testing.T) {
	now := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	basic := plans.Plan{ID: 1, Name: "Basic Monthly", Tier: plans.TierBasic, Billing: plans.BillingMonthly, Price: 199}
	advance := plans.Plan{ID: 3, Name: "Advance Monthly", Tier: plans.TierAdvance, Billing: plans.BillingMonthly, Price: 499}
	catalog := []plans.Plan{basic, advance}

	sub := &subscriptions.Subscription{
		Status:    subscriptions.StatusActive,
		Plan:      &basic,
		StartDate: now.AddDate(0, 0, -3),
		EndDate:   now.AddDate(0, 0, 27),
	}

	dto := BuildUpgradeDTO(sub, catalog, now)
	require.NotNil(t, dto)
	assert.True(t, dto.Eligible)
	assert.Equal(t, subscriptions.ReasonWithinWindow, dto.Reason)
	assert.Equal(t, int64(300), dto.AmountDue)
	require.NotNil(t, dto.TargetPlanID)
	assert.Equal(t, uint(3), *dto.TargetPlanID)

	// a catalog without an advance plan on the same cycle gives no offer target
	dto = BuildUpgradeDTO(sub, []plans.Plan{basic}, now)
	require.NotNil(t, dto)
	assert.False(t, dto.Eligible)
	assert.Equal(t, subscriptions.ReasonNoMatchingPlan, dto.Reason)
	assert.Nil(t, dto.TargetPlanID)

	assert.Nil(t, BuildUpgradeDTO(nil, catalog, now))
}
