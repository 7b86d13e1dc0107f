package subscriptions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestClassify(t *testing.T) {
	t.Run("absent record", func(t *testing.T) {
		assert.Equal(t, StateNone, Classify(nil, day(0)))
	})

	t.Run("status none ignores dates", func(t *testing.T) {
		sub := &Subscription{Status: StatusNone, StartDate: day(0), EndDate: day(30)}
		assert.Equal(t, StateNone, Classify(sub, day(0)))
		assert.Equal(t, StateNone, Classify(sub, day(100)))
		assert.Equal(t, StateNone, Classify(sub, day(-10)))
	})

	t.Run("active", func(t *testing.T) {
		sub := &Subscription{Status: StatusActive, StartDate: day(0), EndDate: day(30)}
		assert.Equal(t, StateActive, Classify(sub, day(3)))
	})

	t.Run("cancelled before end date", func(t *testing.T) {
		sub := &Subscription{Status: StatusCancelled, StartDate: day(0), EndDate: day(30)}
		assert.Equal(t, StateCancelledInWindow, Classify(sub, day(10)))
	})

	t.Run("cancelled on end date is still in window", func(t *testing.T) {
		sub := &Subscription{Status: StatusCancelled, StartDate: day(0), EndDate: day(30)}
		assert.Equal(t, StateCancelledInWindow, Classify(sub, day(30)))
	})

	t.Run("cancelled past end date", func(t *testing.T) {
		sub := &Subscription{Status: StatusCancelled, StartDate: day(0), EndDate: day(30)}
		assert.Equal(t, StateCancelledExpired, Classify(sub, day(31)))
	})
}

func TestHasAccess(t *testing.T) {
	assert.True(t, HasAccess(StateActive))
	assert.True(t, HasAccess(StateCancelledInWindow))
	assert.False(t, HasAccess(StateCancelledExpired))
	assert.False(t, HasAccess(StateNone))
}
