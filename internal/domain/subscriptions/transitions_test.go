package subscriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancel(t *testing.T) {
	t.Run("active cancels with end date unchanged", func(t *testing.T) {
		sub := Subscription{Status: StatusActive, StartDate: day(0), EndDate: day(30), AutoRenew: true}

		got, err := Cancel(sub)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, got.Status)
		assert.False(t, got.AutoRenew)
		assert.Equal(t, day(30), got.EndDate)
	})

	t.Run("cancel from none fails", func(t *testing.T) {
		sub := Subscription{Status: StatusNone}

		_, err := Cancel(sub)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancel twice fails", func(t *testing.T) {
		sub := Subscription{Status: StatusActive, StartDate: day(0), EndDate: day(30)}
		cancelled, err := Cancel(sub)
		require.NoError(t, err)

		_, err = Cancel(cancelled)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestReactivate(t *testing.T) {
	t.Run("within window succeeds", func(t *testing.T) {
		sub := Subscription{Status: StatusCancelled, StartDate: day(0), EndDate: day(30)}

		got, err := Reactivate(sub, day(10))
		require.NoError(t, err)
		assert.Equal(t, StatusActive, got.Status)
		assert.True(t, got.AutoRenew)
		assert.Equal(t, day(30), got.EndDate)
	})

	t.Run("on the end date succeeds", func(t *testing.T) {
		sub := Subscription{Status: StatusCancelled, StartDate: day(0), EndDate: day(30)}

		_, err := Reactivate(sub, day(30))
		assert.NoError(t, err)
	})

	t.Run("past the end date fails", func(t *testing.T) {
		sub := Subscription{Status: StatusCancelled, StartDate: day(0), EndDate: day(30)}

		_, err := Reactivate(sub, day(31))
		assert.ErrorIs(t, err, ErrExpiredWindow)
	})

	t.Run("reactivating an active subscription fails", func(t *testing.T) {
		sub := Subscription{Status: StatusActive, StartDate: day(0), EndDate: day(30)}

		_, err := Reactivate(sub, day(10))
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

// cancel then reactivate restores the original state without touching dates
func TestCancelReactivateRoundTrip(t *testing.T) {
	orig := Subscription{Status: StatusActive, StartDate: day(0), EndDate: day(30), AutoRenew: true}

	cancelled, err := Cancel(orig)
	require.NoError(t, err)

	restored, err := Reactivate(cancelled, day(15))
	require.NoError(t, err)

	assert.Equal(t, StatusActive, restored.Status)
	assert.True(t, restored.AutoRenew)
	assert.Equal(t, orig.StartDate, restored.StartDate)
	assert.Equal(t, orig.EndDate, restored.EndDate)
}
