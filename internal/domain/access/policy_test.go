package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
)

var now = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func activeSub() *subscriptions.Subscription {
	return &subscriptions.Subscription{
		Status:    subscriptions.StatusActive,
		StartDate: now.AddDate(0, 0, -10),
		EndDate:   now.AddDate(0, 0, 20),
	}
}

func TestComputePolicy(t *testing.T) {
	basic := &plans.Plan{Tier: plans.TierBasic}

	t.Run("no subscription locks playback", func(t *testing.T) {
		p := ComputePolicy(now, nil, nil)
		assert.Equal(t, AccessLocked, p.State)
		assert.Equal(t, PlaybackBlocked, p.Playback)
		assert.Equal(t, []string{"browse"}, p.Capabilities)
	})

	t.Run("active grants full access", func(t *testing.T) {
		p := ComputePolicy(now, activeSub(), basic)
		assert.Equal(t, AccessFull, p.State)
		assert.Equal(t, PlaybackAllowed, p.Playback)
	})

	t.Run("cancelled in window keeps grace playback", func(t *testing.T) {
		sub := activeSub()
		sub.Status = subscriptions.StatusCancelled
		p := ComputePolicy(now, sub, basic)
		assert.Equal(t, AccessGrace, p.State)
		assert.Equal(t, PlaybackAllowed, p.Playback)
		assert.Contains(t, p.Capabilities, "stream")
	})

	t.Run("cancelled past end date locks", func(t *testing.T) {
		sub := activeSub()
		sub.Status = subscriptions.StatusCancelled
		sub.EndDate = now.AddDate(0, 0, -1)
		p := ComputePolicy(now, sub, basic)
		assert.Equal(t, AccessLocked, p.State)
		assert.Equal(t, PlaybackBlocked, p.Playback)
		assert.Equal(t, []string{"browse"}, p.Capabilities)
	})
}

func TestCapabilitiesFor(t *testing.T) {
	advance := &plans.Plan{Tier: plans.TierAdvance}
	basic := &plans.Plan{Tier: plans.TierBasic}

	assert.Equal(t, []string{"browse"}, CapabilitiesFor(AccessLocked, advance))
	assert.Equal(t,
		[]string{"browse", "stream", "download", "hd_streaming", "uhd_streaming"},
		CapabilitiesFor(AccessFull, advance))
	assert.Equal(t, []string{"browse", "stream", "download"}, CapabilitiesFor(AccessGrace, basic))
	// no plan on record still allows stream during grace
	assert.Equal(t, []string{"browse", "stream"}, CapabilitiesFor(AccessFull, nil))
}

func TestPlaybackModeFromState(t *testing.T) {
	assert.Equal(t, PlaybackAllowed, PlaybackModeFromState(AccessFull))
	assert.Equal(t, PlaybackAllowed, PlaybackModeFromState(AccessGrace))
	assert.Equal(t, PlaybackBlocked, PlaybackModeFromState(AccessLocked))
}
