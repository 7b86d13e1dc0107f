package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanTier(t *testing.T) {
	assert.Equal(t, TierNone, PlanTier(nil))
	assert.Equal(t, TierAdvance, PlanTier(&Plan{Tier: "advance"}))
	assert.Equal(t, TierAdvance, PlanTier(&Plan{Tier: " Advance "}))
	assert.Equal(t, TierBasic, PlanTier(&Plan{Tier: "basic"}))
	// malformed catalog entries never unlock advance entitlements
	assert.Equal(t, TierBasic, PlanTier(&Plan{Tier: "premium"}))
	assert.Equal(t, TierBasic, PlanTier(&Plan{Tier: ""}))
}

func TestIsUnlimitedDownloads(t *testing.T) {
	assert.True(t, IsUnlimitedDownloads(&Plan{DownloadLimit: 0}))
	assert.True(t, IsUnlimitedDownloads(&Plan{DownloadLimit: -1}))
	assert.False(t, IsUnlimitedDownloads(&Plan{DownloadLimit: 5}))
	assert.False(t, IsUnlimitedDownloads(nil))
}
