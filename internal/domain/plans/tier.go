package plans

import "strings"

// Tier constants (single source of truth)
const (
	TierNone    = "none"
	TierBasic   = "basic"
	TierAdvance = "advance"
)

// Billing cycle constants
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

// PlanTier returns the effective tier for a plan, normalized to one of the
// tier constants. Unknown or missing values fall back to TierBasic so a
// malformed catalog entry never unlocks advance entitlements.
func PlanTier(p *Plan) string {
	if p == nil {
		return TierNone
	}

	switch strings.ToLower(strings.TrimSpace(p.Tier)) {
	case TierAdvance:
		return TierAdvance
	case TierBasic:
		return TierBasic
	}

	return TierBasic
}

// IsUnlimitedDownloads follows the catalog convention that a zero or
// negative limit means no cap.
func IsUnlimitedDownloads(p *Plan) bool {
	return p != nil && p.DownloadLimit <= 0
}
