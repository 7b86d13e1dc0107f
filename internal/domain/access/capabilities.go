package access

import (
	"streamflix-app/internal/domain/plans"
)

func CapabilitiesFor(state AccessState, plan *plans.Plan) []string {
	// locked: browse only
	if state == AccessLocked {
		return []string{"browse"}
	}

	// full/grace: tier-based
	switch plans.PlanTier(plan) {
	case plans.TierAdvance:
		return []string{"browse", "stream", "download", "hd_streaming", "uhd_streaming"}
	case plans.TierBasic:
		return []string{"browse", "stream", "download"}
	default:
		return []string{"browse", "stream"}
	}
}
