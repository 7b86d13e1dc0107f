package access

import (
	"time"

	"streamflix-app/internal/domain/plans"
	"streamflix-app/internal/domain/subscriptions"
)

type Policy struct {
	State        AccessState
	Subscription subscriptions.State
	Playback     PlaybackMode
	Capabilities []string
}

// ComputePolicy derives the effective product access for a user from their
// latest known subscription snapshot. Cancelled-but-in-window keeps full
// playback (grace access) until the paid-through end date.
func ComputePolicy(now time.Time, sub *subscriptions.Subscription, plan *plans.Plan) Policy {
	state := subscriptions.Classify(sub, now)

	p := Policy{
		Subscription: state,
		State:        AccessLocked,
		Playback:     PlaybackBlocked,
	}

	switch state {
	case subscriptions.StateActive:
		p.State = AccessFull
	case subscriptions.StateCancelledInWindow:
		p.State = AccessGrace
	}

	if subscriptions.HasAccess(state) {
		p.Playback = PlaybackAllowed
	}
	p.Capabilities = CapabilitiesFor(p.State, plan)
	return p
}

func PlaybackModeFromState(state AccessState) PlaybackMode {
	if state == AccessFull || state == AccessGrace {
		return PlaybackAllowed
	}
	return PlaybackBlocked
}
