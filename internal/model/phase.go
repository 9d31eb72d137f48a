package model

// AttackPhase is the current step of a ranged attack sequence.
type AttackPhase int32

const (
	// PhaseNone - no sequence in flight
	PhaseNone AttackPhase = iota
	// PhaseAimDelay - telegraph window, nothing visible or audible yet
	PhaseAimDelay
	// PhaseFireCue - fire sound is played, geometry already resolved
	PhaseFireCue
	// PhaseImpactDelay - waiting post-cue delay before the beam appears
	PhaseImpactDelay
	// PhaseBeamGrowth - beam endpoint extends toward the impact point each tick
	PhaseBeamGrowth
	// PhaseHold - beam at full length
	PhaseHold
	// PhaseRetract - beam hidden, sequence finishing
	PhaseRetract
	// PhaseCancelled - sequence aborted (target occluded or owner died)
	PhaseCancelled
)

// String returns human-readable phase name
func (p AttackPhase) String() string {
	switch p {
	case PhaseNone:
		return "NONE"
	case PhaseAimDelay:
		return "AIM_DELAY"
	case PhaseFireCue:
		return "FIRE_CUE"
	case PhaseImpactDelay:
		return "IMPACT_DELAY"
	case PhaseBeamGrowth:
		return "BEAM_GROWTH"
	case PhaseHold:
		return "HOLD"
	case PhaseRetract:
		return "RETRACT"
	case PhaseCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// Active reports whether the phase belongs to an in-flight sequence.
func (p AttackPhase) Active() bool {
	return p != PhaseNone && p != PhaseCancelled
}
