package model

// EngagementState represents the per-tick engagement decision of a hostile NPC.
type EngagementState int32

const (
	// EngagementIdle - no target, or target beyond chase range
	EngagementIdle EngagementState = iota
	// EngagementPursuing - target inside chase range but outside stop/attack range
	EngagementPursuing
	// EngagementHolding - target inside stop/attack range, movement halted
	EngagementHolding
)

// String returns human-readable state name
func (s EngagementState) String() string {
	switch s {
	case EngagementIdle:
		return "IDLE"
	case EngagementPursuing:
		return "PURSUING"
	case EngagementHolding:
		return "HOLDING"
	default:
		return "UNKNOWN"
	}
}

// Variant selects which engagement rules an NPC follows.
type Variant int32

const (
	// VariantMelee chases to stopDistance and never fires.
	VariantMelee Variant = iota
	// VariantRanged holds at attackRange, faces the target and runs the beam attack.
	VariantRanged
)

// String returns the config spelling of the variant.
func (v Variant) String() string {
	switch v {
	case VariantMelee:
		return "melee"
	case VariantRanged:
		return "ranged"
	default:
		return "unknown"
	}
}

// ParseVariant parses the config spelling of a variant.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "melee":
		return VariantMelee, true
	case "ranged":
		return VariantRanged, true
	default:
		return 0, false
	}
}
