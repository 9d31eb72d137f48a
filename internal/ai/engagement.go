package ai

import "github.com/udisondev/hostile/internal/model"

// EngagementInput is everything the engagement rules look at in one tick.
type EngagementInput struct {
	Self      model.Vec3
	Target    model.Vec3
	HasTarget bool

	ChaseRange  float64
	EngageRange float64 // stopDistance (melee) or attackRange (ranged)
	Variant     model.Variant
}

// EngagementDecision is the side-effect plan for one tick.
// The controller applies it to the navigator and animator.
type EngagementDecision struct {
	// Act is false when there is no target: nothing must be touched.
	Act   bool
	State model.EngagementState

	// Halt stops navigation; otherwise navigation resumes toward Destination.
	Halt        bool
	Destination model.Vec3

	// UseAgentSpeed feeds the animator the agent's velocity magnitude;
	// otherwise the animator speed is 0.
	UseAgentSpeed bool

	// FaceTarget and EvaluateAttack are only set for ranged Holding.
	FaceTarget     bool
	EvaluateAttack bool

	Distance float64
}

// Decide maps positions and ranges to the next engagement state and its commands.
// Comparators: d > chase ⇒ Idle, engage < d ≤ chase ⇒ Pursuing, d ≤ engage ⇒ Holding.
func Decide(in EngagementInput) EngagementDecision {
	if !in.HasTarget {
		return EngagementDecision{State: model.EngagementIdle}
	}

	d := in.Self.Distance(in.Target)
	out := EngagementDecision{Act: true, Distance: d}

	switch {
	case d > in.ChaseRange:
		out.State = model.EngagementIdle
		out.Halt = true

	case d > in.EngageRange:
		out.State = model.EngagementPursuing
		out.Destination = in.Target
		out.UseAgentSpeed = true

	default:
		out.State = model.EngagementHolding
		out.Halt = true
		if in.Variant == model.VariantRanged {
			out.FaceTarget = true
			out.EvaluateAttack = true
		}
	}

	return out
}
