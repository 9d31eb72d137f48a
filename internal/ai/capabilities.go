package ai

import (
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// Navigator is the pathfinding agent that moves the NPC.
type Navigator interface {
	SetDestination(dst model.Vec3)
	SetStopped(stopped bool)
	VelocityMagnitude() float64
	SetEnabled(enabled bool)
}

// Animator plays skeletal animation for the NPC.
type Animator interface {
	SetFloat(name string, value float64)
	SetTrigger(name string)
	CurrentClipDuration() time.Duration
	SetSpeed(speed float64)
}

// RayCaster answers collision ray casts.
type RayCaster interface {
	Raycast(origin, dir model.Vec3, maxDist float64) (model.Hit, bool)
}

// Effects spawns fire-and-forget particles and plays one-shot audio.
type Effects interface {
	SpawnTransient(effect string, at, facing model.Vec3, lifetime time.Duration)
	PlayOneShot(clip string)
}

// Collider is the NPC's own collision response.
type Collider interface {
	SetEnabled(enabled bool)
}

// Beam renders the two-point laser line.
type Beam interface {
	SetEnabled(enabled bool)
	SetPositions(start, end model.Vec3)
}

// TargetResolver resolves a weak target handle to a live position.
// Implemented by world.Registry.
type TargetResolver interface {
	Position(h model.Handle) (model.Vec3, bool)
	FindByTag(tag string) (model.Handle, bool)
}

// Deps bundles the collaborators of a HostileAI. Every field is optional:
// a nil capability turns the behavior that needs it into a no-op.
type Deps struct {
	Nav      Navigator
	Anim     Animator
	Ray      RayCaster
	Effects  Effects
	Collider Collider
	Beam     Beam
	Targets  TargetResolver
}
