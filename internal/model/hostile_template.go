package model

import "time"

// Animator parameter and trigger names driven by the controller.
const (
	AnimParamSpeed = "Speed"
	AnimTriggerDie = "Die"
)

// DefaultTargetTag is the tag of the body hostiles hunt by default.
const DefaultTargetTag = "Player"

// HostileAssets names the optional effect and audio assets of a hostile.
// An empty name means the asset is missing and the effect is skipped.
type HostileAssets struct {
	BloodEffect string
	HitEffect   string
	HurtSound   string
	DeathSound  string
	FireSound   string
}

// HostileTemplate holds the tuning of one hostile kind (hostile_profiles row
// or a config profile).
type HostileTemplate struct {
	Name    string
	Variant Variant

	MaxHealth float64

	ChaseRange   float64
	StopDistance float64 // melee: halt distance
	AttackRange  float64 // ranged: hold + fire distance

	FireCooldown   time.Duration
	AimDelay       time.Duration
	PostCueDelay   time.Duration
	LaserDuration  time.Duration
	LaserGrowSpeed float64 // units per second

	TurnSpeed  float64 // radians per second
	FireOffset Vec3    // local offset of the fire point (x right, y up, z forward)

	BloodLifetime  time.Duration
	ImpactLifetime time.Duration

	TargetTag string
	Assets    HostileAssets
}

// DefaultHostileTemplate returns the stock ranged hostile tuning.
func DefaultHostileTemplate() HostileTemplate {
	return HostileTemplate{
		Name:           "laser_drone",
		Variant:        VariantRanged,
		MaxHealth:      100,
		ChaseRange:     15,
		StopDistance:   2,
		AttackRange:    7,
		FireCooldown:   2 * time.Second,
		AimDelay:       150 * time.Millisecond,
		PostCueDelay:   500 * time.Millisecond,
		LaserDuration:  500 * time.Millisecond,
		LaserGrowSpeed: 50,
		TurnSpeed:      10,
		FireOffset:     Vec3{Y: 1.5},
		BloodLifetime:  2 * time.Second,
		ImpactLifetime: time.Second,
		TargetTag:      DefaultTargetTag,
	}
}

// EngageRange returns the distance at or below which the hostile holds:
// stopDistance for melee, attackRange for ranged.
func (t HostileTemplate) EngageRange() float64 {
	if t.Variant == VariantRanged {
		return t.AttackRange
	}
	return t.StopDistance
}
