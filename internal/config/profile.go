package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// Vec3 is a YAML-friendly position: [x, y, z].
type Vec3 [3]float64

// Model converts to the model vector.
func (v Vec3) Model() model.Vec3 {
	return model.NewVec3(v[0], v[1], v[2])
}

// Assets names optional effect and audio assets. Empty means missing.
type Assets struct {
	BloodEffect string `yaml:"blood_effect"`
	HitEffect   string `yaml:"hit_effect"`
	HurtSound   string `yaml:"hurt_sound"`
	DeathSound  string `yaml:"death_sound"`
	FireSound   string `yaml:"fire_sound"`
}

// Profile is the YAML form of a hostile template.
type Profile struct {
	Variant   string  `yaml:"variant"` // melee | ranged
	MaxHealth float64 `yaml:"max_health"`

	ChaseRange   float64 `yaml:"chase_range"`
	StopDistance float64 `yaml:"stop_distance"`
	AttackRange  float64 `yaml:"attack_range"`

	FireCooldown   time.Duration `yaml:"fire_cooldown"`
	AimDelay       time.Duration `yaml:"aim_delay"`
	PostCueDelay   time.Duration `yaml:"post_cue_delay"`
	LaserDuration  time.Duration `yaml:"laser_duration"`
	LaserGrowSpeed float64       `yaml:"laser_grow_speed"`

	TurnSpeed  float64 `yaml:"turn_speed"` // rad/s
	FireOffset Vec3    `yaml:"fire_offset"`

	BloodLifetime  time.Duration `yaml:"blood_lifetime"`
	ImpactLifetime time.Duration `yaml:"impact_lifetime"`

	TargetTag string `yaml:"target_tag"`
	Assets    Assets `yaml:"assets"`
}

// DefaultProfile returns the stock ranged profile.
func DefaultProfile() Profile {
	p := FromTemplate(model.DefaultHostileTemplate())
	p.Assets = Assets{
		BloodEffect: "spark_burst",
		HitEffect:   "laser_impact",
		HurtSound:   "drone_hurt",
		DeathSound:  "drone_death",
		FireSound:   "laser_fire",
	}
	return p
}

// DefaultMeleeProfile returns the stock melee profile.
func DefaultMeleeProfile() Profile {
	p := DefaultProfile()
	p.Variant = model.VariantMelee.String()
	p.Assets = Assets{BloodEffect: "blood_splash", HurtSound: "grunt_hurt", DeathSound: "grunt_death"}
	return p
}

// FromTemplate converts a model template back to its YAML form.
func FromTemplate(t model.HostileTemplate) Profile {
	return Profile{
		Variant:        t.Variant.String(),
		MaxHealth:      t.MaxHealth,
		ChaseRange:     t.ChaseRange,
		StopDistance:   t.StopDistance,
		AttackRange:    t.AttackRange,
		FireCooldown:   t.FireCooldown,
		AimDelay:       t.AimDelay,
		PostCueDelay:   t.PostCueDelay,
		LaserDuration:  t.LaserDuration,
		LaserGrowSpeed: t.LaserGrowSpeed,
		TurnSpeed:      t.TurnSpeed,
		FireOffset:     Vec3{t.FireOffset.X, t.FireOffset.Y, t.FireOffset.Z},
		BloodLifetime:  t.BloodLifetime,
		ImpactLifetime: t.ImpactLifetime,
		TargetTag:      t.TargetTag,
		Assets: Assets{
			BloodEffect: t.Assets.BloodEffect,
			HitEffect:   t.Assets.HitEffect,
			HurtSound:   t.Assets.HurtSound,
			DeathSound:  t.Assets.DeathSound,
			FireSound:   t.Assets.FireSound,
		},
	}
}

// Template converts the profile to a model template named name.
// The profile must be valid.
func (p Profile) Template(name string) model.HostileTemplate {
	variant, _ := model.ParseVariant(p.Variant)
	return model.HostileTemplate{
		Name:           name,
		Variant:        variant,
		MaxHealth:      p.MaxHealth,
		ChaseRange:     p.ChaseRange,
		StopDistance:   p.StopDistance,
		AttackRange:    p.AttackRange,
		FireCooldown:   p.FireCooldown,
		AimDelay:       p.AimDelay,
		PostCueDelay:   p.PostCueDelay,
		LaserDuration:  p.LaserDuration,
		LaserGrowSpeed: p.LaserGrowSpeed,
		TurnSpeed:      p.TurnSpeed,
		FireOffset:     p.FireOffset.Model(),
		BloodLifetime:  p.BloodLifetime,
		ImpactLifetime: p.ImpactLifetime,
		TargetTag:      p.TargetTag,
		Assets: model.HostileAssets{
			BloodEffect: p.Assets.BloodEffect,
			HitEffect:   p.Assets.HitEffect,
			HurtSound:   p.Assets.HurtSound,
			DeathSound:  p.Assets.DeathSound,
			FireSound:   p.Assets.FireSound,
		},
	}
}

// Validate reports the first inconsistent setting.
func (p Profile) Validate() error {
	variant, ok := model.ParseVariant(p.Variant)
	if !ok {
		return fmt.Errorf("unknown variant %q", p.Variant)
	}
	if p.MaxHealth <= 0 {
		return errors.New("max_health must be positive")
	}
	if p.ChaseRange <= 0 {
		return errors.New("chase_range must be positive")
	}

	switch variant {
	case model.VariantMelee:
		if p.StopDistance < 0 || p.StopDistance > p.ChaseRange {
			return fmt.Errorf("stop_distance %.2f must be within [0, chase_range %.2f]", p.StopDistance, p.ChaseRange)
		}
	case model.VariantRanged:
		if p.AttackRange <= 0 || p.AttackRange > p.ChaseRange {
			return fmt.Errorf("attack_range %.2f must be within (0, chase_range %.2f]", p.AttackRange, p.ChaseRange)
		}
		if p.LaserGrowSpeed <= 0 {
			return errors.New("laser_grow_speed must be positive")
		}
	}

	durations := []struct {
		name string
		d    time.Duration
	}{
		{"fire_cooldown", p.FireCooldown},
		{"aim_delay", p.AimDelay},
		{"post_cue_delay", p.PostCueDelay},
		{"laser_duration", p.LaserDuration},
		{"blood_lifetime", p.BloodLifetime},
		{"impact_lifetime", p.ImpactLifetime},
	}
	for _, v := range durations {
		if v.d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", v.name, v.d)
		}
	}
	if p.TurnSpeed < 0 {
		return errors.New("turn_speed must not be negative")
	}
	return nil
}
