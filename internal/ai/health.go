package ai

import (
	"log/slog"
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// Lifecycle owns hit points and the one-way Alive → Dead transition,
// including the deferred "freeze at the last frame of the death clip" task.
type Lifecycle struct {
	health model.Health
	tmpl   model.HostileTemplate

	nav      Navigator
	anim     Animator
	effects  Effects
	collider Collider

	// Freeze task: armed once on death, resumed by Advance.
	freezePending bool
	freezeLeft    time.Duration
	frozen        bool

	onDeath func()
	name    string
}

// NewLifecycle creates a living lifecycle with health = maxHealth.
func NewLifecycle(name string, tmpl model.HostileTemplate, deps Deps) *Lifecycle {
	return &Lifecycle{
		health:   model.NewHealth(tmpl.MaxHealth),
		tmpl:     tmpl,
		nav:      deps.Nav,
		anim:     deps.Anim,
		effects:  deps.Effects,
		collider: deps.Collider,
		name:     name,
	}
}

// OnDeath registers a callback fired once, right after the death transition.
func (l *Lifecycle) OnDeath(fn func()) {
	l.onDeath = fn
}

// IsDead reports whether the NPC is dead.
func (l *Lifecycle) IsDead() bool {
	return l.health.Dead()
}

// Health returns current hit points.
func (l *Lifecycle) Health() float64 {
	return l.health.Current()
}

// MaxHealth returns maximum hit points.
func (l *Lifecycle) MaxHealth() float64 {
	return l.health.Max()
}

// Frozen reports whether the death pose freeze has been applied.
func (l *Lifecycle) Frozen() bool {
	return l.frozen
}

// ApplyDamage applies one damage event. Returns false when the event was
// ignored (already dead, or amount ≤ 0).
//
// Every accepted hit spawns the blood effect at the impact point facing the
// surface normal and plays the hurt cue. A hit that drops health to 0 or below
// then runs the death transition exactly once.
func (l *Lifecycle) ApplyDamage(ev model.DamageEvent) bool {
	if l.health.Dead() || !ev.Applicable() {
		return false
	}

	died := l.health.Subtract(ev.Amount)

	if l.effects != nil {
		if l.tmpl.Assets.BloodEffect != "" {
			l.effects.SpawnTransient(l.tmpl.Assets.BloodEffect, ev.Point, ev.Normal, l.tmpl.BloodLifetime)
		}
		if l.tmpl.Assets.HurtSound != "" {
			l.effects.PlayOneShot(l.tmpl.Assets.HurtSound)
		}
	}

	if IsDebugEnabled() {
		slog.Debug("hostile damaged",
			"npc", l.name,
			"amount", ev.Amount,
			"health", l.health.Current())
	}

	if died {
		l.die()
	}
	return true
}

// die runs the death side effects in order: navigation off, collider off,
// death cue, die trigger, then arms the freeze task.
func (l *Lifecycle) die() {
	if l.nav != nil {
		l.nav.SetEnabled(false)
	}
	if l.collider != nil {
		l.collider.SetEnabled(false)
	}
	if l.effects != nil && l.tmpl.Assets.DeathSound != "" {
		l.effects.PlayOneShot(l.tmpl.Assets.DeathSound)
	}
	if l.anim != nil {
		l.anim.SetTrigger(model.AnimTriggerDie)
		l.freezePending = true
		l.freezeLeft = l.anim.CurrentClipDuration()
	}

	slog.Info("hostile died", "npc", l.name)

	if l.onDeath != nil {
		l.onDeath()
	}
}

// Advance resumes the freeze task. Once the death clip duration has elapsed
// the animator playback speed is forced to 0. Runs at most once.
func (l *Lifecycle) Advance(dt time.Duration) {
	if !l.freezePending || !l.health.Dead() {
		return
	}

	l.freezeLeft -= dt
	if l.freezeLeft > 0 {
		return
	}

	l.freezePending = false
	l.frozen = true
	l.anim.SetSpeed(0)

	if IsDebugEnabled() {
		slog.Debug("hostile frozen in death pose", "npc", l.name)
	}
}
