package ai

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// HostileAI is the combat controller of one hostile NPC.
//
// Per tick it decides Idle / Pursuing / Holding from the distance to its
// target, drives the navigator and animator, and for the ranged variant
// faces the target and starts the beam attack when the entry guard passes.
// Damage may arrive between ticks; once dead the engagement machine and the
// sequencer are permanently suspended and only the death freeze task runs.
//
// All state is owned by the controller and guarded by mu, so the TickManager
// may tick different NPCs in parallel.
type HostileAI struct {
	mu sync.Mutex

	name string
	tmpl model.HostileTemplate
	deps Deps

	isRunning atomic.Bool

	self   model.Handle // own body in the scene registry (optional)
	target model.Handle // weak reference, re-validated every tick

	position model.Vec3
	yaw      float64
	state    model.EngagementState
	now      time.Duration // controller clock, sum of tick deltas

	lifecycle *Lifecycle
	sequencer *Sequencer // nil for melee
}

// NewHostileAI creates a hostile controller. self and target may be zero:
// a zero target is discovered by the template's target tag on Start.
func NewHostileAI(name string, tmpl model.HostileTemplate, deps Deps, self, target model.Handle) *HostileAI {
	if tmpl.TargetTag == "" {
		tmpl.TargetTag = model.DefaultTargetTag
	}

	ai := &HostileAI{
		name:      name,
		tmpl:      tmpl,
		deps:      deps,
		self:      self,
		target:    target,
		state:     model.EngagementIdle,
		lifecycle: NewLifecycle(name, tmpl, deps),
	}
	if tmpl.Variant == model.VariantRanged {
		ai.sequencer = NewSequencer(name, tmpl, deps.Ray, deps.Effects, deps.Beam)
	}
	if deps.Targets != nil && !self.IsZero() {
		if pos, ok := deps.Targets.Position(self); ok {
			ai.position = pos
		}
	}
	return ai
}

// Name returns the NPC name used in logs.
func (ai *HostileAI) Name() string {
	return ai.name
}

// Template returns the tuning the controller runs with.
func (ai *HostileAI) Template() model.HostileTemplate {
	return ai.tmpl
}

// OnDeath registers a callback fired once after the death transition.
// The callback runs under the controller lock and must not call back into it.
func (ai *HostileAI) OnDeath(fn func()) {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	ai.lifecycle.OnDeath(fn)
}

// Start starts the controller. A missing target is looked up by tag once;
// if none is found the controller stays dormant.
func (ai *HostileAI) Start() {
	ai.mu.Lock()
	defer ai.mu.Unlock()

	if ai.target.IsZero() && ai.deps.Targets != nil {
		if h, ok := ai.deps.Targets.FindByTag(ai.tmpl.TargetTag); ok {
			ai.target = h
		}
	}
	ai.isRunning.Store(true)

	if IsDebugEnabled() {
		slog.Debug("hostile AI started",
			"npc", ai.name,
			"variant", ai.tmpl.Variant,
			"hasTarget", !ai.target.IsZero())
	}
}

// Stop stops the controller and aborts any attack in flight.
func (ai *HostileAI) Stop() {
	ai.mu.Lock()
	defer ai.mu.Unlock()

	ai.isRunning.Store(false)
	if ai.sequencer != nil {
		ai.sequencer.Cancel()
	}

	if IsDebugEnabled() {
		slog.Debug("hostile AI stopped", "npc", ai.name)
	}
}

// SetTarget replaces the weak target reference.
func (ai *HostileAI) SetTarget(h model.Handle) {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	ai.target = h
}

// Tick refreshes own position and the target position from the registry and
// runs one Update. An unresolvable target is treated as no target.
func (ai *HostileAI) Tick(dt time.Duration) {
	var (
		target    model.Vec3
		hasTarget bool
	)

	ai.mu.Lock()
	if r := ai.deps.Targets; r != nil {
		if !ai.self.IsZero() {
			if pos, ok := r.Position(ai.self); ok {
				ai.position = pos
			}
		}
		if !ai.target.IsZero() {
			target, hasTarget = r.Position(ai.target)
		}
	}
	ai.mu.Unlock()

	if hasTarget {
		ai.Update(dt, &target)
		return
	}
	ai.Update(dt, nil)
}

// Update is the per-tick entry point. target is nil when there is no target.
func (ai *HostileAI) Update(dt time.Duration, target *model.Vec3) {
	ai.mu.Lock()
	defer ai.mu.Unlock()

	// A stopped corpse still finishes its death pose.
	if ai.lifecycle.IsDead() {
		if ai.sequencer != nil {
			ai.sequencer.Advance(dt, AttackContext{Dead: true})
		}
		ai.lifecycle.Advance(dt)
		return
	}

	if !ai.isRunning.Load() {
		return
	}

	ai.now += dt

	var tgt model.Vec3
	if target != nil {
		tgt = *target
	}

	// Resume the in-flight attack before deciding: a sequence started this
	// tick first advances on the next one.
	if ai.sequencer != nil {
		ai.sequencer.Advance(dt, AttackContext{
			Origin:    ai.firePoint(),
			Target:    tgt,
			HasTarget: target != nil,
		})
	}

	dec := Decide(EngagementInput{
		Self:        ai.position,
		Target:      tgt,
		HasTarget:   target != nil,
		ChaseRange:  ai.tmpl.ChaseRange,
		EngageRange: ai.tmpl.EngageRange(),
		Variant:     ai.tmpl.Variant,
	})
	if !dec.Act {
		return
	}

	ai.apply(dt, dec, tgt)
}

// apply executes one engagement decision.
func (ai *HostileAI) apply(dt time.Duration, dec EngagementDecision, target model.Vec3) {
	if dec.State != ai.state {
		if IsDebugEnabled() {
			slog.Debug("hostile engagement changed",
				"npc", ai.name,
				"from", ai.state,
				"to", dec.State,
				"distance", dec.Distance)
		}
		ai.state = dec.State
	}

	if nav := ai.deps.Nav; nav != nil {
		if dec.Halt {
			nav.SetStopped(true)
		} else {
			nav.SetStopped(false)
			nav.SetDestination(dec.Destination)
		}
	}

	if anim := ai.deps.Anim; anim != nil {
		speed := 0.0
		if dec.UseAgentSpeed && ai.deps.Nav != nil {
			speed = ai.deps.Nav.VelocityMagnitude()
		}
		anim.SetFloat(model.AnimParamSpeed, speed)
	}

	if dec.FaceTarget {
		if want, ok := model.YawTo(ai.position, target); ok {
			ai.yaw = model.RotateYaw(ai.yaw, want, ai.tmpl.TurnSpeed*dt.Seconds())
		}
	}

	if dec.EvaluateAttack && ai.sequencer != nil {
		ai.sequencer.TryBegin(ai.now, ai.firePoint(), target)
	}
}

func (ai *HostileAI) firePoint() model.Vec3 {
	return ai.position.Add(model.RotateOffset(ai.tmpl.FireOffset, ai.yaw))
}

// ApplyDamage is the sole external mutator. Ignored once dead or for
// amounts ≤ 0. Returns whether the hit was applied.
func (ai *HostileAI) ApplyDamage(amount float64, point, normal model.Vec3) bool {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.lifecycle.ApplyDamage(model.DamageEvent{Amount: amount, Point: point, Normal: normal})
}

// IsDead reports whether the NPC is dead.
func (ai *HostileAI) IsDead() bool {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.lifecycle.IsDead()
}

// Health returns current hit points.
func (ai *HostileAI) Health() float64 {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.lifecycle.Health()
}

// MaxHealth returns the health the entity spawned with.
func (ai *HostileAI) MaxHealth() float64 {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.lifecycle.MaxHealth()
}

// Frozen reports whether the death pose freeze has been applied.
func (ai *HostileAI) Frozen() bool {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.lifecycle.Frozen()
}

// State returns the current engagement state.
func (ai *HostileAI) State() model.EngagementState {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.state
}

// Phase returns the attack phase in flight (PhaseNone for melee or idle).
func (ai *HostileAI) Phase() model.AttackPhase {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	if ai.sequencer == nil {
		return model.PhaseNone
	}
	return ai.sequencer.Phase()
}

// LastAttackOutcome returns how the last attack sequence ended.
func (ai *HostileAI) LastAttackOutcome() model.AttackPhase {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	if ai.sequencer == nil {
		return model.PhaseNone
	}
	return ai.sequencer.LastOutcome()
}

// NextFireTime returns the controller time the next attack may start.
func (ai *HostileAI) NextFireTime() time.Duration {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	if ai.sequencer == nil {
		return 0
	}
	return ai.sequencer.NextFireTime()
}

// Now returns the controller clock.
func (ai *HostileAI) Now() time.Duration {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.now
}

// Position returns the NPC position.
func (ai *HostileAI) Position() model.Vec3 {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.position
}

// SetPosition places the NPC. Used by hosts without a scene registry;
// Tick overwrites it from the registry when a self handle is set.
func (ai *HostileAI) SetPosition(p model.Vec3) {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	ai.position = p
}

// Yaw returns the NPC facing in radians.
func (ai *HostileAI) Yaw() float64 {
	ai.mu.Lock()
	defer ai.mu.Unlock()
	return ai.yaw
}
