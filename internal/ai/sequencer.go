package ai

import (
	"log/slog"
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// AttackSequence is the transient state of one firing attempt.
// Owned exclusively by the Sequencer; at most one is in flight.
type AttackSequence struct {
	Phase     model.AttackPhase
	Elapsed   time.Duration // time spent in the current phase
	StartedAt time.Duration // controller clock at entry

	// Resolved when the aim delay elapses.
	Start  model.Vec3
	End    model.Vec3
	Dir    model.Vec3
	Impact bool // resolved cast found a collider
	Length float64
	Grown  float64 // visible beam length during growth
}

// AttackContext is the per-tick view the sequencer needs from its owner.
type AttackContext struct {
	Origin    model.Vec3 // current fire point
	Target    model.Vec3
	HasTarget bool
	Dead      bool
}

// Sequencer runs the ranged beam attack as an explicit phase-tagged state
// advanced once per tick. It never blocks: each timed boundary is a check
// against the accumulated phase time.
//
// Phase order: AimDelay → (resolve geometry) → FireCue → ImpactDelay →
// BeamGrowth → Hold → Retract. The owner's death cancels at any boundary.
// Occlusion is re-checked only when the aim delay elapses; a beam that has
// started growing always completes.
type Sequencer struct {
	tmpl    model.HostileTemplate
	ray     RayCaster
	effects Effects
	beam    Beam

	seq          AttackSequence
	nextFireTime time.Duration
	lastOutcome  model.AttackPhase

	// name is only used in log records
	name string
}

// NewSequencer creates an idle sequencer. The beam, when present, is hidden.
func NewSequencer(name string, tmpl model.HostileTemplate, ray RayCaster, effects Effects, beam Beam) *Sequencer {
	s := &Sequencer{
		tmpl:    tmpl,
		ray:     ray,
		effects: effects,
		beam:    beam,
		name:    name,
	}
	s.hideBeam()
	return s
}

// Phase returns the phase of the in-flight sequence (PhaseNone when idle).
func (s *Sequencer) Phase() model.AttackPhase {
	return s.seq.Phase
}

// Active reports whether a sequence is in flight.
func (s *Sequencer) Active() bool {
	return s.seq.Phase.Active()
}

// Sequence returns a copy of the in-flight sequence state.
func (s *Sequencer) Sequence() AttackSequence {
	return s.seq
}

// NextFireTime returns the earliest controller time a new sequence may start.
func (s *Sequencer) NextFireTime() time.Duration {
	return s.nextFireTime
}

// LastOutcome returns PhaseRetract for a completed sequence, PhaseCancelled
// for an aborted one and PhaseNone before the first sequence ended.
func (s *Sequencer) LastOutcome() model.AttackPhase {
	return s.lastOutcome
}

// TryBegin evaluates the entry guard and starts a sequence when it passes.
// Guard: no sequence in flight, now ≥ nextFireTime, and the pre-check ray from
// origin toward target (bounded by attackRange) hits a collider tagged as the
// target. On entry nextFireTime advances to now + fireCooldown.
//
// A pre-check that hits other geometry forces the beam hidden.
// A pre-check that hits nothing leaves everything untouched.
func (s *Sequencer) TryBegin(now time.Duration, origin, target model.Vec3) bool {
	if s.Active() || now < s.nextFireTime || s.ray == nil {
		return false
	}

	dir := target.Sub(origin).Normalize()
	hit, ok := s.ray.Raycast(origin, dir, s.tmpl.AttackRange)
	if !ok {
		return false
	}
	if !hit.HasTag(s.tmpl.TargetTag) {
		s.hideBeam()
		return false
	}

	s.nextFireTime = now + s.tmpl.FireCooldown
	s.seq = AttackSequence{Phase: model.PhaseAimDelay, StartedAt: now}

	if IsDebugEnabled() {
		slog.Debug("attack sequence started",
			"npc", s.name,
			"at", now,
			"nextFireTime", s.nextFireTime)
	}
	return true
}

// Advance resumes the in-flight sequence by dt.
func (s *Sequencer) Advance(dt time.Duration, ctx AttackContext) {
	if !s.Active() {
		return
	}
	if ctx.Dead {
		s.cancel("owner dead")
		return
	}

	switch s.seq.Phase {
	case model.PhaseAimDelay:
		s.seq.Elapsed += dt
		if s.seq.Elapsed < s.tmpl.AimDelay {
			return
		}
		if !s.resolve(ctx) {
			s.cancel("target occluded")
			return
		}

		s.enter(model.PhaseFireCue)
		s.playOneShot(s.tmpl.Assets.FireSound)
		s.enter(model.PhaseImpactDelay)

	case model.PhaseImpactDelay:
		s.seq.Elapsed += dt
		if s.seq.Elapsed < s.tmpl.PostCueDelay {
			return
		}

		if s.seq.Impact && s.effects != nil && s.tmpl.Assets.HitEffect != "" {
			s.effects.SpawnTransient(s.tmpl.Assets.HitEffect, s.seq.End, s.seq.Dir.Scale(-1), s.tmpl.ImpactLifetime)
		}

		if s.beam != nil {
			s.beam.SetEnabled(true)
			s.beam.SetPositions(s.seq.Start, s.seq.Start)
		}
		s.enter(model.PhaseBeamGrowth)

	case model.PhaseBeamGrowth:
		s.grow(dt)

	case model.PhaseHold:
		s.seq.Elapsed += dt
		if s.seq.Elapsed < s.tmpl.LaserDuration {
			return
		}
		s.enter(model.PhaseRetract)
		s.hideBeam()
		s.finish(model.PhaseRetract)
	}
}

// resolve recomputes the beam from the current fire point toward the current
// target position. Late binding tolerates target movement during the aim delay.
// Returns false when the target is gone or hidden behind other geometry.
func (s *Sequencer) resolve(ctx AttackContext) bool {
	if !ctx.HasTarget {
		return false
	}

	dir := ctx.Target.Sub(ctx.Origin).Normalize()
	if dir.LenSquared() == 0 {
		return false
	}

	s.seq.Start = ctx.Origin
	s.seq.Dir = dir
	s.seq.End = ctx.Origin.Toward(dir, s.tmpl.AttackRange)
	s.seq.Impact = false

	if s.ray != nil {
		if hit, ok := s.ray.Raycast(ctx.Origin, dir, s.tmpl.AttackRange); ok {
			if !hit.HasTag(s.tmpl.TargetTag) {
				return false
			}
			s.seq.End = hit.Point
			s.seq.Impact = true
		}
	}

	s.seq.Length = s.seq.Start.Distance(s.seq.End)
	return true
}

// grow extends the visible endpoint by laserGrowSpeed·dt, never past the resolved end.
func (s *Sequencer) grow(dt time.Duration) {
	if s.tmpl.LaserGrowSpeed > 0 {
		s.seq.Grown += s.tmpl.LaserGrowSpeed * dt.Seconds()
	} else {
		s.seq.Grown = s.seq.Length
	}

	full := s.seq.Grown >= s.seq.Length
	end := s.seq.End
	if full {
		s.seq.Grown = s.seq.Length
	} else {
		end = s.seq.Start.Toward(s.seq.Dir, s.seq.Grown)
	}

	if s.beam != nil {
		s.beam.SetPositions(s.seq.Start, end)
	}
	if full {
		s.enter(model.PhaseHold)
	}
}

// Cancel aborts the in-flight sequence, hiding any visible beam.
func (s *Sequencer) Cancel() {
	if s.Active() {
		s.cancel("cancelled by owner")
	}
}

func (s *Sequencer) cancel(reason string) {
	s.hideBeam()
	s.finish(model.PhaseCancelled)

	if IsDebugEnabled() {
		slog.Debug("attack sequence cancelled", "npc", s.name, "reason", reason)
	}
}

func (s *Sequencer) enter(phase model.AttackPhase) {
	if IsDebugEnabled() {
		slog.Debug("attack phase",
			"npc", s.name,
			"from", s.seq.Phase,
			"to", phase)
	}
	s.seq.Phase = phase
	s.seq.Elapsed = 0
}

func (s *Sequencer) finish(outcome model.AttackPhase) {
	s.lastOutcome = outcome
	s.seq = AttackSequence{}
}

func (s *Sequencer) hideBeam() {
	if s.beam != nil {
		s.beam.SetEnabled(false)
	}
}

func (s *Sequencer) playOneShot(clip string) {
	if s.effects != nil && clip != "" {
		s.effects.PlayOneShot(clip)
	}
}
