package sim

import (
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/hostile/internal/model"
)

// DefaultClipDuration is reported for clips with no configured length.
const DefaultClipDuration = time.Second

// Animator is a headless animator. The current clip is the last fired
// trigger; its length comes from the clip table.
type Animator struct {
	mu     sync.Mutex
	npc    string
	clips  map[string]time.Duration
	floats map[string]float64
	clip   string
	speed  float64
}

// NewAnimator creates an animator playing its idle clip at speed 1.
func NewAnimator(npc string, clips map[string]time.Duration) *Animator {
	return &Animator{
		npc:    npc,
		clips:  clips,
		floats: make(map[string]float64),
		clip:   "Locomotion",
		speed:  1,
	}
}

func (a *Animator) SetFloat(name string, value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.floats[name] = value
}

// Float returns the last value set for a parameter.
func (a *Animator) Float(name string) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.floats[name]
}

func (a *Animator) SetTrigger(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.clip = name
	slog.Debug("animator trigger", "npc", a.npc, "trigger", name)
}

func (a *Animator) CurrentClipDuration() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if d, ok := a.clips[a.clip]; ok {
		return d
	}
	return DefaultClipDuration
}

func (a *Animator) SetSpeed(speed float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.speed = speed
	slog.Info("animator speed changed", "npc", a.npc, "clip", a.clip, "speed", speed)
}

// Speed returns the playback speed.
func (a *Animator) Speed() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.speed
}

// Effects logs transient particles and one-shot sounds.
type Effects struct {
	mu     sync.Mutex
	npc    string
	counts map[string]int
}

// NewEffects creates an effects sink for one NPC.
func NewEffects(npc string) *Effects {
	return &Effects{npc: npc, counts: make(map[string]int)}
}

func (e *Effects) SpawnTransient(effect string, at, facing model.Vec3, lifetime time.Duration) {
	e.count(effect)
	slog.Info("effect spawned",
		"npc", e.npc,
		"effect", effect,
		"at", at,
		"facing", facing,
		"lifetime", lifetime)
}

func (e *Effects) PlayOneShot(clip string) {
	e.count(clip)
	slog.Info("sound played", "npc", e.npc, "clip", clip)
}

func (e *Effects) count(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.counts[name]++
}

// Count returns how many times an effect or clip was emitted.
func (e *Effects) Count(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.counts[name]
}

// Beam is a headless laser line.
type Beam struct {
	mu      sync.Mutex
	npc     string
	enabled bool
	start   model.Vec3
	end     model.Vec3
}

// NewBeam creates a hidden beam.
func NewBeam(npc string) *Beam {
	return &Beam{npc: npc}
}

func (b *Beam) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	slog.Debug("beam toggled", "npc", b.npc, "enabled", enabled)
}

func (b *Beam) SetPositions(start, end model.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.start = start
	b.end = end
}

// Segment returns the visible state and endpoints of the beam.
func (b *Beam) Segment() (enabled bool, start, end model.Vec3) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.enabled, b.start, b.end
}
