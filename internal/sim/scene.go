package sim

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/udisondev/hostile/internal/ai"
	"github.com/udisondev/hostile/internal/config"
	"github.com/udisondev/hostile/internal/geo"
	"github.com/udisondev/hostile/internal/model"
	"github.com/udisondev/hostile/internal/world"
)

// DeathClipDuration is the length of the "Die" clip of the headless animator.
const DeathClipDuration = 1200 * time.Millisecond

// HostileTag is the registry tag of hostile bodies.
const HostileTag = "Enemy"

// hitHeight lifts scripted damage points from the feet to the torso.
const hitHeight = 1.0

// Scene owns the world of one simulator run: the registry, static cover,
// the patrolling target and the hostiles.
type Scene struct {
	cfg config.Scene

	registry *world.Registry
	grid     *geo.Grid
	caster   *geo.Caster

	player      model.Handle
	playerAgent *Agent

	actors []*Actor
	byName map[string]*Actor

	mu       sync.Mutex
	clock    time.Duration
	waypoint int
	damage   []config.DamageSpec // pending, ordered by At

	kills atomic.Int32
}

// NewScene builds the scene. templates maps profile names to tunings.
func NewScene(cfg config.Scene, templates map[string]model.HostileTemplate) (*Scene, error) {
	s := &Scene{
		cfg:      cfg,
		registry: world.NewRegistry(),
		grid:     geo.NewGrid(cfg.CellSize),
		byName:   make(map[string]*Actor, len(cfg.Hostiles)),
	}
	s.caster = geo.NewCaster(s.grid, s.registry)

	for _, box := range cfg.Obstacles {
		s.grid.BlockBox(box.Min.Model(), box.Max.Model())
	}

	tag := cfg.Player.Tag
	if tag == "" {
		tag = model.DefaultTargetTag
	}
	start := model.Vec3{}
	if len(cfg.Player.Waypoints) > 0 {
		start = cfg.Player.Waypoints[0].Model()
	}
	s.player = s.registry.Spawn(tag, start, cfg.Player.Radius)
	s.playerAgent = NewAgent(s.registry, s.grid, s.player, cfg.Player.Speed)

	for _, spec := range cfg.Hostiles {
		if _, dup := s.byName[spec.Name]; dup {
			return nil, fmt.Errorf("hostile %q: duplicate name", spec.Name)
		}
		tmpl, ok := templates[spec.Profile]
		if !ok {
			return nil, fmt.Errorf("hostile %q: unknown profile %q", spec.Name, spec.Profile)
		}
		actor := s.spawnHostile(spec, tmpl)
		s.actors = append(s.actors, actor)
		s.byName[spec.Name] = actor
	}

	s.damage = append([]config.DamageSpec(nil), cfg.Damage...)
	sort.SliceStable(s.damage, func(i, j int) bool { return s.damage[i].At < s.damage[j].At })

	return s, nil
}

func (s *Scene) spawnHostile(spec config.HostileSpec, tmpl model.HostileTemplate) *Actor {
	body := s.registry.Spawn(HostileTag, spec.Position.Model(), spec.Radius)

	actor := &Actor{
		Name:     spec.Name,
		Body:     body,
		Agent:    NewAgent(s.registry, s.grid, body, spec.MoveSpeed),
		Animator: NewAnimator(spec.Name, map[string]time.Duration{model.AnimTriggerDie: DeathClipDuration}),
		Effects:  NewEffects(spec.Name),
	}

	deps := ai.Deps{
		Nav:      actor.Agent,
		Anim:     actor.Animator,
		Effects:  actor.Effects,
		Collider: world.NewCollider(s.registry, body),
		Targets:  s.registry,
	}
	if tmpl.Variant == model.VariantRanged {
		actor.Beam = NewBeam(spec.Name)
		deps.Ray = s.caster.Excluding(body)
		deps.Beam = actor.Beam
	}

	actor.AI = ai.NewHostileAI(spec.Name, tmpl, deps, body, s.player)
	actor.AI.OnDeath(func() {
		s.kills.Add(1)
	})
	return actor
}

// Register hands every actor to the tick manager; ids start at 1.
func (s *Scene) Register(m *ai.TickManager) {
	for i, a := range s.actors {
		m.Register(uint32(i+1), a)
	}
}

// Advance moves the target along its waypoints and fires scripted damage
// that became due.
func (s *Scene) Advance(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clock += dt
	s.walkPlayer(dt)

	for len(s.damage) > 0 && s.damage[0].At <= s.clock {
		d := s.damage[0]
		s.damage = s.damage[1:]
		s.hit(d)
	}
}

func (s *Scene) walkPlayer(dt time.Duration) {
	wps := s.cfg.Player.Waypoints
	if len(wps) < 2 {
		return
	}

	pos, ok := s.registry.Position(s.player)
	if !ok {
		return
	}
	if pos.Sub(wps[s.waypoint].Model()).Flatten().Len() <= arriveEpsilon {
		s.waypoint = (s.waypoint + 1) % len(wps)
	}
	s.playerAgent.SetDestination(wps[s.waypoint].Model())
	s.playerAgent.Step(dt)
}

func (s *Scene) hit(d config.DamageSpec) {
	a, ok := s.byName[d.Hostile]
	if !ok {
		slog.Warn("scripted damage for unknown hostile", "hostile", d.Hostile)
		return
	}

	pos := a.AI.Position()
	normal := model.Vec3{Y: 1}
	if p, ok := s.registry.Position(s.player); ok {
		if n := p.Sub(pos).Flatten().Normalize(); n.LenSquared() > 0 {
			normal = n
		}
	}

	applied := a.AI.ApplyDamage(d.Amount, pos.Add(model.Vec3{Y: hitHeight}), normal)
	slog.Info("scripted damage",
		"hostile", d.Hostile,
		"amount", d.Amount,
		"applied", applied,
		"health", a.AI.Health())
}

// Run advances the scene every interval until ctx is done or the configured
// duration elapses.
func (s *Scene) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Advance(interval)
			if s.cfg.Duration > 0 && s.Clock() >= s.cfg.Duration {
				slog.Info("scene finished", "duration", s.cfg.Duration, "kills", s.Kills())
				return nil
			}
		}
	}
}

// Clock returns the scene time.
func (s *Scene) Clock() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock
}

// Kills returns how many hostiles have died.
func (s *Scene) Kills() int {
	return int(s.kills.Load())
}

// Registry returns the scene registry.
func (s *Scene) Registry() *world.Registry {
	return s.registry
}

// Player returns the target body.
func (s *Scene) Player() model.Handle {
	return s.player
}

// Actors returns the hostiles in spawn order.
func (s *Scene) Actors() []*Actor {
	return s.actors
}

// Actor returns a hostile by name.
func (s *Scene) Actor(name string) (*Actor, bool) {
	a, ok := s.byName[name]
	return a, ok
}
