package sim

import (
	"sync"
	"time"

	"github.com/udisondev/hostile/internal/geo"
	"github.com/udisondev/hostile/internal/model"
	"github.com/udisondev/hostile/internal/world"
)

// arriveEpsilon is the distance at which the agent counts as arrived.
const arriveEpsilon = 0.05

// Agent is a kinematic navigation agent: it walks its registry body straight
// toward the destination on the horizontal plane at a fixed speed.
// A step that would enter a blocked grid cell is refused and the agent stands.
type Agent struct {
	mu sync.Mutex

	registry *world.Registry
	grid     *geo.Grid // optional
	body     model.Handle
	speed    float64

	destination    model.Vec3
	hasDestination bool
	stopped        bool
	enabled        bool
	velocity       float64
}

// NewAgent creates an enabled agent moving body at speed units per second.
func NewAgent(registry *world.Registry, grid *geo.Grid, body model.Handle, speed float64) *Agent {
	return &Agent{
		registry: registry,
		grid:     grid,
		body:     body,
		speed:    speed,
		enabled:  true,
	}
}

func (a *Agent) SetDestination(dst model.Vec3) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destination = dst
	a.hasDestination = true
}

func (a *Agent) SetStopped(stopped bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = stopped
	if stopped {
		a.velocity = 0
	}
}

func (a *Agent) VelocityMagnitude() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.velocity
}

func (a *Agent) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
	if !enabled {
		a.velocity = 0
		a.hasDestination = false
	}
}

// Step moves the body by one tick.
func (a *Agent) Step(dt time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.enabled || a.stopped || !a.hasDestination || dt <= 0 {
		a.velocity = 0
		return
	}

	pos, ok := a.registry.Position(a.body)
	if !ok {
		a.velocity = 0
		return
	}

	to := a.destination.Sub(pos).Flatten()
	dist := to.Len()
	if dist <= arriveEpsilon {
		a.velocity = 0
		return
	}

	step := a.speed * dt.Seconds()
	if step > dist {
		step = dist
	}
	next := pos.Toward(to.Normalize(), step)

	if a.grid != nil && a.grid.Blocked(a.grid.CellOf(next)) {
		a.velocity = 0
		return
	}

	a.registry.SetPosition(a.body, next)
	a.velocity = step / dt.Seconds()
}
