package sim

import (
	"time"

	"github.com/udisondev/hostile/internal/ai"
	"github.com/udisondev/hostile/internal/model"
)

// Actor pairs a hostile controller with its navigation agent so that one
// TickManager tick moves the body and then runs the combat logic.
type Actor struct {
	Name string
	Body model.Handle

	AI       *ai.HostileAI
	Agent    *Agent
	Animator *Animator
	Effects  *Effects
	Beam     *Beam
}

func (a *Actor) Start() {
	a.AI.Start()
}

func (a *Actor) Stop() {
	a.AI.Stop()
}

func (a *Actor) State() model.EngagementState {
	return a.AI.State()
}

// Tick advances the agent by dt and then runs one controller tick.
func (a *Actor) Tick(dt time.Duration) {
	a.Agent.Step(dt)
	a.AI.Tick(dt)
}

var _ ai.Controller = (*Actor)(nil)
