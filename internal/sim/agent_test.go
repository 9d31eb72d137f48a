package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hostile/internal/geo"
	"github.com/udisondev/hostile/internal/model"
	"github.com/udisondev/hostile/internal/world"
)

const dt = 100 * time.Millisecond

func TestAgent_WalksToDestination(t *testing.T) {
	reg := world.NewRegistry()
	body := reg.Spawn("Enemy", model.Vec3{}, 0.5)
	a := NewAgent(reg, nil, body, 2)

	a.SetDestination(model.Vec3{X: 1, Y: 5})
	a.Step(dt)

	pos, _ := reg.Position(body)
	assert.InDelta(t, 0.2, pos.X, 1e-9)
	assert.Equal(t, 0.0, pos.Y, "agent walks on the horizontal plane")
	assert.InDelta(t, 2.0, a.VelocityMagnitude(), 1e-9)

	for range 10 {
		a.Step(dt)
	}
	pos, _ = reg.Position(body)
	assert.InDelta(t, 1.0, pos.X, 1e-9)
	assert.Equal(t, 0.0, a.VelocityMagnitude())
}

func TestAgent_StoppedAndDisabled(t *testing.T) {
	reg := world.NewRegistry()
	body := reg.Spawn("Enemy", model.Vec3{}, 0.5)
	a := NewAgent(reg, nil, body, 2)
	a.SetDestination(model.Vec3{Z: 10})

	a.SetStopped(true)
	a.Step(dt)
	pos, _ := reg.Position(body)
	assert.Equal(t, model.Vec3{}, pos)

	a.SetStopped(false)
	a.Step(dt)
	pos, _ = reg.Position(body)
	assert.InDelta(t, 0.2, pos.Z, 1e-9)

	a.SetEnabled(false)
	a.Step(dt)
	after, _ := reg.Position(body)
	assert.Equal(t, pos, after)
	assert.Equal(t, 0.0, a.VelocityMagnitude())
}

func TestAgent_BlockedByGrid(t *testing.T) {
	reg := world.NewRegistry()
	body := reg.Spawn("Enemy", model.Vec3{X: 0.5, Z: 0.5}, 0.5)
	grid := geo.NewGrid(1)
	grid.Block(geo.Cell{X: 0, Y: 0, Z: 1})
	a := NewAgent(reg, grid, body, 5)

	a.SetDestination(model.Vec3{X: 0.5, Z: 5})
	for range 5 {
		a.Step(dt)
	}

	pos, _ := reg.Position(body)
	assert.Less(t, pos.Z, 1.0)
	assert.Equal(t, 0.0, a.VelocityMagnitude())
}

func TestAnimator_ClipDuration(t *testing.T) {
	anim := NewAnimator("npc", map[string]time.Duration{model.AnimTriggerDie: DeathClipDuration})

	assert.Equal(t, DefaultClipDuration, anim.CurrentClipDuration())
	anim.SetTrigger(model.AnimTriggerDie)
	assert.Equal(t, DeathClipDuration, anim.CurrentClipDuration())

	anim.SetSpeed(0)
	assert.Equal(t, 0.0, anim.Speed())
}

func TestBeam_Segment(t *testing.T) {
	b := NewBeam("npc")
	b.SetEnabled(true)
	b.SetPositions(model.Vec3{}, model.Vec3{Z: 3})

	enabled, start, end := b.Segment()
	require.True(t, enabled)
	assert.Equal(t, model.Vec3{}, start)
	assert.Equal(t, model.Vec3{Z: 3}, end)
}
