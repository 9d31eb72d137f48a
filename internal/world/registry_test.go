package world

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hostile/internal/model"
)

func TestRegistry_SpawnAndResolve(t *testing.T) {
	r := NewRegistry()

	h := r.Spawn("Player", model.Vec3{X: 1}, 0.5)
	assert.False(t, h.IsZero())
	assert.Equal(t, 1, r.Count())

	pos, ok := r.Position(h)
	require.True(t, ok)
	assert.Equal(t, model.Vec3{X: 1}, pos)

	require.True(t, r.SetPosition(h, model.Vec3{Z: 2}))
	pos, _ = r.Position(h)
	assert.Equal(t, model.Vec3{Z: 2}, pos)

	body, ok := r.Get(h)
	require.True(t, ok)
	assert.Equal(t, "Player", body.Tag)
	assert.True(t, body.ColliderEnabled)
}

func TestRegistry_StaleHandle(t *testing.T) {
	r := NewRegistry()

	old := r.Spawn("Player", model.Vec3{}, 0.5)
	r.Remove(old)

	assert.False(t, r.Valid(old))
	_, ok := r.Position(old)
	assert.False(t, ok)
	assert.False(t, r.SetPosition(old, model.Vec3{X: 1}))

	// slot reuse must not revive the old handle
	reused := r.Spawn("Crate", model.Vec3{X: 9}, 1)
	assert.Equal(t, old.Index, reused.Index)
	assert.NotEqual(t, old.Gen, reused.Gen)
	assert.False(t, r.Valid(old))
	assert.True(t, r.Valid(reused))

	r.Remove(old)
	assert.True(t, r.Valid(reused), "removing a stale handle is a no-op")
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_ZeroHandleNeverResolves(t *testing.T) {
	r := NewRegistry()
	r.Spawn("Player", model.Vec3{}, 0.5)

	assert.False(t, r.Valid(model.Handle{}))
}

func TestRegistry_FindByTag(t *testing.T) {
	r := NewRegistry()
	r.Spawn("Enemy", model.Vec3{}, 0.5)
	p := r.Spawn("Player", model.Vec3{}, 0.5)

	h, ok := r.FindByTag("Player")
	require.True(t, ok)
	assert.Equal(t, p, h)

	r.Remove(p)
	_, ok = r.FindByTag("Player")
	assert.False(t, ok)
}

func TestRegistry_BodiesStopsEarly(t *testing.T) {
	r := NewRegistry()
	for range 5 {
		r.Spawn("Crate", model.Vec3{}, 1)
	}

	seen := 0
	r.Bodies(func(model.Handle, Body) bool {
		seen++
		return seen < 2
	})
	assert.Equal(t, 2, seen)
}

func TestCollider_SetEnabled(t *testing.T) {
	r := NewRegistry()
	h := r.Spawn("Enemy", model.Vec3{}, 0.5)
	c := NewCollider(r, h)

	c.SetEnabled(false)
	body, _ := r.Get(h)
	assert.False(t, body.ColliderEnabled)

	r.Remove(h)
	c.SetEnabled(true) // stale: ignored
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	h := r.Spawn("Player", model.Vec3{}, 0.5)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 500 {
				r.SetPosition(h, model.Vec3{X: float64(i), Z: float64(j)})
				r.Position(h)
				r.FindByTag("Player")
			}
		}()
	}
	wg.Wait()

	assert.True(t, r.Valid(h))
}
