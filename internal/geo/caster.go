package geo

import (
	"math"

	"github.com/udisondev/hostile/internal/model"
	"github.com/udisondev/hostile/internal/world"
)

// Caster answers ray casts against static grid geometry and the spherical
// colliders of registry bodies. The nearest hit wins.
type Caster struct {
	grid     *Grid
	registry *world.Registry
}

// NewCaster creates a caster. Either source may be nil.
func NewCaster(grid *Grid, registry *world.Registry) *Caster {
	return &Caster{grid: grid, registry: registry}
}

// Raycast casts from origin along dir up to maxDist.
func (c *Caster) Raycast(origin, dir model.Vec3, maxDist float64) (model.Hit, bool) {
	return c.RaycastIgnoring(origin, dir, maxDist, model.Handle{})
}

// RaycastIgnoring is Raycast that skips the body behind ignore (usually the caster itself).
func (c *Caster) RaycastIgnoring(origin, dir model.Vec3, maxDist float64, ignore model.Handle) (model.Hit, bool) {
	dir = dir.Normalize()
	if dir.LenSquared() == 0 || maxDist <= 0 {
		return model.Hit{}, false
	}

	best := model.Hit{Distance: math.Inf(1)}
	found := false

	if t, ok := c.castGrid(origin, dir, maxDist); ok {
		best = model.Hit{Point: origin.Toward(dir, t), Distance: t, Tag: model.TagWorld}
		found = true
	}

	if c.registry != nil {
		c.registry.Bodies(func(h model.Handle, b world.Body) bool {
			if h == ignore || !b.ColliderEnabled || b.Radius <= 0 {
				return true
			}
			t, ok := raySphere(origin, dir, b.Position, b.Radius)
			if !ok || t > maxDist || t >= best.Distance {
				return true
			}
			best = model.Hit{Point: origin.Toward(dir, t), Distance: t, Tag: b.Tag, Body: h}
			found = true
			return true
		})
	}

	return best, found
}

// castGrid walks cells along the ray and returns the entry distance of the
// first solid cell.
func (c *Caster) castGrid(origin, dir model.Vec3, maxDist float64) (float64, bool) {
	if c.grid == nil || c.grid.BlockedCount() == 0 {
		return 0, false
	}

	w := NewVoxelWalker(c.grid, origin, dir, maxDist)
	for w.Next() {
		if c.grid.Blocked(w.Cell()) {
			return w.Entry(), true
		}
	}
	return 0, false
}

// raySphere returns the entry distance of a normalized ray into a sphere.
func raySphere(origin, dir, center model.Vec3, radius float64) (float64, bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	cc := m.LenSquared() - radius*radius
	if cc > 0 && b > 0 {
		return 0, false // outside and pointing away
	}
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0 // origin inside the sphere
	}
	return t, true
}

// Excluding returns a view of c that never reports the body behind self.
func (c *Caster) Excluding(self model.Handle) *ExcludingCaster {
	return &ExcludingCaster{caster: c, self: self}
}

// ExcludingCaster is a Caster bound to an ignored body.
type ExcludingCaster struct {
	caster *Caster
	self   model.Handle
}

// Raycast casts like Caster.Raycast, skipping the bound body.
func (e *ExcludingCaster) Raycast(origin, dir model.Vec3, maxDist float64) (model.Hit, bool) {
	return e.caster.RaycastIgnoring(origin, dir, maxDist, e.self)
}
