package world

import "github.com/udisondev/hostile/internal/model"

// Collider is the collision response of one registry body.
// It satisfies the controller's collider capability.
type Collider struct {
	registry *Registry
	handle   model.Handle
}

// NewCollider binds collision response to the body behind h.
func NewCollider(registry *Registry, h model.Handle) *Collider {
	return &Collider{registry: registry, handle: h}
}

// SetEnabled toggles whether the body blocks rays.
// Stale handles are ignored.
func (c *Collider) SetEnabled(enabled bool) {
	c.registry.SetColliderEnabled(c.handle, enabled)
}
