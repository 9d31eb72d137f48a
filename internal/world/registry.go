package world

import (
	"sync"

	"github.com/udisondev/hostile/internal/model"
)

// Body is a tagged object in the scene with a spherical collider.
type Body struct {
	Tag             string
	Position        model.Vec3
	Radius          float64
	ColliderEnabled bool
}

type slot struct {
	body  Body
	gen   uint32
	alive bool
}

// Registry is an arena of scene bodies addressed by generation-checked handles.
// Holders of a model.Handle never own the body: once the body is removed the
// slot generation is bumped and stale handles stop resolving.
//
// Thread-safe: the tick manager may tick several controllers in parallel and
// each of them resolves its target through the registry.
type Registry struct {
	mu    sync.RWMutex
	slots []slot
	free  []uint32
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Spawn adds a body with an enabled collider and returns its handle.
func (r *Registry) Spawn(tag string, pos model.Vec3, radius float64) model.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	body := Body{Tag: tag, Position: pos, Radius: radius, ColliderEnabled: true}

	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		s := &r.slots[idx]
		s.body = body
		s.alive = true
		return model.Handle{Index: idx, Gen: s.gen}
	}

	// Generation starts at 1 so the zero Handle never resolves
	r.slots = append(r.slots, slot{body: body, gen: 1, alive: true})
	return model.Handle{Index: uint32(len(r.slots) - 1), Gen: 1}
}

// Remove deletes the body. Removing a stale handle is a no-op.
func (r *Registry) Remove(h model.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(h)
	if !ok {
		return
	}
	s.alive = false
	s.body = Body{}
	s.gen++
	r.free = append(r.free, h.Index)
}

// Get returns a copy of the body behind h.
func (r *Registry) Get(h model.Handle) (Body, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.lookup(h)
	if !ok {
		return Body{}, false
	}
	return s.body, true
}

// Valid reports whether h still resolves.
func (r *Registry) Valid(h model.Handle) bool {
	_, ok := r.Get(h)
	return ok
}

// Position returns the body position.
func (r *Registry) Position(h model.Handle) (model.Vec3, bool) {
	b, ok := r.Get(h)
	return b.Position, ok
}

// SetPosition moves the body. Returns false for stale handles.
func (r *Registry) SetPosition(h model.Handle, pos model.Vec3) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(h)
	if !ok {
		return false
	}
	s.body.Position = pos
	return true
}

// SetColliderEnabled toggles collision response for the body.
func (r *Registry) SetColliderEnabled(h model.Handle, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.lookup(h)
	if !ok {
		return false
	}
	s.body.ColliderEnabled = enabled
	return true
}

// FindByTag returns the first live body carrying tag.
func (r *Registry) FindByTag(tag string) (model.Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.slots {
		s := &r.slots[i]
		if s.alive && s.body.Tag == tag {
			return model.Handle{Index: uint32(i), Gen: s.gen}, true
		}
	}
	return model.Handle{}, false
}

// Bodies iterates over live bodies. Iteration stops when fn returns false.
// fn must not call back into the registry.
func (r *Registry) Bodies(fn func(h model.Handle, b Body) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.slots {
		s := &r.slots[i]
		if !s.alive {
			continue
		}
		if !fn(model.Handle{Index: uint32(i), Gen: s.gen}, s.body) {
			return
		}
	}
}

// Count returns number of live bodies.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.slots) - len(r.free)
}

// lookup must be called with mu held.
func (r *Registry) lookup(h model.Handle) (*slot, bool) {
	if h.IsZero() || int(h.Index) >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[h.Index]
	if !s.alive || s.gen != h.Gen {
		return nil, false
	}
	return s, true
}
