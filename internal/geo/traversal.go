package geo

import (
	"math"

	"github.com/udisondev/hostile/internal/model"
)

// maxWalkSteps bounds a single walk.
const maxWalkSteps = 1 << 16

// VoxelWalker visits every cell a ray passes through, in order
// (Amanatides-Woo). Unlike a Bresenham line it never skips a cell the ray
// clips at a corner.
type VoxelWalker struct {
	cur     Cell
	step    [3]int32
	tMax    [3]float64
	tDelta  [3]float64
	entry   float64
	maxDist float64
	steps   int
	started bool
}

// NewVoxelWalker starts a walk at origin along dir up to maxDist.
// dir is expected to be normalized.
func NewVoxelWalker(g *Grid, origin, dir model.Vec3, maxDist float64) *VoxelWalker {
	w := &VoxelWalker{cur: g.CellOf(origin), maxDist: maxDist}

	cs := g.CellSize()
	cells := [3]int32{w.cur.X, w.cur.Y, w.cur.Z}
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}

	for i := range 3 {
		switch {
		case d[i] > 0:
			w.step[i] = 1
			w.tMax[i] = (float64(cells[i]+1)*cs - o[i]) / d[i]
			w.tDelta[i] = cs / d[i]
		case d[i] < 0:
			w.step[i] = -1
			w.tMax[i] = (float64(cells[i])*cs - o[i]) / d[i]
			w.tDelta[i] = -cs / d[i]
		default:
			w.tMax[i] = math.Inf(1)
			w.tDelta[i] = math.Inf(1)
		}
	}

	return w
}

// Next advances to the next cell. Returns false once the ray leaves maxDist.
func (w *VoxelWalker) Next() bool {
	if !w.started {
		w.started = true
		return true
	}
	if w.steps >= maxWalkSteps {
		return false
	}

	axis := 0
	if w.tMax[1] < w.tMax[axis] {
		axis = 1
	}
	if w.tMax[2] < w.tMax[axis] {
		axis = 2
	}
	if w.tMax[axis] > w.maxDist {
		return false
	}

	w.entry = w.tMax[axis]
	w.tMax[axis] += w.tDelta[axis]
	switch axis {
	case 0:
		w.cur.X += w.step[0]
	case 1:
		w.cur.Y += w.step[1]
	case 2:
		w.cur.Z += w.step[2]
	}
	w.steps++
	return true
}

// Cell returns the current cell.
func (w *VoxelWalker) Cell() Cell { return w.cur }

// Entry returns the distance at which the ray entered the current cell.
// The start cell is entered at 0.
func (w *VoxelWalker) Entry() float64 { return w.entry }
