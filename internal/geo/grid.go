package geo

import (
	"math"
	"sync"

	"github.com/udisondev/hostile/internal/model"
)

// DefaultCellSize is the edge length of one grid cell in world units.
const DefaultCellSize = 1.0

// Cell addresses one voxel of the grid.
type Cell struct {
	X, Y, Z int32
}

// Grid holds static blocked cells (walls, cover).
// Cells are only added during scene setup; reads are concurrent.
type Grid struct {
	cellSize float64
	mu       sync.RWMutex
	blocked  map[Cell]struct{}
}

// NewGrid creates an empty grid. Non-positive cellSize falls back to DefaultCellSize.
func NewGrid(cellSize float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Grid{
		cellSize: cellSize,
		blocked:  make(map[Cell]struct{}),
	}
}

// CellSize returns the cell edge length.
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// CellOf returns the cell containing p.
func (g *Grid) CellOf(p model.Vec3) Cell {
	return Cell{
		X: int32(math.Floor(p.X / g.cellSize)),
		Y: int32(math.Floor(p.Y / g.cellSize)),
		Z: int32(math.Floor(p.Z / g.cellSize)),
	}
}

// Bounds returns the world-space corners of c.
func (g *Grid) Bounds(c Cell) (min, max model.Vec3) {
	min = model.Vec3{X: float64(c.X) * g.cellSize, Y: float64(c.Y) * g.cellSize, Z: float64(c.Z) * g.cellSize}
	max = min.Add(model.Vec3{X: g.cellSize, Y: g.cellSize, Z: g.cellSize})
	return min, max
}

// Block marks a single cell as solid.
func (g *Grid) Block(c Cell) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.blocked[c] = struct{}{}
}

// BlockBox marks every cell overlapping the box [min, max] as solid.
func (g *Grid) BlockBox(min, max model.Vec3) {
	a := g.CellOf(min)
	b := g.CellOf(max)

	g.mu.Lock()
	defer g.mu.Unlock()

	for x := a.X; x <= b.X; x++ {
		for y := a.Y; y <= b.Y; y++ {
			for z := a.Z; z <= b.Z; z++ {
				g.blocked[Cell{x, y, z}] = struct{}{}
			}
		}
	}
}

// Blocked reports whether c is solid.
func (g *Grid) Blocked(c Cell) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.blocked[c]
	return ok
}

// BlockedCount returns number of solid cells.
func (g *Grid) BlockedCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.blocked)
}
