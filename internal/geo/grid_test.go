package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/hostile/internal/model"
)

func TestGrid_CellOf(t *testing.T) {
	g := NewGrid(2)

	assert.Equal(t, Cell{0, 0, 0}, g.CellOf(model.Vec3{X: 1.9, Y: 0, Z: 0.1}))
	assert.Equal(t, Cell{1, 0, -1}, g.CellOf(model.Vec3{X: 2, Y: 1, Z: -0.5}))

	min, max := g.Bounds(Cell{1, 0, -1})
	assert.Equal(t, model.Vec3{X: 2, Y: 0, Z: -2}, min)
	assert.Equal(t, model.Vec3{X: 4, Y: 2, Z: 0}, max)
}

func TestGrid_DefaultCellSize(t *testing.T) {
	assert.Equal(t, DefaultCellSize, NewGrid(0).CellSize())
}

func TestGrid_BlockBox(t *testing.T) {
	g := NewGrid(1)
	g.BlockBox(model.Vec3{X: 4, Y: 0, Z: 14}, model.Vec3{X: 8, Y: 3, Z: 14.9})

	assert.Equal(t, 5*4*1, g.BlockedCount())
	assert.True(t, g.Blocked(Cell{6, 1, 14}))
	assert.False(t, g.Blocked(Cell{6, 1, 15}))
	assert.False(t, g.Blocked(Cell{3, 1, 14}))
}
