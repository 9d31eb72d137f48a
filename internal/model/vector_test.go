package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -2, 0.5)

	assert.Equal(t, Vec3{5, 0, 3.5}, a.Add(b))
	assert.Equal(t, Vec3{-3, 4, 2.5}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.InDelta(t, 1.5, a.Dot(b), 1e-12)
	assert.InDelta(t, 14.0, a.LenSquared(), 1e-12)
	assert.InDelta(t, math.Sqrt(14), a.Len(), 1e-12)
}

func TestVec3_Normalize(t *testing.T) {
	n := Vec3{X: 3, Z: 4}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Z, 1e-12)

	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec3_FlattenAndToward(t *testing.T) {
	assert.Equal(t, Vec3{X: 1, Z: 3}, Vec3{1, 2, 3}.Flatten())

	p := Vec3{Y: 1}.Toward(Vec3{Z: 1}, 2.5)
	assert.Equal(t, Vec3{Y: 1, Z: 2.5}, p)
}

func TestVec3_Distance(t *testing.T) {
	a := Vec3{}
	b := Vec3{X: 6, Y: 8}

	assert.InDelta(t, 100.0, a.DistanceSquared(b), 1e-12)
	assert.InDelta(t, 10.0, a.Distance(b), 1e-12)
	assert.InDelta(t, 10.0, b.Distance(a), 1e-12)
}
