package model

import "math"

// Vec3 представляет точку или направление в мире.
// Ось Y направлена вверх. Value type, передаётся по значению (immutable).
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// NewVec3 создаёт Vec3 с указанными координатами.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add возвращает сумму векторов.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub возвращает разность векторов.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale умножает вектор на скаляр.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

// Dot возвращает скалярное произведение.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LenSquared возвращает квадрат длины (без sqrt для производительности).
func (v Vec3) LenSquared() float64 {
	return v.Dot(v)
}

// Len возвращает длину вектора.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSquared())
}

// Normalize возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Flatten обнуляет вертикальную компоненту (проекция на горизонтальную плоскость).
func (v Vec3) Flatten() Vec3 {
	v.Y = 0
	return v
}

// Toward возвращает точку на расстоянии dist от v вдоль направления dir.
// dir должен быть нормализован.
func (v Vec3) Toward(dir Vec3, dist float64) Vec3 {
	return v.Add(dir.Scale(dist))
}

// DistanceSquared возвращает квадрат расстояния до другой точки.
func (v Vec3) DistanceSquared(o Vec3) float64 {
	return v.Sub(o).LenSquared()
}

// Distance возвращает расстояние до другой точки.
func (v Vec3) Distance(o Vec3) float64 {
	return math.Sqrt(v.DistanceSquared(o))
}
