package model

import "math"

// Facing helpers work on yaw only: rotation about the Y axis, in radians.
// Yaw 0 looks down +Z, positive yaw turns toward +X.

// YawTo returns the yaw that looks from `from` toward `to` on the horizontal plane.
// The second result is false when the points share a vertical line.
func YawTo(from, to Vec3) (float64, bool) {
	d := to.Sub(from).Flatten()
	if d.LenSquared() == 0 {
		return 0, false
	}
	return math.Atan2(d.X, d.Z), true
}

// Forward returns the unit horizontal direction for yaw.
func Forward(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// RotateOffset rotates a local offset (x right, z forward) by yaw.
func RotateOffset(offset Vec3, yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{
		X: offset.X*cos + offset.Z*sin,
		Y: offset.Y,
		Z: -offset.X*sin + offset.Z*cos,
	}
}

// RotateYaw turns current toward target along the shortest arc,
// by at most maxStep radians. The result is wrapped to (-π, π].
func RotateYaw(current, target, maxStep float64) float64 {
	diff := wrapAngle(target - current)
	if math.Abs(diff) <= maxStep {
		return wrapAngle(target)
	}
	return wrapAngle(current + math.Copysign(maxStep, diff))
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
