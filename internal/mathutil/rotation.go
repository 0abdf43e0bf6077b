package mathutil

import "math"

// AxisAngle returns the rotation of angle radians about axis using
// Rodrigues' formula: R = I + sin(θ)K + (1-cos(θ))K².
// The axis is normalized first; a zero axis yields the identity.
func AxisAngle(axis Vec3, angle float64) Mat3 {
	k := Skew(axis.Normalize())
	s, c := math.Sincos(angle)
	return Mat3Identity().Add(k.Scale(s)).Add(Mat3Mul(k, k).Scale(1 - c))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
