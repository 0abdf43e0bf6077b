// Package transform builds the model, view and projection matrices that
// take triangle vertices from object space to clip space.
package transform

import (
	"fmt"
	"math"

	"tri-raster/internal/mathutil"
)

// ModelMatrix rotates by angle radians about axis (Rodrigues), with no
// translation. The axis does not need to be normalized. A zero-length axis
// has no direction; it returns the identity and callers should not rely on it.
func ModelMatrix(axis mathutil.Vec3, angle float64) mathutil.Mat4 {
	return mathutil.FromMat3Translation(mathutil.AxisAngle(axis, angle), mathutil.Vec3{})
}

// ViewMatrix translates the world by -eye. The camera always looks down -Z.
func ViewMatrix(eye mathutil.Vec3) mathutil.Mat4 {
	return mathutil.Translation(eye.Scale(-1))
}

// ProjectionMatrix builds a perspective projection. fovDeg is the full
// vertical field of view in degrees. Inputs are not validated: zFar > zNear > 0
// and 0 < fovDeg < 180 must hold or the matrix is degenerate.
func ProjectionMatrix(fovDeg, aspect, zNear, zFar float64) mathutil.Mat4 {
	fov := mathutil.Deg2Rad(fovDeg)
	top := math.Tan(fov/2) * zNear
	right := top * aspect
	return mathutil.Mat4{
		zNear / right, 0, 0, 0,
		0, zNear / top, 0, 0,
		0, 0, -(zFar + zNear) / (zFar - zNear), -2 * zFar * zNear,
		0, 0, -1, 0,
	}
}

// MVP returns projection × view × model.
func MVP(projection, view, model mathutil.Mat4) mathutil.Mat4 {
	return mathutil.Mat4Mul(mathutil.Mat4Mul(projection, view), model)
}

// DepthRemap maps NDC z in [-1,1] onto [near, far] linearly: z*F1 + F2.
type DepthRemap struct {
	F1 float64
	F2 float64
}

// Apply remaps a normalized depth value.
func (d DepthRemap) Apply(z float64) float64 {
	return z*d.F1 + d.F2
}

// Perspective groups the projection parameters so that the projection
// matrix and the depth remap always come from the same near/far pair.
type Perspective struct {
	FOV    float64 // degrees
	Aspect float64
	Near   float64
	Far    float64
}

// Matrix returns the projection matrix for p.
func (p Perspective) Matrix() mathutil.Mat4 {
	return ProjectionMatrix(p.FOV, p.Aspect, p.Near, p.Far)
}

// DepthRemap returns the NDC depth remap for p's near and far planes.
func (p Perspective) DepthRemap() DepthRemap {
	return DepthRemap{
		F1: (p.Far - p.Near) / 2,
		F2: (p.Far + p.Near) / 2,
	}
}

// Validate checks the preconditions ProjectionMatrix leaves to the caller.
func (p Perspective) Validate() error {
	if p.FOV <= 0 || p.FOV >= 180 {
		return fmt.Errorf("transform: fov %g out of range (0, 180)", p.FOV)
	}
	if p.Aspect <= 0 {
		return fmt.Errorf("transform: aspect %g must be positive", p.Aspect)
	}
	if p.Near <= 0 {
		return fmt.Errorf("transform: near %g must be positive", p.Near)
	}
	if p.Far <= p.Near {
		return fmt.Errorf("transform: far %g must exceed near %g", p.Far, p.Near)
	}
	return nil
}
