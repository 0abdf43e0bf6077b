package raster

import (
	"tri-raster/internal/mathutil"
	"tri-raster/internal/transform"
)

// Viewport maps clip space to pixel coordinates for one frame buffer size.
type Viewport struct {
	Width  int
	Height int
	Depth  transform.DepthRemap
}

// Project transforms p by mvp, divides by w and maps the result to pixel
// coordinates and remapped depth. It returns the clip-space w as well.
// Nothing is clipped: w <= 0 produces meaningless coordinates.
func (vp Viewport) Project(mvp mathutil.Mat4, p mathutil.Vec3) (mathutil.Vec3, float64) {
	clip := mvp.MulVec4(p.Point())
	ndc := clip.PerspectiveDivide()
	return mathutil.Vec3{
		0.5 * float64(vp.Width) * (ndc[0] + 1),
		0.5 * float64(vp.Height) * (ndc[1] + 1),
		vp.Depth.Apply(ndc[2]),
	}, clip[3]
}

// ProjectTriangle returns a copy of t with its vertices in screen space.
func (vp Viewport) ProjectTriangle(mvp mathutil.Mat4, t Triangle) Triangle {
	out := t
	for i, v := range t.Vertices {
		out.Vertices[i], out.W[i] = vp.Project(mvp, v)
	}
	return out
}
