package raster

import (
	"math"

	"tri-raster/internal/mathutil"
)

// Triangle is one primitive as seen by the scan converter. Before the
// viewport transform Vertices are object-space positions; afterwards they
// are pixel coordinates with remapped depth in z, and W keeps the clip-space
// w of each vertex for perspective-correct interpolation.
//
// TexCoords and Normals are carried but not used by the rasterizer.
type Triangle struct {
	Vertices  [3]mathutil.Vec3
	W         [3]float64
	Colors    [3]mathutil.Vec3
	TexCoords [3]mathutil.Vec3
	Normals   [3]mathutil.Vec3
}

// Builder collects optional triangle attributes. Build validates them:
// vertices are mandatory, and the triangle needs a color source (per-vertex
// colors, a flat color or texture coordinates).
type Builder struct {
	Vertices  *[3]mathutil.Vec3
	Colors    *[3]mathutil.Vec3
	FlatColor *mathutil.Vec3
	TexCoords *[3]mathutil.Vec3
	Normals   *[3]mathutil.Vec3
}

// Build returns the triangle, or a *ConstructionError.
// Per-vertex colors take precedence over FlatColor.
func (b Builder) Build() (Triangle, error) {
	if b.Vertices == nil {
		return Triangle{}, &ConstructionError{Reason: "no vertices"}
	}
	if b.Colors == nil && b.FlatColor == nil && b.TexCoords == nil {
		return Triangle{}, &ConstructionError{Reason: "no colors, flat color or texture coordinates"}
	}

	t := Triangle{
		Vertices: *b.Vertices,
		W:        [3]float64{1, 1, 1},
	}
	switch {
	case b.Colors != nil:
		t.Colors = *b.Colors
	case b.FlatColor != nil:
		t.Colors = [3]mathutil.Vec3{*b.FlatColor, *b.FlatColor, *b.FlatColor}
	}
	if b.TexCoords != nil {
		t.TexCoords = *b.TexCoords
	}
	if b.Normals != nil {
		t.Normals = *b.Normals
	}
	return t, nil
}

// NewFlatTriangle builds a triangle from three points and one color
// shared by all vertices.
func NewFlatTriangle(a, b, c, color mathutil.Vec3) Triangle {
	t, _ := Builder{
		Vertices:  &[3]mathutil.Vec3{a, b, c},
		FlatColor: &color,
	}.Build()
	return t
}

// Barycentric2D returns the weights of (x, y) against the xy projection of
// v. A zero-area triangle divides by zero; the resulting NaN/Inf weights
// never pass the inside test.
func Barycentric2D(x, y float64, v [3]mathutil.Vec3) (c1, c2, c3 float64) {
	e0x, e0y := v[1][0]-v[0][0], v[1][1]-v[0][1]
	e1x, e1y := v[2][0]-v[0][0], v[2][1]-v[0][1]
	px, py := x-v[0][0], y-v[0][1]

	den := e0x*e1y - e1x*e0y
	// s and t are coordinates along the edges v0→v1 and v0→v2.
	s := (px*e1y - e1x*py) / den
	t := (e0x*py - px*e0y) / den
	return 1 - s - t, s, t
}

// Inside reports whether (x, y) lies inside or on the edge of t's
// screen-space projection.
func (t *Triangle) Inside(x, y float64) bool {
	c1, c2, c3 := Barycentric2D(x, y, t.Vertices)
	return c1 >= 0 && c2 >= 0 && c3 >= 0
}

// boundsLimit caps screen coordinates before integer conversion. Vertices
// with w just above zero project to finite values far beyond the int range.
const boundsLimit = 1 << 30

// Bounds returns the integer pixel box covering t, floored on both ends
// and limited to ±boundsLimit. ok is false when any screen coordinate is
// NaN or infinite.
func (t *Triangle) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	lo := [2]float64{math.Inf(1), math.Inf(1)}
	hi := [2]float64{math.Inf(-1), math.Inf(-1)}
	for _, v := range t.Vertices {
		for k := 0; k < 2; k++ {
			if math.IsNaN(v[k]) || math.IsInf(v[k], 0) {
				return 0, 0, 0, 0, false
			}
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	return floorInt(lo[0]), floorInt(lo[1]), floorInt(hi[0]), floorInt(hi[1]), true
}

func floorInt(f float64) int {
	return int(math.Floor(max(-boundsLimit, min(f, boundsLimit))))
}
