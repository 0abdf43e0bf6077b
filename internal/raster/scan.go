package raster

// RasterizeTriangle scan-converts one screen-space triangle into fb.
//
// Every pixel center in the triangle's bounding box is tested against the
// 2D barycentric weights; inside pixels get a perspective-correct depth
// and, if nearer than the stored depth, the color of vertex 0 (flat
// shading). The box is clamped to the buffer here, callers that need the
// unclamped behavior check Bounds first.
func RasterizeTriangle(fb *FrameBuffer, t *Triangle) {
	minX, minY, maxX, maxY, ok := t.Bounds()
	if !ok {
		return
	}
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)

	v := &t.Vertices
	invW0, invW1, invW2 := 1/t.W[0], 1/t.W[1], 1/t.W[2]
	zw0, zw1, zw2 := v[0][2]*invW0, v[1][2]*invW1, v[2][2]*invW2
	color := t.Colors[0]

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			c1, c2, c3 := Barycentric2D(float64(x)+0.5, py, t.Vertices)
			if !(c1 >= 0 && c2 >= 0 && c3 >= 0) {
				continue
			}

			wRecip := 1 / (c1*invW0 + c2*invW1 + c3*invW2)
			z := (c1*zw0 + c2*zw1 + c3*zw2) * wRecip

			idx := fb.Index(x, y)
			if z < fb.Depth[idx] {
				fb.Depth[idx] = z
				fb.Color[idx] = color
			}
		}
	}
}
