package mathutil

// Vec4 is a homogeneous 4-component vector (x, y, z, w).
type Vec4 [4]float64

// XYZ drops the w component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// PerspectiveDivide divides every component, w included, by w.
// A zero w produces Inf/NaN components; no clipping happens here.
func (v Vec4) PerspectiveDivide() Vec4 {
	inv := 1.0 / v[3]
	return Vec4{v[0] * inv, v[1] * inv, v[2] * inv, v[3] * inv}
}
