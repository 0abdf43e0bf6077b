package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-12

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d", i)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translation(Vec3{1, 2, 3})
	assert.Equal(t, m, Mat4Mul(Mat4Identity(), m))
	assert.Equal(t, m, Mat4Mul(m, Mat4Identity()))
	assert.True(t, Mat4Identity().IsIdentity())
	assert.False(t, m.IsIdentity())
}

func TestMat4MulOrder(t *testing.T) {
	// Scale then translate: T × S applied to (1,1,1) gives (2+1, 2+2, 2+3).
	s := FromMat3Translation(Mat3Identity().Scale(2), Vec3{})
	tr := Translation(Vec3{1, 2, 3})
	assertVec3(t, Vec3{3, 4, 5}, Mat4Mul(tr, s).MulPoint(Vec3{1, 1, 1}))
	assertVec3(t, Vec3{4, 6, 8}, Mat4Mul(s, tr).MulPoint(Vec3{1, 1, 1}))
}

func TestMulVec4(t *testing.T) {
	m := Translation(Vec3{1, -1, 2})
	assert.Equal(t, Vec4{2, 0, 3, 1}, m.MulVec4(Vec3{1, 1, 1}.Point()))
	// Directions (w=0) are not translated.
	assert.Equal(t, Vec4{1, 1, 1, 0}, m.MulVec4(Vec4{1, 1, 1, 0}))
	assert.Equal(t, -1.0, m.At(1, 3))
}

func TestPerspectiveDivide(t *testing.T) {
	assert.Equal(t, Vec4{1, 2, 3, 1}, Vec4{2, 4, 6, 2}.PerspectiveDivide())
	v := Vec4{1, 0, 0, 0}.PerspectiveDivide()
	assert.True(t, math.IsInf(v[0], 1))
	assert.True(t, math.IsNaN(v[1]))
}

func TestSkewIsCross(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}
	// a × b worked by hand.
	assertVec3(t, Vec3{6.5, -10, 4.5}, FromMat3Translation(Skew(a), Vec3{}).MulPoint(b))
}

func TestAxisAngle(t *testing.T) {
	c30, s30 := math.Sqrt(3)/2, 0.5
	c75, s75 := math.Cos(Deg2Rad(-75)), math.Sin(Deg2Rad(-75))
	tests := []struct {
		name  string
		axis  Vec3
		angle float64
		want  Mat3
	}{
		{"z 90", Vec3{0, 0, 1}, math.Pi / 2, Mat3{0, -1, 0, 1, 0, 0, 0, 0, 1}},
		{"x 30", Vec3{1, 0, 0}, Deg2Rad(30), Mat3{1, 0, 0, 0, c30, -s30, 0, s30, c30}},
		{"y -75 unnormalized", Vec3{0, 5, 0}, Deg2Rad(-75), Mat3{c75, 0, s75, 0, 1, 0, -s75, 0, c75}},
		{"zero angle", Vec3{1, 1, 1}, 0, Mat3Identity()},
		{"zero axis", Vec3{}, 1, Mat3Identity()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AxisAngle(tc.axis, tc.angle)
			for i := range tc.want {
				assert.InDelta(t, tc.want[i], got[i], tol, "element %d", i)
			}
		})
	}
}

func TestAxisAngleKeepsAxis(t *testing.T) {
	axis := Vec3{1, 2, -1}
	r := FromMat3Translation(AxisAngle(axis, 1.234), Vec3{})
	assertVec3(t, axis, r.MulPoint(axis))
	// Lengths survive the rotation.
	for _, v := range []Vec3{{1, 0, 0}, {0, 3, 4}, {2, -1, 0}} {
		assert.InDelta(t, v.Len(), r.MulPoint(v).Len(), 1e-9)
	}
}

func TestNormalize(t *testing.T) {
	assertVec3(t, Vec3{0, 0.6, 0.8}, Vec3{0, 3, 4}.Normalize())
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 5.0, Vec3{0, 3, 4}.Len(), tol)
}
