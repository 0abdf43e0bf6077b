package scene

import "tri-raster/internal/mathutil"

// Scene is a set of triangle meshes plus the camera that views them.
type Scene struct {
	Camera   Camera   `json:"camera"`
	Rotation Rotation `json:"rotation"`
	Meshes   []Mesh   `json:"meshes"`
}

// Camera holds the eye position and perspective parameters. Aspect is
// taken from the render size when zero.
//
// DepthRemap, when set, is a (near, far) pair used only for the depth
// remap while the projection keeps Near and Far. The original demo drew
// with a 0.1/100 remap under a 0.1/50 projection; [0.1, 100] reproduces
// its depth values.
type Camera struct {
	Eye        mathutil.Vec3 `json:"eye"`
	FOV        float64       `json:"fov"`
	Aspect     float64       `json:"aspect,omitempty"`
	Near       float64       `json:"near"`
	Far        float64       `json:"far"`
	DepthRemap *[2]float64   `json:"depth_remap,omitempty"`
}

// Rotation is the model rotation applied to every mesh. AngleDeg is the
// base angle; Render adds its own angle on top.
type Rotation struct {
	Axis     mathutil.Vec3 `json:"axis"`
	AngleDeg float64       `json:"angle_deg"`
}

// Mesh is one draw call's worth of geometry. Exactly one of Indices and
// IndexRange, and at least one of Colors and FlatColor, must be set.
type Mesh struct {
	Name       string           `json:"name,omitempty"`
	Positions  []mathutil.Vec3  `json:"positions"`
	Indices    []mathutil.IVec3 `json:"indices,omitempty"`
	IndexRange *[2]int          `json:"index_range,omitempty"`
	Colors     []mathutil.Vec3  `json:"colors,omitempty"`
	FlatColor  *mathutil.Vec3   `json:"flat_color,omitempty"`
}
