// Package scene loads triangle scenes from JSON and draws them with a
// raster.Rasterizer.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tri-raster/internal/mathutil"
	"tri-raster/internal/raster"
	"tri-raster/internal/transform"
)

// Parse reads a scene file.
func Parse(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	return s, nil
}

// Decode reads and validates a JSON scene.
func Decode(r io.Reader) (*Scene, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every mesh can be uploaded and drawn.
func (s *Scene) Validate() error {
	if len(s.Meshes) == 0 {
		return fmt.Errorf("no meshes")
	}
	for i, m := range s.Meshes {
		if len(m.Positions) == 0 {
			return fmt.Errorf("mesh %d: no positions", i)
		}
		if (m.Indices == nil) == (m.IndexRange == nil) {
			return fmt.Errorf("mesh %d: exactly one of indices and index_range is required", i)
		}
		if m.Colors == nil && m.FlatColor == nil {
			return fmt.Errorf("mesh %d: no colors or flat_color", i)
		}
		if m.Colors != nil && len(m.Colors) != len(m.Positions) {
			return fmt.Errorf("mesh %d: %d colors for %d positions", i, len(m.Colors), len(m.Positions))
		}
	}
	if dr := s.Camera.DepthRemap; dr != nil && dr[1] <= dr[0] {
		return fmt.Errorf("depth_remap far %g not beyond near %g", dr[1], dr[0])
	}
	return nil
}

// Perspective returns the camera's projection parameters; a zero aspect is
// replaced by width/height.
func (s *Scene) Perspective(width, height int) transform.Perspective {
	aspect := s.Camera.Aspect
	if aspect == 0 {
		aspect = float64(width) / float64(height)
	}
	return transform.Perspective{
		FOV:    s.Camera.FOV,
		Aspect: aspect,
		Near:   s.Camera.Near,
		Far:    s.Camera.Far,
	}
}

// Handles are the uploaded buffers of one mesh.
type Handles struct {
	Pos raster.PosHandle
	Ind raster.IndHandle
	Col raster.ColHandle
}

// Upload stores every mesh in r and returns their handles in mesh order.
func (s *Scene) Upload(r *raster.Rasterizer) []Handles {
	hs := make([]Handles, len(s.Meshes))
	for i, m := range s.Meshes {
		hs[i].Pos = r.LoadPositions(m.Positions)
		if m.IndexRange != nil {
			hs[i].Ind = r.LoadIndicesFromRange(m.IndexRange[0], m.IndexRange[1])
		} else {
			hs[i].Ind = r.LoadIndices(m.Indices)
		}
		hs[i].Col = r.LoadColors(m.colors())
	}
	return hs
}

// Render sets r's transforms for the scene rotated by Rotation.AngleDeg
// plus angleDeg, clears both buffers and draws every mesh.
func (s *Scene) Render(r *raster.Rasterizer, hs []Handles, angleDeg float64) error {
	angle := s.Rotation.AngleDeg + angleDeg
	r.SetModel(transform.ModelMatrix(s.Rotation.Axis, mathutil.Deg2Rad(angle)))
	r.SetView(transform.ViewMatrix(s.Camera.Eye))
	r.SetPerspective(s.Perspective(r.Width(), r.Height()))
	if dr := s.Camera.DepthRemap; dr != nil {
		r.SetDepthRemap(transform.Perspective{Near: dr[0], Far: dr[1]}.DepthRemap())
	}
	r.ClearFrameBuf()
	r.ClearDepthBuf()

	for i, h := range hs {
		if err := r.Draw(h.Pos, h.Ind, h.Col); err != nil {
			return fmt.Errorf("scene: draw mesh %d (%s): %w", i, s.Meshes[i].Name, err)
		}
	}
	return nil
}

// colors returns per-vertex colors, replicating FlatColor when needed.
func (m *Mesh) colors() []mathutil.Vec3 {
	if m.Colors != nil {
		return m.Colors
	}
	c := make([]mathutil.Vec3, len(m.Positions))
	for i := range c {
		c[i] = *m.FlatColor
	}
	return c
}

// Default returns the demo scene: two overlapping flat triangles in front
// of a camera at (0, 0, 5).
func Default() *Scene {
	green := mathutil.Vec3{217, 238, 185}
	blue := mathutil.Vec3{185, 217, 238}
	return &Scene{
		Camera: Camera{
			Eye:  mathutil.Vec3{0, 0, 5},
			FOV:  45,
			Near: 0.1,
			Far:  50,
		},
		Rotation: Rotation{Axis: mathutil.Vec3{0, 0, 1}},
		Meshes: []Mesh{
			{
				Name:       "front",
				Positions:  []mathutil.Vec3{{2, 0, -2}, {0, 2, -2}, {-2, 0, -2}},
				IndexRange: &[2]int{0, 3},
				FlatColor:  &green,
			},
			{
				Name:       "back",
				Positions:  []mathutil.Vec3{{3.5, -1, -5}, {2.5, 1.5, -5}, {-1, 0.5, -5}},
				IndexRange: &[2]int{0, 3},
				FlatColor:  &blue,
			},
		},
	}
}
