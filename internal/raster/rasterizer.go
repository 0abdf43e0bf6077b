// Package raster is a software triangle rasterizer: uploaded geometry is
// transformed by model, view and projection matrices, mapped to pixels and
// scan-converted into a color buffer with a depth test.
package raster

import (
	"tri-raster/internal/mathutil"
	"tri-raster/internal/transform"
)

// Options tunes behavior that differs from the plain reference pipeline.
type Options struct {
	// ClampBounds clamps each triangle's scan box to the frame buffer.
	// When false, a draw touching pixels outside the buffer fails with a
	// *BoundsError and nothing is written.
	ClampBounds bool
}

// DefaultOptions returns the hardened defaults.
func DefaultOptions() Options {
	return Options{ClampBounds: true}
}

// DefaultPerspective is used for the depth remap until SetPerspective or
// SetDepthRemap is called.
var DefaultPerspective = transform.Perspective{FOV: 45, Aspect: 1, Near: 0.1, Far: 50}

// Rasterizer owns uploaded geometry, the current transforms and the frame
// and depth buffers. Its size is fixed for its lifetime. It is not safe
// for concurrent use.
type Rasterizer struct {
	opts Options

	model      mathutil.Mat4
	view       mathutil.Mat4
	projection mathutil.Mat4
	depth      transform.DepthRemap

	store store
	fb    *FrameBuffer
}

// New creates a width×height rasterizer with DefaultOptions.
func New(width, height int) *Rasterizer {
	return NewWithOptions(width, height, DefaultOptions())
}

// NewWithOptions creates a width×height rasterizer. All matrices start as
// the identity.
func NewWithOptions(width, height int, opts Options) *Rasterizer {
	return &Rasterizer{
		opts:       opts,
		model:      mathutil.Mat4Identity(),
		view:       mathutil.Mat4Identity(),
		projection: mathutil.Mat4Identity(),
		depth:      DefaultPerspective.DepthRemap(),
		store:      newStore(),
		fb:         NewFrameBuffer(width, height),
	}
}

func (r *Rasterizer) Width() int  { return r.fb.Width }
func (r *Rasterizer) Height() int { return r.fb.Height }

// LoadPositions stores a copy of positions.
func (r *Rasterizer) LoadPositions(positions []mathutil.Vec3) PosHandle {
	return r.store.addPositions(positions)
}

// LoadIndices stores a copy of the index triples.
func (r *Rasterizer) LoadIndices(indices []mathutil.IVec3) IndHandle {
	return r.store.addIndices(indices)
}

// LoadIndicesFromRange stores the triples (start, start+1, start+2),
// (start+3, ...) covering [start, end).
func (r *Rasterizer) LoadIndicesFromRange(start, end int) IndHandle {
	return r.store.addIndices(rangeTriangles(start, end))
}

// LoadColors stores a copy of colors.
func (r *Rasterizer) LoadColors(colors []mathutil.Vec3) ColHandle {
	return r.store.addColors(colors)
}

// LoadTriangle uploads t's vertices and colors with the index triple (0, 1, 2).
func (r *Rasterizer) LoadTriangle(t Triangle) (PosHandle, IndHandle, ColHandle) {
	pos := r.LoadPositions(t.Vertices[:])
	ind := r.LoadIndices([]mathutil.IVec3{{0, 1, 2}})
	col := r.LoadColors(t.Colors[:])
	return pos, ind, col
}

func (r *Rasterizer) SetModel(m mathutil.Mat4)      { r.model = m }
func (r *Rasterizer) SetView(m mathutil.Mat4)       { r.view = m }
func (r *Rasterizer) SetProjection(m mathutil.Mat4) { r.projection = m }

// SetDepthRemap sets the NDC depth remap independently of the projection.
func (r *Rasterizer) SetDepthRemap(d transform.DepthRemap) { r.depth = d }

// SetPerspective sets the projection matrix and the depth remap from the
// same parameters.
func (r *Rasterizer) SetPerspective(p transform.Perspective) {
	r.projection = p.Matrix()
	r.depth = p.DepthRemap()
}

// ClearFrameBuf fills the color buffer with the blank color.
func (r *Rasterizer) ClearFrameBuf() { r.fb.ClearColor() }

// ClearDepthBuf resets the depth buffer to DepthCleared.
func (r *Rasterizer) ClearDepthBuf() { r.fb.ClearDepth() }

// FrameBuf returns the color buffer in flipped row order (see FrameBuffer).
// The slice is owned by the rasterizer and must not be modified.
func (r *Rasterizer) FrameBuf() []mathutil.Vec3 { return r.fb.Color }

// Pixel returns the color at (x, y), y growing upwards.
func (r *Rasterizer) Pixel(x, y int) mathutil.Vec3 { return r.fb.Pixel(x, y) }

// Depth returns the stored depth at (x, y).
func (r *Rasterizer) Depth(x, y int) float64 { return r.fb.DepthAt(x, y) }

// Draw rasterizes every triangle of the index buffer in order. Triangles
// are assembled and checked before any pixel is written, so a failing draw
// leaves the buffers untouched. Errors are *LookupError, or *BoundsError
// when bounds clamping is off.
func (r *Rasterizer) Draw(pos PosHandle, ind IndHandle, col ColHandle) error {
	tris, err := r.assemble(pos, ind, col)
	if err != nil {
		return err
	}

	mvp := transform.MVP(r.projection, r.view, r.model)
	vp := Viewport{Width: r.fb.Width, Height: r.fb.Height, Depth: r.depth}
	for i := range tris {
		tris[i] = vp.ProjectTriangle(mvp, tris[i])
	}

	if !r.opts.ClampBounds {
		for i := range tris {
			if err := r.checkBounds(i, &tris[i]); err != nil {
				return err
			}
		}
	}

	for i := range tris {
		RasterizeTriangle(r.fb, &tris[i])
	}
	return nil
}

// assemble gathers positions and colors for every index triple.
func (r *Rasterizer) assemble(pos PosHandle, ind IndHandle, col ColHandle) ([]Triangle, error) {
	positions, err := r.store.position(pos)
	if err != nil {
		return nil, err
	}
	indices, err := r.store.index(ind)
	if err != nil {
		return nil, err
	}
	colors, err := r.store.color(col)
	if err != nil {
		return nil, err
	}

	tris := make([]Triangle, len(indices))
	for n, tri := range indices {
		t := &tris[n]
		t.W = [3]float64{1, 1, 1}
		for k, i := range tri {
			if i < 0 || i >= len(positions) {
				return nil, &LookupError{Buffer: "position", Handle: pos.id, Index: i, Len: len(positions)}
			}
			if i >= len(colors) {
				return nil, &LookupError{Buffer: "color", Handle: col.id, Index: i, Len: len(colors)}
			}
			t.Vertices[k] = positions[i]
			t.Colors[k] = colors[i]
		}
	}
	return tris, nil
}

func (r *Rasterizer) checkBounds(i int, t *Triangle) error {
	minX, minY, maxX, maxY, ok := t.Bounds()
	if !ok {
		return &BoundsError{Triangle: i, Width: r.fb.Width, Height: r.fb.Height, NonFinite: true}
	}
	if !r.fb.InBounds(minX, minY) || !r.fb.InBounds(maxX, maxY) {
		return &BoundsError{
			Triangle: i,
			MinX:     minX,
			MinY:     minY,
			MaxX:     maxX,
			MaxY:     maxY,
			Width:    r.fb.Width,
			Height:   r.fb.Height,
		}
	}
	return nil
}
