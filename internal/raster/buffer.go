package raster

import (
	"math"

	"tri-raster/internal/mathutil"
)

// DepthCleared is the depth value of a cell nothing has been drawn to.
const DepthCleared = math.MaxFloat64

// FrameBuffer holds the color and depth targets as flat slices for cache
// locality. Rows are stored bottom-up flipped: pixel (x, y) with y growing
// upwards lives at (Height-1-y)*Width + x, so row 0 of the storage is the
// top of the image.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []mathutil.Vec3 // RGB in [0,255], len = W*H
	Depth  []float64       // smaller is nearer, len = W*H
}

// NewFrameBuffer allocates a blank color buffer and a cleared depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]mathutil.Vec3, w*h),
		Depth:  make([]float64, w*h),
	}
	fb.ClearDepth()
	return fb
}

// Index returns the storage offset of pixel (x, y).
func (fb *FrameBuffer) Index(x, y int) int {
	return (fb.Height-1-y)*fb.Width + x
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < fb.Width && y < fb.Height
}

// ClearColor fills every pixel with the blank (zero) color.
func (fb *FrameBuffer) ClearColor() {
	clear(fb.Color)
}

// ClearDepth resets every depth cell to DepthCleared.
func (fb *FrameBuffer) ClearDepth() {
	for i := range fb.Depth {
		fb.Depth[i] = DepthCleared
	}
}

func (fb *FrameBuffer) Pixel(x, y int) mathutil.Vec3 {
	return fb.Color[fb.Index(x, y)]
}

func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	return fb.Depth[fb.Index(x, y)]
}
