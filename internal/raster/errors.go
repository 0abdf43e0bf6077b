package raster

import "fmt"

// LookupError reports an unknown buffer handle, or an index that falls
// outside the buffer it addresses.
type LookupError struct {
	Buffer string // "position", "index" or "color"
	Handle uint64
	// UnknownHandle is set when the handle was never uploaded; Index and
	// Len are meaningless then.
	UnknownHandle bool
	Index         int
	Len           int
}

func (e *LookupError) Error() string {
	if e.UnknownHandle {
		return fmt.Sprintf("raster: unknown %s buffer handle %d", e.Buffer, e.Handle)
	}
	return fmt.Sprintf("raster: index %d out of range for %s buffer %d (len %d)",
		e.Index, e.Buffer, e.Handle, e.Len)
}

// ConstructionError reports a Builder that cannot produce a triangle.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return "raster: build triangle: " + e.Reason
}

// BoundsError reports a screen-space bounding box that reaches outside the
// frame buffer while bounds clamping is disabled.
type BoundsError struct {
	Triangle               int
	MinX, MinY, MaxX, MaxY int
	Width, Height          int
	NonFinite              bool
}

func (e *BoundsError) Error() string {
	if e.NonFinite {
		return fmt.Sprintf("raster: triangle %d has non-finite screen coordinates", e.Triangle)
	}
	return fmt.Sprintf("raster: triangle %d bounds [%d,%d]-[%d,%d] outside %dx%d frame buffer",
		e.Triangle, e.MinX, e.MinY, e.MaxX, e.MaxY, e.Width, e.Height)
}
