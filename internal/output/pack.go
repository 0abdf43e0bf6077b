// Package output turns a rasterized frame buffer into images and encodes
// them to disk.
package output

import (
	"image"

	"tri-raster/internal/mathutil"
)

// Frame is a rendered color buffer in the rasterizer's storage order.
// *raster.Rasterizer implements it.
type Frame interface {
	Width() int
	Height() int
	FrameBuf() []mathutil.Vec3
}

// ToNRGBA packs f into an opaque top-down image. The frame buffer already
// stores its rows top first, so rows are copied in order without flipping.
func ToNRGBA(f Frame) *image.NRGBA {
	w, h := f.Width(), f.Height()
	colors := f.FrameBuf()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for row := 0; row < h; row++ {
		src := colors[row*w : (row+1)*w]
		off := row * img.Stride
		for x, c := range src {
			i := off + x*4
			img.Pix[i] = clamp8(c[0])
			img.Pix[i+1] = clamp8(c[1])
			img.Pix[i+2] = clamp8(c[2])
			img.Pix[i+3] = 255
		}
	}
	return img
}

// ToPacked32 packs colors into 0x00RRGGBB words, the layout most
// framebuffer windows accept directly.
func ToPacked32(colors []mathutil.Vec3) []uint32 {
	out := make([]uint32, len(colors))
	for i, c := range colors {
		out[i] = uint32(clamp8(c[0]))<<16 | uint32(clamp8(c[1]))<<8 | uint32(clamp8(c[2]))
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
