package framebuffer

import (
	"depthtrace/color"
)

// Image is a row-major pixel grid, top row first.  Depths is nil unless the
// image was created with a depth plane.
type Image struct {
	Width, Height int
	Pixels        []color.RGB
	Depths        []float32
}

func New(width, height int, withDepth bool) *Image {
	im := &Image{}
	im.Resize(width, height, withDepth)
	return im
}

func (im *Image) Resize(width, height int, withDepth bool) {
	im.Width = width
	im.Height = height
	im.Pixels = make([]color.RGB, width*height)
	im.Depths = nil
	if withDepth {
		im.Depths = make([]float32, width*height)
	}
}

func (im *Image) Index(row, col int) int {
	return row*im.Width + col
}

func (im *Image) At(row, col int) color.RGB {
	return im.Pixels[im.Index(row, col)]
}

func (im *Image) Set(row, col int, c color.RGB) {
	im.Pixels[im.Index(row, col)] = c
}

func (im *Image) HasDepth() bool {
	return im.Depths != nil
}

func (im *Image) DepthAt(row, col int) float32 {
	return im.Depths[im.Index(row, col)]
}

// SetDepth is a no-op on an image without a depth plane.
func (im *Image) SetDepth(row, col int, t float64) {
	if im.Depths == nil {
		return
	}
	im.Depths[im.Index(row, col)] = float32(t)
}
