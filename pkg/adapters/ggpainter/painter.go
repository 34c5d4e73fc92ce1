// Package ggpainter renders 2-D content into RGB frames using the gg
// drawing library, for callers that want shapes and text instead of
// per-pixel painting.
package ggpainter

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"github.com/user/framecast/pkg/frame"
	"github.com/user/framecast/pkg/pixel"
)

// Canvas wraps a gg drawing context whose result can be blitted into a
// frame.
type Canvas struct {
	dc *gg.Context
}

// NewCanvas creates a canvas of the given size filled with the background
// color.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawText draws text with its baseline anchor at (x, y) using the default
// face.
func (c *Canvas) DrawText(text string, x, y int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawString(text, float64(x), float64(y))
}

// Image returns the canvas content.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Blit draws img into the frame's top-left corner, clipping whatever falls
// outside the frame.
func Blit(f *frame.Frame[pixel.RGB], img image.Image) {
	BlitAt(f, img, 0, 0)
}

// BlitAt draws img into the frame with the image's top-left corner at
// (x0, y0). Pixels outside the frame are clipped; colours are mapped
// through the canonical RGB model.
func BlitAt(f *frame.Frame[pixel.RGB], img image.Image, x0, y0 int) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ref := f.Ref(x0+x-b.Min.X, y0+y-b.Min.Y)
			if ref == nil {
				continue
			}
			*ref = pixel.Model.Convert(img.At(x, y)).(pixel.RGB)
		}
	}
}

// Resize scales an image to the given dimensions with CatmullRom
// interpolation.
func Resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
