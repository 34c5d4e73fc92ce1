package ggpainter

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/framecast/pkg/frame"
	"github.com/user/framecast/pkg/pixel"
)

func TestBlit_UniformImage(t *testing.T) {
	f := frame.New[pixel.RGB](3, 2)
	img := image.NewUniform(color.RGBA{R: 200, G: 100, B: 50, A: 255})

	// A uniform image has infinite bounds; stamp a bounded copy.
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			rgba.Set(x, y, img.C)
		}
	}
	Blit(f, rgba)

	want := pixel.RGB{R: 200, G: 100, B: 50}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := f.At(x, y); got != want {
				t.Errorf("(%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestBlitAt_ClipsOutsideFrame(t *testing.T) {
	f := frame.New[pixel.RGB](2, 2)
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			rgba.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	// Offset by (1, 1): only the frame's bottom-right cell is covered.
	BlitAt(f, rgba, 1, 1)

	if got := f.At(1, 1); got != (pixel.RGB{R: 255}) {
		t.Errorf("(1,1) = %+v, want red", got)
	}
	for _, c := range [][2]int{{0, 0}, {1, 0}, {0, 1}} {
		if got := f.At(c[0], c[1]); got != (pixel.RGB{}) {
			t.Errorf("(%d,%d) = %+v, want untouched black", c[0], c[1], got)
		}
	}
}

func TestCanvas_DrawRectBlitsIntoFrame(t *testing.T) {
	c := NewCanvas(4, 4, color.Black)
	c.DrawRect(0, 0, 2, 2, color.RGBA{G: 255, A: 255})

	f := frame.New[pixel.RGB](4, 4)
	Blit(f, c.Image())

	if got := f.At(0, 0); got != (pixel.RGB{G: 255}) {
		t.Errorf("(0,0) = %+v, want green", got)
	}
	if got := f.At(3, 3); got != (pixel.RGB{}) {
		t.Errorf("(3,3) = %+v, want black background", got)
	}
}

func TestResize_Dimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	dst := Resize(src, 4, 2)

	b := dst.Bounds()
	if b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("resized to %dx%d, want 4x2", b.Dx(), b.Dy())
	}
}

// Resize replaces destination pixels rather than compositing over them, so
// a solid source survives scaling exactly.
func TestResize_SolidColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: 200, G: 40, B: 120, A: 255})
		}
	}

	dst := Resize(src, 16, 16)
	b := dst.Bounds()
	for _, pt := range []image.Point{{0, 0}, {8, 8}, {b.Max.X - 1, b.Max.Y - 1}} {
		r, g, bl, a := dst.At(pt.X, pt.Y).RGBA()
		got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(a >> 8)}
		want := color.RGBA{R: 200, G: 40, B: 120, A: 255}
		if got != want {
			t.Errorf("pixel at %v = %v, want %v", pt, got, want)
		}
	}
}
