// Package frame implements the fixed-resolution pixel buffer a video is
// painted into, one frame at a time.
package frame

import (
	"fmt"

	"github.com/user/framecast/pkg/pixel"
)

// Frame is a fixed-size 2-D grid of pixels of one colour model. Storage is
// row-major: the cell at (x, y) lives at index x + width*y, and the backing
// slice always holds exactly width*height cells. The resolution is set at
// construction and never changes; there is no resize operation.
//
// Two access paths exist on purpose. Get and Ref are bounds-checked queries
// that report absence for out-of-range coordinates, for callers that cannot
// guarantee their indices. At and Set treat an out-of-range coordinate as a
// programmer error and panic with a message naming the violated axis, for
// painting code that is statically bounded and wants zero-ceremony access.
type Frame[P pixel.Pixel] struct {
	data   []P
	width  int
	height int
}

// New allocates a frame of the given resolution with every cell set to the
// zero value of the pixel type, which is black for all built-in models.
func New[P pixel.Pixel](width, height int) *Frame[P] {
	return &Frame[P]{
		data:   make([]P, width*height),
		width:  width,
		height: height,
	}
}

// Width returns the horizontal resolution.
func (f *Frame[P]) Width() int { return f.width }

// Height returns the vertical resolution.
func (f *Frame[P]) Height() int { return f.height }

// Resolution returns the (width, height) pair.
func (f *Frame[P]) Resolution() (int, int) { return f.width, f.height }

// Get returns the pixel at (x, y), or the zero value and false when either
// coordinate is out of range. The bounds are exclusive: x == Width() is
// already outside.
func (f *Frame[P]) Get(x, y int) (P, bool) {
	if !f.contains(x, y) {
		var zero P
		return zero, false
	}
	return f.data[x+f.width*y], true
}

// Ref returns a pointer to the cell at (x, y) for in-place mutation, or nil
// when either coordinate is out of range.
func (f *Frame[P]) Ref(x, y int) *P {
	if !f.contains(x, y) {
		return nil
	}
	return &f.data[x+f.width*y]
}

// At returns the pixel at (x, y). It panics when either coordinate is out
// of range.
func (f *Frame[P]) At(x, y int) P {
	f.checkBounds(x, y)
	return f.data[x+f.width*y]
}

// Set writes the pixel at (x, y). It panics when either coordinate is out
// of range.
func (f *Frame[P]) Set(x, y int, p P) {
	f.checkBounds(x, y)
	f.data[x+f.width*y] = p
}

// Reset overwrites every cell with the zero value in place. The backing
// array is kept; a reset frame is indistinguishable from a fresh one at the
// same resolution.
func (f *Frame[P]) Reset() {
	var zero P
	for i := range f.data {
		f.data[i] = zero
	}
}

// Fill overwrites every cell with the given pixel in place.
func (f *Frame[P]) Fill(p P) {
	for i := range f.data {
		f.data[i] = p
	}
}

// Pix returns the backing row-major cell slice. Mutating it mutates the
// frame.
func (f *Frame[P]) Pix() []P { return f.data }

func (f *Frame[P]) contains(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

func (f *Frame[P]) checkBounds(x, y int) {
	if x < 0 || x >= f.width {
		panic(fmt.Sprintf("frame index out of bounds: the x value is %d but the width is %d", x, f.width))
	}
	if y < 0 || y >= f.height {
		panic(fmt.Sprintf("frame index out of bounds: the y value is %d but the height is %d", y, f.height))
	}
}
