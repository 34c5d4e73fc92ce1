package producer

import (
	"math"

	"github.com/user/framecast/pkg/frame"
	"github.com/user/framecast/pkg/pixel"
)

// PatternNames lists the built-in animation patterns.
var PatternNames = []string{"hsl-sweep", "plasma", "gradient"}

// HSLSweep cycles the hue around the colour wheel over the run, with a
// horizontal hue ramp and a vertical lightness ramp.
func HSLSweep(frames int) Animator[pixel.HSL] {
	return func(i int, f *frame.Frame[pixel.HSL]) {
		w, h := f.Resolution()
		base := 360 * i / frames
		for y := 0; y < h; y++ {
			l := 20 + 60*y/max(h-1, 1)
			for x := 0; x < w; x++ {
				hue := (base + 360*x/w) % 360
				f.Set(x, y, pixel.NewHSL(hue, 100, l))
			}
		}
	}
}

// Plasma renders the classic interference pattern in HSV space.
func Plasma(frames int) Animator[pixel.HSV] {
	return func(i int, f *frame.Frame[pixel.HSV]) {
		w, h := f.Resolution()
		t := float64(i) * 2 * math.Pi / float64(frames)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				fx, fy := float64(x), float64(y)
				v := math.Sin(fx*0.08+t) +
					math.Sin(fy*0.06-t) +
					math.Sin((fx+fy)*0.05+t/2)
				f.Set(x, y, pixel.NewHSVf((v+3)/6, 0.8, 1))
			}
		}
	}
}

// Gradient fades an RGB ramp across the frame, with the blue channel
// advancing over the run.
func Gradient(frames int) Animator[pixel.RGB] {
	return func(i int, f *frame.Frame[pixel.RGB]) {
		w, h := f.Resolution()
		b := uint8(255 * i / max(frames-1, 1))
		for y := 0; y < h; y++ {
			g := uint8(255 * y / max(h-1, 1))
			for x := 0; x < w; x++ {
				r := uint8(255 * x / max(w-1, 1))
				f.Set(x, y, pixel.NewRGB(r, g, b))
			}
		}
	}
}
