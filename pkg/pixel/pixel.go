// Package pixel provides the colour models a frame can hold: canonical
// 8-bit RGB plus HSL and HSV, each convertible to the raw RGB triplet the
// video stream is built from. The HSL and HSV conversions use the
// chroma-based formulas from https://en.wikipedia.org/wiki/HSL_and_HSV.
package pixel

import (
	"image/color"
	"math"
)

// Pixel is the single capability every colour model shares: conversion to
// the canonical 8-bit RGB triplet. The conversion is pure and never fails;
// constructors clamp their inputs so a constructed pixel is always inside
// its valid domain.
type Pixel interface {
	// RGB24 returns the canonical red, green and blue channel values.
	RGB24() (r, g, b uint8)
}

// Model converts any color.Color into the canonical RGB pixel type. It lets
// frames interoperate with the image and image/color packages.
var Model color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		r, g, b := p.RGB24()
		return RGB{R: r, G: g, B: b}
	}
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGB is the canonical colour model: three 8-bit channels. Its zero value
// is black, which is also the default cell value of a fresh frame.
type RGB struct {
	R, G, B uint8
}

// NewRGB returns an RGB pixel with the given channel values.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// RGB24 returns the channels unchanged.
func (c RGB) RGB24() (uint8, uint8, uint8) {
	return c.R, c.G, c.B
}

// RGBA implements color.Color. Pixels are always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return expand(c.R), expand(c.G), expand(c.B), 0xffff
}

// HSL is a colour in hue/saturation/lightness space. All components are
// normalized fractions in [0, 1]; H is the hue angle divided by 360.
type HSL struct {
	H, S, L float64
}

// NewHSL builds an HSL pixel from a hue in degrees [0, 360] and saturation
// and lightness percentages [0, 100]. Out-of-range inputs are clamped into
// the valid domain, never rejected.
func NewHSL(h, s, l int) HSL {
	return HSL{
		H: float64(clampInt(h, 0, 360)) / 360,
		S: float64(clampInt(s, 0, 100)) / 100,
		L: float64(clampInt(l, 0, 100)) / 100,
	}
}

// NewHSLf builds an HSL pixel from normalized fractions, each clamped to
// [0, 1].
func NewHSLf(h, s, l float64) HSL {
	return HSL{
		H: clampFloat(h, 0, 1),
		S: clampFloat(s, 0, 1),
		L: clampFloat(l, 0, 1),
	}
}

// RGB24 converts to canonical RGB. With S == 0 all channels equal L (grey);
// with L at 0 or 1 the result is black or white regardless of H and S.
func (c HSL) RGB24() (uint8, uint8, uint8) {
	h := c.H * 360
	a := c.S * math.Min(c.L, 1-c.L)

	f := func(n float64) uint8 {
		k := euclidMod(n+h/30, 12)
		return toByte(c.L - a*math.Max(-1, math.Min(k-3, math.Min(9-k, 1))))
	}

	return f(0), f(8), f(4)
}

// RGBA implements color.Color.
func (c HSL) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB24()
	return expand(r8), expand(g8), expand(b8), 0xffff
}

// HSV is a colour in hue/saturation/value space, stored exactly like HSL:
// normalized fractions in [0, 1] with H the hue angle divided by 360.
type HSV struct {
	H, S, V float64
}

// NewHSV builds an HSV pixel from a hue in degrees [0, 360] and saturation
// and value percentages [0, 100], clamping out-of-range inputs.
func NewHSV(h, s, v int) HSV {
	return HSV{
		H: float64(clampInt(h, 0, 360)) / 360,
		S: float64(clampInt(s, 0, 100)) / 100,
		V: float64(clampInt(v, 0, 100)) / 100,
	}
}

// NewHSVf builds an HSV pixel from normalized fractions, each clamped to
// [0, 1].
func NewHSVf(h, s, v float64) HSV {
	return HSV{
		H: clampFloat(h, 0, 1),
		S: clampFloat(s, 0, 1),
		V: clampFloat(v, 0, 1),
	}
}

// RGB24 converts to canonical RGB. With S == 0 all channels equal V.
func (c HSV) RGB24() (uint8, uint8, uint8) {
	h := c.H * 360

	f := func(n float64) uint8 {
		k := euclidMod(n+h/60, 6)
		return toByte(c.V * (1 - c.S*math.Max(0, math.Min(k, math.Min(4-k, 1)))))
	}

	return f(5), f(3), f(1)
}

// RGBA implements color.Color.
func (c HSV) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB24()
	return expand(r8), expand(g8), expand(b8), 0xffff
}

// toByte maps a channel fraction to its 8-bit value. One rounding policy is
// used everywhere: scale to [0, 255], round, clamp. The clamp holds even for
// in-range inputs since float error can push a boundary value just outside.
func toByte(v float64) uint8 {
	b := math.Round(v * 255)
	if b < 0 {
		return 0
	}
	if b > 255 {
		return 255
	}
	return uint8(b)
}

// euclidMod returns x mod m with an always non-negative result, unlike
// math.Mod which keeps the sign of x.
func euclidMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func expand(v uint8) uint32 {
	w := uint32(v)
	return w | w<<8
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Every model satisfies both the Pixel capability and color.Color.
var (
	_ Pixel       = RGB{}
	_ Pixel       = HSL{}
	_ Pixel       = HSV{}
	_ color.Color = RGB{}
	_ color.Color = HSL{}
	_ color.Color = HSV{}
)
