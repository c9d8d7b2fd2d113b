// Package color provides a non pre-multiplied color value with float components.
package color

import (
	stdcolor "image/color"
)

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

// Color is a non alpha pre-multiplied color value.
// A value of 1 indicates full color. Color implements image/color.Color.
type Color struct {
	R, G, B, A float32
}

var _ stdcolor.Color = Color{}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

func Gray(g float32) Color {
	return RGB(g, g, g)
}

// Hex parses a color from its 0xRRGGBB representation.
func Hex(value uint32) Color {
	return RGB(
		float32((value>>16)&0xff)/255,
		float32((value>>8)&0xff)/255,
		float32(value&0xff)/255,
	)
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// IsTransparent returns true if the color does not cover anything.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

// RGBA returns the alpha pre-multiplied 16 bit components as required by image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

func clamp(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
