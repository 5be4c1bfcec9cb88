package core

import (
	"image/color"
	"math"
)

// Color is an RGB triple on a 0-255 channel scale. Channels are unclamped
// internally: accumulated light may exceed 255 or go negative, and shading
// arithmetic never clamps. RGBA8 is the single clamping point.
type Color struct {
	R, G, B float64
}

// Common shading colors: White is the background for rays that escape the
// scene, Black the result of the recursion-depth cutoff.
var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Add3 returns the sum of three colors
func (c Color) Add3(a, b Color) Color {
	return Color{c.R + a.R + b.R, c.G + a.G + b.G, c.B + a.B + b.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// RGBA8 converts to a display pixel: each channel is floored to an integer
// and clamped to [0,255] independently. This is the only place clamping
// occurs; intermediate shading values saturate naturally until output.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: clampChannel(c.R),
		G: clampChannel(c.G),
		B: clampChannel(c.B),
		A: 255,
	}
}

func clampChannel(v float64) uint8 {
	f := math.Floor(v)
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f)
}
