package core

import "fmt"

// Color is an 8-bit-per-channel RGB color. All channel arithmetic
// saturates at the [0, 255] bounds instead of wrapping.
type Color struct {
	R, G, B uint8
}

// NewColor creates a color from individual channel values
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorFromHex unpacks a 24-bit 0xRRGGBB value into a color
func NewColorFromHex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// Hex packs the color into a 24-bit 0xRRGGBB value
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Add returns the per-channel sum of two colors, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: saturatingAdd(c.R, other.R),
		G: saturatingAdd(c.G, other.G),
		B: saturatingAdd(c.B, other.B),
	}
}

// Scale returns the color with each channel multiplied by scalar,
// clamped to [0, 255]. Each Scale quantizes back to 8 bits, so chained
// scales are not equivalent to a single scale by the product.
func (c Color) Scale(scalar float64) Color {
	return Color{
		R: scaleChannel(c.R, scalar),
		G: scaleChannel(c.G, scalar),
		B: scaleChannel(c.B, scalar),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("Color(r: %d, g: %d, b: %d)", c.R, c.G, c.B)
}

func saturatingAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func scaleChannel(ch uint8, scalar float64) uint8 {
	v := float64(ch) * scalar
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
