package glm

import (
	"fmt"
	"image/color"
	"math"

	"github.com/oliverbestmann/geomalg/num"
)

var ColorWhite = ColorRGBA8(0xff, 0xff, 0xff, 0xff)
var ColorBlack = ColorRGBA8(0, 0, 0, 0xff)
var ColorTransparent = ColorRGBA8(0, 0, 0, 0)

// Color is a straight alpha rgba color packed as A<<24 | R<<16 | G<<8 | B.
// The zero value is fully transparent black.
type Color uint32

var _ color.Color = Color(0)

// ColorOf encodes the components of the given vector, ordered r, g, b, a.
// Each component is clamped to [0, 1] and rounded to the nearest of 256 steps.
func ColorOf(vec Vec4f) Color {
	r, g, b, a := vec.XYZW()
	return ColorRGBA8(encodeChannel(r), encodeChannel(g), encodeChannel(b), encodeChannel(a))
}

// ColorRGBA8 packs the given 8 bit channel values.
func ColorRGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ToVec decodes the color into r, g, b, a components in [0, 1].
func (c Color) ToVec() Vec4f {
	return Vec4Of(
		decodeChannel(c.Red()),
		decodeChannel(c.Green()),
		decodeChannel(c.Blue()),
		decodeChannel(c.Alpha()),
	)
}

// Linear decodes the color and transfers the rgb components from srgb into
// linear rgb space. Alpha is not touched.
func (c Color) Linear() Vec4f {
	vec := c.ToVec()

	return Vec4Of(
		degamma(vec.X()),
		degamma(vec.Y()),
		degamma(vec.Z()),
		vec.W(),
	)
}

func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

func (c Color) Blue() uint8 {
	return uint8(c)
}

// WithAlpha returns a new color with the alpha channel replaced.
func (c Color) WithAlpha(alpha uint8) Color {
	return c&0x00ffffff | Color(alpha)<<24
}

// RGBA returns the alpha premultiplied 16 bit channels, see color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

func encodeChannel(value float32) uint8 {
	// also catches NaN
	if !(value > 0) {
		return 0
	}

	if value >= 1 {
		return 0xff
	}

	return uint8(num.Round(value * 255))
}

func decodeChannel(value uint8) float32 {
	return float32(value) / 255
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}
