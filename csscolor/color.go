// Package csscolor converts CSS color literals to and from normalized sRGB
// values.
//
// Two literal forms are understood: hex notation (#rgb, #rgba, #rrggbb,
// #rrggbbaa, with or without the leading "#") and the CSS named-color
// keywords, including "transparent". Functional notations such as rgb() and
// hsl() are not parsed.
//
// [TryParse] is the strict entry point and reports [ErrInvalidColorLiteral];
// [Parse] and [ParseOr] never fail and substitute a default instead. [Format]
// serializes a [Color] back to canonical lowercase hex.
package csscolor

import "image/color"

// ///////////////////////////////////////////////
// Color
// ///////////////////////////////////////////////

// Color is an sRGB color with straight (non-premultiplied) alpha. Each
// channel is normalized to [0, 1].
type Color struct {
	R, G, B, A float64
}

// Well-known colors.
var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{A: 1}
	Transparent = Color{}
)

// FromBytes builds a Color from 8-bit channels. Each channel is stored as
// b/255, so rounding channel*255 gives back b exactly.
func FromBytes(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// FromNRGBA converts an [image/color.NRGBA] into a Color.
func FromNRGBA(c color.NRGBA) Color {
	return FromBytes(c.R, c.G, c.B, c.A)
}

// Bytes returns the channels quantized with the same rule [Format] uses.
func (c Color) Bytes() (r, g, b, a uint8) {
	return quantize(c.R), quantize(c.G), quantize(c.B), quantize(c.A)
}

// NRGBA converts c to an [image/color.NRGBA] for renderers built on the
// standard image packages.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// RGBA implements [image/color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Opaque reports whether the alpha channel quantizes to 255.
func (c Color) Opaque() bool {
	return quantize(c.A) == 255
}

// Hex is shorthand for [Format](c).
func (c Color) Hex() string {
	return Format(c)
}

// String implements [fmt.Stringer] using the canonical hex form.
func (c Color) String() string {
	return Format(c)
}

// SetHex overwrites c with the result of [Parse](text). Unparseable text
// leaves c set to [White].
func (c *Color) SetHex(text string) {
	*c = Parse(text)
}
