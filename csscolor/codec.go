package csscolor

import (
	"fmt"
	"math"
	"strings"
)

// ///////////////////////////////////////////////
// Parsing
// ///////////////////////////////////////////////

// TryParse resolves a color literal. Surrounding whitespace and one leading
// "#" are stripped; if what remains is hex-shaped it is decoded as hex.
// Otherwise the trimmed text (still carrying any "#") is lowercased and
// looked up as a color name. Hex always wins, so "face" is a color and never
// a name lookup.
func TryParse(text string) (Color, error) {
	trimmed := strings.TrimSpace(text)
	digits := strings.TrimPrefix(trimmed, "#")
	if isHexShaped(digits) {
		return DecodeHex(digits)
	}
	if c, ok := Lookup(asciiLower(trimmed)); ok {
		return c, nil
	}
	return Color{}, &InvalidLiteralError{Text: trimmed}
}

// ParseOr is the permissive form of [TryParse]: any failure yields fallback.
func ParseOr(text string, fallback Color) Color {
	c, err := TryParse(text)
	if err != nil {
		return fallback
	}
	return c
}

// Parse is [ParseOr] with an opaque [White] fallback. Use [TryParse] when
// the caller must distinguish bad input from a literal white.
func Parse(text string) Color {
	return ParseOr(text, White)
}

// asciiLower lowercases A-Z only, matching CSS keyword comparison.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// ///////////////////////////////////////////////
// Formatting
// ///////////////////////////////////////////////

// Format returns c as lowercase "#rrggbb", or "#rrggbbaa" when the alpha
// byte is below 255.
//
// Channels are quantized as trunc(v*256) saturated to [0, 255], not
// round(v*255). A color produced by [DecodeHex] still formats back to its
// input digits: b/255*256 only reaches the next integer for b = 255, which
// saturates.
func Format(c Color) string {
	r, g, b, a := c.Bytes()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// quantize maps a normalized channel to a byte with the truncating x256
// rule. Out-of-range values saturate; NaN maps to 0.
func quantize(v float64) uint8 {
	x := v * 256
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 255:
		return 255
	}
	return uint8(x)
}
