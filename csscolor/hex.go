package csscolor

// ///////////////////////////////////////////////
// Hex Decoding
// ///////////////////////////////////////////////

// DecodeHex decodes a run of 3, 4, 6, or 8 hex digits into a Color. The
// caller strips any "#" and surrounding whitespace first. Short forms expand
// each digit d to d*17; a missing alpha digit means fully opaque.
func DecodeHex(digits string) (Color, error) {
	var ch [4]uint8
	ch[3] = 0xff

	switch len(digits) {
	case 3, 4:
		for i := 0; i < len(digits); i++ {
			v, ok := hexDigit(digits[i])
			if !ok {
				return Color{}, &InvalidLiteralError{Text: digits}
			}
			ch[i] = v * 0x11
		}
	case 6, 8:
		for i := 0; i < len(digits)/2; i++ {
			hi, ok1 := hexDigit(digits[2*i])
			lo, ok2 := hexDigit(digits[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, &InvalidLiteralError{Text: digits}
			}
			ch[i] = hi<<4 | lo
		}
	default:
		return Color{}, &InvalidLiteralError{Text: digits}
	}

	return FromBytes(ch[0], ch[1], ch[2], ch[3]), nil
}

// isHexShaped reports whether s has an accepted length and only hex digits,
// i.e. whether [DecodeHex] would succeed on it.
func isHexShaped(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexDigit(s[i]); !ok {
			return false
		}
	}
	return true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
