package csscolor

import (
	"errors"
	"fmt"
)

// ErrInvalidColorLiteral is matched by every [InvalidLiteralError].
var ErrInvalidColorLiteral = errors.New("invalid color literal")

// InvalidLiteralError reports text that is neither a hex color of an
// accepted length nor a known color name.
type InvalidLiteralError struct {
	// Text is the offending input as the failing stage saw it.
	Text string
}

func (e *InvalidLiteralError) Error() string {
	return fmt.Sprintf("can't parse color from %q", e.Text)
}

// Is lets errors.Is match [ErrInvalidColorLiteral].
func (e *InvalidLiteralError) Is(target error) bool {
	return target == ErrInvalidColorLiteral
}
