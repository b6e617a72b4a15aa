package main

import (
	"fmt"

	"tools.zach/dev/colorlit/csscolor"
)

// ///////////////////////////////////////////////
// Color Output
// ///////////////////////////////////////////////

// formatColor renders c in one of the output.format modes.
func formatColor(mode string, c csscolor.Color) string {
	switch mode {
	case "channels":
		return fmt.Sprintf("%.4f %.4f %.4f %.4f", c.R, c.G, c.B, c.A)
	case "bytes":
		r, g, b, a := c.Bytes()
		return fmt.Sprintf("%d %d %d %d", r, g, b, a)
	default: // "hex"
		return csscolor.Format(c)
	}
}

// printColor writes one color row honoring the configured format and swatch.
func (a *app) printColor(label string, c csscolor.Color) {
	fmt.Fprintln(a.out, a.swatch.Line(label, c, formatColor(a.cfg.Output.Format, c)))
}
