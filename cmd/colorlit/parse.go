package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"tools.zach/dev/colorlit/csscolor"
)

// ///////////////////////////////////////////////
// parse
// ///////////////////////////////////////////////

func newParseCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "parse LITERAL...",
		Short: "Parse color literals and print them in the configured format",
		Long: `Parse each literal and print the resulting color.

Without --strict an unparseable literal is replaced by output.fallback
(opaque white by default) and a warning is logged. With --strict every
invalid literal is reported and the command fails.`,
		Example: `  colorlit parse "#f0a" rebeccapurple
  colorlit parse --strict "#12345"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParse(args, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on invalid literals instead of substituting the fallback color")
	return cmd
}

func (a *app) runParse(args []string, strict bool) error {
	fallback := a.cfg.FallbackColor()
	var failed []error
	for _, lit := range args {
		label := ""
		if len(args) > 1 {
			label = lit
		}

		c, err := csscolor.TryParse(lit)
		if err != nil {
			if strict {
				fmt.Fprintln(a.errOut, err)
				failed = append(failed, err)
				continue
			}
			slog.Warn("substituting fallback color", "literal", lit, "fallback", csscolor.Format(fallback))
			c = fallback
		}
		a.printColor(label, c)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d invalid literal(s): %w", len(failed), errors.Join(failed...))
	}
	return nil
}

// ///////////////////////////////////////////////
// format
// ///////////////////////////////////////////////

func newFormatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format R G B [A]",
		Short: "Format channel values in [0,1] as a hex literal",
		Long: `Format red, green, blue, and optional alpha channels (floats in [0,1],
alpha defaults to 1) as canonical lowercase hex. Each channel is quantized as
trunc(v*256) clamped to 0..255, so 0.5 becomes 80 and 1.0 becomes ff.`,
		Example: `  colorlit format 1 0.5 0
  colorlit format 0 0 0 0.5`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseChannels(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, a.swatch.Line("", c, csscolor.Format(c)))
			return nil
		},
	}
}

// parseChannels reads 3 or 4 float arguments into a Color.
func parseChannels(args []string) (csscolor.Color, error) {
	vals := [4]float64{0, 0, 0, 1}
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return csscolor.Color{}, fmt.Errorf("channel %d: %q is not a number", i+1, s)
		}
		vals[i] = v
	}
	return csscolor.Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}
