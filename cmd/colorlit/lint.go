package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"tools.zach/dev/colorlit/internal/lint"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint [PATH]",
		Short: "Report malformed hex color literals in a source tree",
		Long: `Scan files under PATH (default ".") selected by lint.include and
lint.exclude for '#' tokens that look like hex colors but do not parse.
Each finding is printed as path:line:col. The command fails when any
finding is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			rep, err := lint.Scan(cmd.Context(), root, lint.Options{
				Include: a.cfg.Lint.Include,
				Exclude: a.cfg.Lint.Exclude,
			})
			if err != nil {
				return fmt.Errorf("lint %s: %w", root, err)
			}
			for _, f := range rep.Findings {
				fmt.Fprintln(a.out, f)
			}
			slog.Info("lint finished", "root", root, "files", rep.Files, "literals", rep.Literals, "findings", len(rep.Findings))
			if n := len(rep.Findings); n > 0 {
				return fmt.Errorf("%d invalid color literal(s) in %d file(s) scanned", n, rep.Files)
			}
			return nil
		},
	}
}
