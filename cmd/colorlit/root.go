package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	rootpkg "tools.zach/dev/colorlit"
	"tools.zach/dev/colorlit/internal/config"
	"tools.zach/dev/colorlit/internal/logger"
	"tools.zach/dev/colorlit/internal/swatch"
)

// ///////////////////////////////////////////////
// Application State
// ///////////////////////////////////////////////

// app carries the state shared by every subcommand. It is populated by the
// root command's PersistentPreRunE before any subcommand runs.
type app struct {
	out    io.Writer
	errOut io.Writer

	dataDir string
	noColor bool

	paths     DataPaths
	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
	swatch    *swatch.Renderer
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut}
}

// setup creates the data directory, seeds the default config on first run,
// loads the config, and installs the logger.
func (a *app) setup() error {
	a.paths = DataPaths{Root: a.dataDir}
	if err := os.MkdirAll(a.paths.Root, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if _, err := os.Stat(a.paths.Config()); os.IsNotExist(err) {
		if writeErr := os.WriteFile(a.paths.Config(), rootpkg.DefaultConfigTOML, 0o644); writeErr != nil {
			fmt.Fprintf(a.errOut, "warning: failed to write default config: %v\n", writeErr)
		}
	}

	cfg, err := config.Load(a.paths.Root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	opts := logger.Options{
		Level:     logger.ParseLevel(cfg.Log.Level),
		MaxSizeMB: cfg.Log.MaxSizeMB,
		Fallback:  a.errOut,
	}
	if cfg.Log.File {
		opts.File = a.paths.Log()
	}
	a.log, a.logCloser = logger.New(opts)
	slog.SetDefault(a.log)

	a.swatch = swatch.New(a.out, cfg.Output.Swatch && !a.noColor)
	if a.noColor {
		a.swatch.SetProfile(termenv.Ascii)
	}
	return nil
}

// close flushes the log file, if any.
func (a *app) close() {
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// ///////////////////////////////////////////////
// Root Command
// ///////////////////////////////////////////////

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "colorlit",
		Short: "Parse, format, and lint CSS color literals",
		Long: `colorlit converts CSS color literals (#rgb, #rgba, #rrggbb, #rrggbbaa and
the CSS named colors) to normalized colors and back to canonical hex.

It can also normalize and watch a theme file of named color roles, and lint
source trees for malformed hex literals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", defaultDataDir(), "Data directory for config, theme, and logs")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color swatches")

	root.AddCommand(
		newParseCmd(a),
		newFormatCmd(a),
		newNamesCmd(a),
		newThemeCmd(a),
		newLintCmd(a),
		newVersionCmd(a),
	)
	return root
}
