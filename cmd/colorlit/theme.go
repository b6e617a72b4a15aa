package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"tools.zach/dev/colorlit/internal/filelock"
	"tools.zach/dev/colorlit/internal/paths"
	"tools.zach/dev/colorlit/internal/theme"
)

// ///////////////////////////////////////////////
// theme
// ///////////////////////////////////////////////

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect, normalize, or watch the configured theme",
	}
	cmd.AddCommand(
		newThemeShowCmd(a),
		newThemeNormalizeCmd(a),
		newThemeWatchCmd(a),
	)
	return cmd
}

// themeSource builds a [theme.SourceConfig] from the loaded config.
func (a *app) themeSource() theme.SourceConfig {
	return theme.SourceConfig{
		Source: a.cfg.Theme.Source,
		File:   a.cfg.ThemePath(a.paths.Root),
		URL:    a.cfg.Theme.URL,
	}
}

// localThemePath returns the theme file path, or an error when the theme
// comes from a URL and so cannot be rewritten.
func (a *app) localThemePath() (string, error) {
	if a.cfg.Theme.Source != "file" {
		return "", fmt.Errorf("theme source is %q; only file themes can be rewritten", a.cfg.Theme.Source)
	}
	return a.cfg.ThemePath(a.paths.Root), nil
}

// ///////////////////////////////////////////////
// theme show
// ///////////////////////////////////////////////

func newThemeShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every theme role with its resolved color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.Load(cmd.Context(), a.themeSource(), a.paths.Root)
			if th == nil {
				return err
			}
			if err != nil {
				slog.Warn("theme loaded from cache", "error", err)
			}

			palette, resolveErr := th.Resolve()
			for _, role := range palette.Roles() {
				a.printColor(role, palette[role])
			}

			var re *theme.ResolveError
			if errors.As(resolveErr, &re) {
				for _, r := range re.Roles {
					fmt.Fprintf(a.errOut, "%s: %v\n", r.Role, r.Err)
				}
			}
			return resolveErr
		},
	}
}

// ///////////////////////////////////////////////
// theme normalize
// ///////////////////////////////////////////////

func newThemeNormalizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Rewrite theme literals as canonical hex",
		Long: `Rewrite every valid literal in the theme file as lowercase #rrggbb or
#rrggbbaa and upgrade the file to the current layout. Invalid literals are
left as written and reported. The file is not touched when already normalized.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.localThemePath()
			if err != nil {
				return err
			}
			changed, err := theme.Normalize(path)
			if changed {
				fmt.Fprintf(a.out, "normalized %s\n", path)
			} else if err == nil {
				fmt.Fprintf(a.out, "%s already normalized\n", path)
			}
			return err
		},
	}
}

// ///////////////////////////////////////////////
// theme watch
// ///////////////////////////////////////////////

func newThemeWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Normalize the theme file whenever it changes",
		Long: `Normalize the theme file once, then again every time it changes, until
interrupted. Only one watcher may run per theme file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.localThemePath()
			if err != nil {
				return err
			}
			poll := time.Duration(a.cfg.Theme.PollSeconds) * time.Second
			return a.watchTheme(cmd.Context(), path, poll)
		},
	}
}

// watchTheme holds the theme's lock file and normalizes the theme on every
// change until ctx is done.
func (a *app) watchTheme(ctx context.Context, path string, poll time.Duration) error {
	lockPath := paths.LockFileFor(path)
	lock, err := filelock.Acquire(lockPath)
	if err != nil {
		if errors.Is(err, filelock.ErrLocked) {
			return fmt.Errorf("another watcher holds %s (pid %d)", lockPath, filelock.Holder(lockPath))
		}
		return err
	}
	defer lock.Release()

	w, err := theme.NewWatcher(path, poll)
	if err != nil {
		return fmt.Errorf("watch theme: %w", err)
	}
	defer w.Close()

	if w.Polling() {
		slog.Info("using polling mode for theme watching", "interval", poll)
	}
	slog.Info("watching theme", "path", w.Path())

	a.normalizeOnce(path)
	for {
		select {
		case <-ctx.Done():
			slog.Info("theme watch stopped")
			return nil
		case <-w.Events():
			a.normalizeOnce(path)
		}
	}
}

// normalizeOnce normalizes the theme and logs the outcome. Errors are logged
// rather than returned so the watch loop keeps running.
func (a *app) normalizeOnce(path string) {
	changed, err := theme.Normalize(path)
	var re *theme.ResolveError
	switch {
	case errors.Is(err, theme.ErrNotInPlace):
		slog.Warn("theme left unchanged", "error", err)
		return
	case errors.As(err, &re):
		for _, r := range re.Roles {
			slog.Warn("invalid theme color", "role", r.Role, "literal", r.Literal)
		}
	case err != nil:
		slog.Error("normalize theme failed", "error", err)
		return
	}
	if changed {
		slog.Info("theme normalized", "path", path)
		fmt.Fprintf(a.out, "normalized %s\n", path)
	}
}
