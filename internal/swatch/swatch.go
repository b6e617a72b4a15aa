// Package swatch renders small terminal color chips for parsed colors.
package swatch

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"tools.zach/dev/colorlit/csscolor"
)

// chipWidth is the number of cells a chip occupies.
const chipWidth = 2

// transparentChip stands in for fully transparent colors.
const transparentChip = "░░"

// Renderer draws chips for one output stream. Chips are suppressed when the
// stream has no color support or when disabled.
type Renderer struct {
	r       *lipgloss.Renderer
	enabled bool

	label lipgloss.Style
	muted lipgloss.Style
}

// New returns a Renderer for w. The color profile is detected from w.
func New(w io.Writer, enabled bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		r:       lr,
		enabled: enabled,
		label:   lr.NewStyle().Bold(true),
		muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// SetProfile overrides the detected color profile.
func (s *Renderer) SetProfile(p termenv.Profile) {
	s.r.SetColorProfile(p)
}

// Enabled reports whether chips are drawn.
func (s *Renderer) Enabled() bool {
	return s.enabled && s.r.ColorProfile() != termenv.Ascii
}

// Chip returns a colored block for c, or "" when chips are off. The alpha
// channel is ignored except that fully transparent colors get a checker glyph.
func (s *Renderer) Chip(c csscolor.Color) string {
	if !s.Enabled() {
		return ""
	}
	r, g, b, a := c.Bytes()
	if a == 0 {
		return s.muted.Render(transparentChip)
	}
	bg := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	return s.r.NewStyle().Background(bg).Render(strings.Repeat(" ", chipWidth))
}

// Line formats one output row: an optional chip, an optional bold label, and
// the rendered value.
func (s *Renderer) Line(label string, c csscolor.Color, value string) string {
	out := ""
	if chip := s.Chip(c); chip != "" {
		out = chip + " "
	}
	if label != "" {
		out += s.label.Render(label) + " "
	}
	return out + value
}
