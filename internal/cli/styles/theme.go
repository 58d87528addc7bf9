// Package styles provides the lipgloss styling of pastor's CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of base colors a Theme is derived from.
type Palette struct {
	Background     string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Warning        string
	Error          string
}

// Theme holds the colors and pre-built styles of the CLI.
type Theme struct {
	Background lipgloss.Color
	Accent     lipgloss.Color
	Warning    lipgloss.Color

	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// History list
	Index     lipgloss.Style
	Badge     lipgloss.Style
	BadgeMute lipgloss.Style
}

// DefaultDarkPalette returns hardcoded dark theme colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Warning:        "#f59e0b",
		Error:          "#ef4444",
	}
}

// NewTheme creates the default dark Theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette derives a Theme from p. Success uses the accent.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &Theme{
		Background: lipgloss.Color(p.Background),
		Accent:     lipgloss.Color(p.Accent),
		Warning:    lipgloss.Color(p.Warning),

		Normal:       fg(p.Text),
		Subtle:       fg(p.Muted),
		Highlight:    fg(p.Accent).Bold(true),
		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Accent),

		Index:     fg(p.Accent).Width(4).Align(lipgloss.Right),
		Badge:     fg(p.Background).Background(lipgloss.Color(p.Accent)).Padding(0, 1),
		BadgeMute: fg(p.Text).Background(lipgloss.Color(p.SurfaceVariant)).Padding(0, 1),
	}
}

// SuccessMessage renders a confirmation line.
func (t *Theme) SuccessMessage(msg string) string {
	return t.SuccessStyle.Render(IconCheck) + " " + t.Normal.Render(msg)
}

// WarningMessage renders a warning line.
func (t *Theme) WarningMessage(msg string) string {
	return t.WarningStyle.Render(IconWarning + " " + msg)
}

// ErrorMessage renders an error line.
func (t *Theme) ErrorMessage(msg string) string {
	return t.ErrorStyle.Render(msg)
}
