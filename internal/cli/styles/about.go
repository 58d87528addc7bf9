package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pastor/internal/domain/build"
)

// AboutDetail is an extra labeled line shown under the build info.
type AboutDetail struct {
	Icon  string
	Label string
	Value string
}

// AboutRenderer renders build info next to the logo, fastfetch style.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders info and details beside the logo.
func (r *AboutRenderer) Render(info build.Info, details ...AboutDetail) string {
	profile := info.Profile
	if profile == "" {
		profile = build.CurrentProfile()
	}

	lines := []string{
		r.line(IconVersion, "Version", info.Version),
		r.line(IconGitBranch, "Commit", info.Commit),
		r.line(IconCalendar, "Built", info.BuildDate),
		r.line(IconGo, "Go", info.GoVersion),
		r.line(IconLock, "Profile", string(profile)),
	}
	if len(details) > 0 {
		lines = append(lines, "")
		for _, d := range details {
			lines = append(lines, r.line(d.Icon, d.Label, d.Value))
		}
	}
	lines = append(lines,
		"",
		r.icon(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()),
		r.line(IconHeart, "Made with love by", strings.Join(build.Contributors(), ", ")),
	)

	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(logoArt)
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", strings.Join(lines, "\n"))
}

const logoArt = `██████▄
██   ██
██████▀
██
██`

func (r *AboutRenderer) icon(icon string) string {
	return lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon)
}

func (r *AboutRenderer) line(icon, key, value string) string {
	return fmt.Sprintf("%s %s %s", r.icon(icon), r.theme.Subtle.Render(key), r.theme.Highlight.Render(value))
}
