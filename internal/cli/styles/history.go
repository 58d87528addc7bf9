package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/pastor/internal/domain/entity"
)

// HistoryRow is one listed entry with its position in the full history.
// The position is what `pastor copy` expects.
type HistoryRow struct {
	Index int
	Entry entity.ClipEntry
}

// HistoryRenderer renders clipboard history listings.
type HistoryRenderer struct {
	theme        *Theme
	previewLimit int
}

// NewHistoryRenderer creates a history renderer with the given theme.
func NewHistoryRenderer(theme *Theme) *HistoryRenderer {
	return &HistoryRenderer{theme: theme, previewLimit: entity.DefaultPreviewLimit}
}

// Render renders rows, one entry per line, followed by a stats footer.
func (r *HistoryRenderer) Render(rows []HistoryRow, stats entity.ClipHistoryStats) string {
	lines := make([]string, 0, len(rows)+2)
	for _, row := range rows {
		lines = append(lines, r.renderRow(row))
	}
	lines = append(lines, "", r.renderStats(stats))
	return strings.Join(lines, "\n")
}

// RenderEmpty renders the message shown when nothing matches.
func (r *HistoryRenderer) RenderEmpty(query string) string {
	if query == "" {
		return r.theme.Subtle.Render(IconClipboard + " History is empty")
	}
	return r.theme.Subtle.Render(fmt.Sprintf("%s No entries match %q", IconSearch, query))
}

func (r *HistoryRenderer) renderRow(row HistoryRow) string {
	e := row.Entry
	preview := strings.ReplaceAll(e.Preview(r.previewLimit), "\n", " ")

	parts := []string{
		r.theme.Index.Render(fmt.Sprintf("%d", row.Index)),
		r.theme.Normal.Render(preview),
		r.theme.TimeBadge(e.Timestamp),
		r.theme.CopiesBadge(e.AccessCount),
	}
	if src := r.theme.SourceBadge(e.SourceApp); src != "" {
		parts = append(parts, src)
	}
	if e.IsFavorite {
		parts = append(parts, lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconStar))
	}
	return strings.Join(parts, " ")
}

func (r *HistoryRenderer) renderStats(stats entity.ClipHistoryStats) string {
	return r.theme.Subtle.Render(fmt.Sprintf(
		"%d entries, %d copies, %d favorites",
		stats.TotalEntries, stats.TotalCopies, stats.Favorites,
	))
}
