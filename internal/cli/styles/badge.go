package styles

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// CopiesBadge renders how many times an entry was copied.
func (t *Theme) CopiesBadge(accessCount int) string {
	copies := accessCount + 1
	if copies == 1 {
		return t.BadgeMute.Render("1 copy")
	}
	return t.Badge.Render(fmt.Sprintf("%d copies", copies))
}

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	return t.BadgeMute.Render(RelativeTime(tm))
}

// SourceBadge renders the application an entry was copied from.
// It returns "" when the source is unknown.
func (t *Theme) SourceBadge(app string) string {
	if app == "" {
		return ""
	}
	return t.BadgeMute.Render(app)
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	if time.Since(tm) < time.Minute {
		return "just now"
	}
	return humanize.Time(tm)
}
