package entity

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// DefaultPreviewLimit is the number of runes shown for an entry in list views.
const DefaultPreviewLimit = 64

// ClipEntry is one copied text retained in the clipboard history.
//
// Entries have two notions of sameness: ID identifies an entry for
// targeted removal, Content decides whether a new copy is a duplicate.
type ClipEntry struct {
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	IsFavorite  bool      `json:"is_favorite"`
	AccessCount int       `json:"access_count"`
	SourceApp   string    `json:"source_app,omitempty"`
}

// ErrInvalidClipEntry is returned by Validate for entries that cannot be stored.
var ErrInvalidClipEntry = errors.New("invalid clip entry")

// NewClipEntry creates an entry for newly observed clipboard text.
func NewClipEntry(content string) ClipEntry {
	return NewClipEntryAt(content, time.Now())
}

// NewClipEntryAt creates an entry with an explicit creation time.
func NewClipEntryAt(content string, ts time.Time) ClipEntry {
	return ClipEntry{
		ID:        uuid.New(),
		Content:   content,
		Timestamp: ts.UTC(),
	}
}

// SameID reports whether both values denote the same entry.
func (e ClipEntry) SameID(other ClipEntry) bool {
	return e.ID == other.ID
}

// SameContent reports whether other duplicates e (exact, case-sensitive match).
func (e ClipEntry) SameContent(other ClipEntry) bool {
	return e.HasContent(other.Content)
}

// HasContent reports whether the entry holds exactly text.
func (e ClipEntry) HasContent(text string) bool {
	return e.Content == text
}

// Touch records another copy of the same content.
func (e *ClipEntry) Touch() {
	e.AccessCount++
}

// Validate checks the invariants every stored entry must hold.
func (e ClipEntry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrInvalidClipEntry
	}
	if e.Content == "" {
		return ErrInvalidClipEntry
	}
	if e.AccessCount < 0 {
		return ErrInvalidClipEntry
	}
	return nil
}

// Preview returns the content without leading whitespace, cut to limit runes
// with a trailing "..." when longer.
func (e ClipEntry) Preview(limit int) string {
	trimmed := strings.TrimLeftFunc(e.Content, unicode.IsSpace)
	if limit <= 0 {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) <= limit {
		return trimmed
	}
	return string(runes[:limit]) + "..."
}

// IsTruncated reports whether Preview(limit) shortens the content.
func (e ClipEntry) IsTruncated(limit int) bool {
	if limit <= 0 {
		return false
	}
	trimmed := strings.TrimLeftFunc(e.Content, unicode.IsSpace)
	return len([]rune(trimmed)) > limit
}

// ClipHistoryStats summarizes a history snapshot.
type ClipHistoryStats struct {
	TotalEntries int `json:"total_entries"`
	TotalCopies  int `json:"total_copies"`
	Favorites    int `json:"favorites"`
}

// StatsOf computes ClipHistoryStats for entries. Each entry counts its
// initial copy plus every recorded re-copy.
func StatsOf(entries []ClipEntry) ClipHistoryStats {
	stats := ClipHistoryStats{TotalEntries: len(entries)}
	for _, e := range entries {
		stats.TotalCopies += e.AccessCount + 1
		if e.IsFavorite {
			stats.Favorites++
		}
	}
	return stats
}
