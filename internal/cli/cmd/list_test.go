package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pastor/internal/cli/styles"
	"github.com/bnema/pastor/internal/domain/entity"
)

func fixtureEntries() []entity.ClipEntry {
	return []entity.ClipEntry{
		{
			ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Content:     "git push --force-with-lease",
			Timestamp:   time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
			AccessCount: 2,
			SourceApp:   "kitty",
		},
		{
			ID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Content:   "https://example.com/a",
			Timestamp: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        uuid.MustParse("44444444-4444-4444-4444-444444444444"),
			Content:   "SELECT * FROM entries",
			Timestamp: time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Content:    "línea <b>uno</b>\nline two",
			Timestamp:  time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
			IsFavorite: true,
		},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestWriteHistoryJSON_Golden(t *testing.T) {
	entries := fixtureEntries()
	rows := []styles.HistoryRow{
		{Index: 0, Entry: entries[0]},
		{Index: 3, Entry: entries[3]},
	}

	var buf bytes.Buffer
	require.NoError(t, writeHistoryJSON(&buf, rows, entity.StatsOf(entries)))

	newGoldie(t).Assert(t, "list_json", buf.Bytes())
}

func TestWriteHistoryJSON_EmptyGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHistoryJSON(&buf, nil, entity.StatsOf(nil)))

	newGoldie(t).Assert(t, "list_json_empty", buf.Bytes())
}

func TestHistoryRows_KeepsPositions(t *testing.T) {
	entries := fixtureEntries()

	matches, err := filterHistory(context.Background(), entries, "LÍNEA")
	require.NoError(t, err)

	rows := historyRows(entries, matches, 0)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Index)
	assert.Equal(t, entries[3].ID, rows[0].Entry.ID)
}

func TestHistoryRows_Limit(t *testing.T) {
	entries := fixtureEntries()

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{"no limit", 0, []int{0, 1, 2, 3}},
		{"negative is no limit", -1, []int{0, 1, 2, 3}},
		{"limit", 2, []int{0, 1}},
		{"limit above size", 10, []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := historyRows(entries, entries, tt.limit)
			got := make([]int, 0, len(rows))
			for _, r := range rows {
				got = append(got, r.Index)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterHistory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Large enough to filter asynchronously, so the result races the cancel.
	entries := make([]entity.ClipEntry, 0, 600)
	for i := range 600 {
		entries = append(entries, entity.NewClipEntry(strings.Repeat("a", i+1)))
	}

	matches, err := filterHistory(ctx, entries, "zzz")
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
		return
	}
	assert.Empty(t, matches)
}
