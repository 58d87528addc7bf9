package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/application/usecase"
	"github.com/bnema/pastor/internal/cli/styles"
	"github.com/bnema/pastor/internal/domain/entity"
)

var (
	listSearch string
	listJSON   bool
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the clipboard history",
	Long: `Show the clipboard history, newest first.

The number in the first column is the entry's position, as expected by
'pastor copy'. Filtering keeps those positions.

Examples:
  pastor list                    # Show all entries
  pastor list -s token           # Entries containing "token", any case
  pastor list -n 5 --json        # Five newest entries as JSON`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show entries containing this text (case-insensitive)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Show at most this many entries (0 for all)")
}

func runList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	history, err := app.History()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.WarningMessage("history could not be loaded: "+err.Error()))
	}

	entries := history.Entries()
	matches, err := filterHistory(app.Ctx(), entries, listSearch)
	if err != nil {
		return err
	}
	rows := historyRows(entries, matches, listLimit)
	stats := entity.StatsOf(entries)

	out := cmd.OutOrStdout()
	if listJSON {
		return writeHistoryJSON(out, rows, stats)
	}

	renderer := styles.NewHistoryRenderer(app.Theme)
	if len(rows) == 0 {
		fmt.Fprintln(out, renderer.RenderEmpty(listSearch))
		return nil
	}
	fmt.Fprintln(out, renderer.Render(rows, stats))
	return nil
}

// filterHistory runs query through a HistoryFilter and waits for its result.
func filterHistory(ctx context.Context, entries []entity.ClipEntry, query string) ([]entity.ClipEntry, error) {
	filter := usecase.NewHistoryFilter()
	gen := filter.Submit(entries, query)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-filter.Results():
			if res.Generation == gen {
				return res.Entries, nil
			}
		}
	}
}

// historyRows pairs each match with its position in entries. limit <= 0
// keeps every match.
func historyRows(entries, matches []entity.ClipEntry, limit int) []styles.HistoryRow {
	positions := make(map[uuid.UUID]int, len(entries))
	for i, e := range entries {
		positions[e.ID] = i
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	rows := make([]styles.HistoryRow, 0, len(matches))
	for _, e := range matches {
		rows = append(rows, styles.HistoryRow{Index: positions[e.ID], Entry: e})
	}
	return rows
}

type historyEntryJSON struct {
	Index       int       `json:"index"`
	ID          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	AccessCount int       `json:"access_count"`
	IsFavorite  bool      `json:"is_favorite"`
	SourceApp   string    `json:"source_app,omitempty"`
}

type historyJSON struct {
	Entries []historyEntryJSON      `json:"entries"`
	Stats   entity.ClipHistoryStats `json:"stats"`
}

func writeHistoryJSON(w io.Writer, rows []styles.HistoryRow, stats entity.ClipHistoryStats) error {
	doc := historyJSON{
		Entries: make([]historyEntryJSON, 0, len(rows)),
		Stats:   stats,
	}
	for _, row := range rows {
		e := row.Entry
		doc.Entries = append(doc.Entries, historyEntryJSON{
			Index:       row.Index,
			ID:          e.ID,
			Content:     e.Content,
			Timestamp:   e.Timestamp,
			AccessCount: e.AccessCount,
			IsFavorite:  e.IsFavorite,
			SourceApp:   e.SourceApp,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return nil
}
