package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/application/usecase"
	"github.com/bnema/pastor/internal/cli"
	"github.com/bnema/pastor/internal/infrastructure/lock"
)

var copyCmd = &cobra.Command{
	Use:   "copy <index>",
	Short: "Copy a history entry back to the clipboard",
	Long: `Copy the entry at the given position (see 'pastor list') to the
system clipboard and move it to the top of the history.

While a watcher is running the history is left to it: the watcher sees
the copy and moves the entry to the top itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 {
		return fmt.Errorf("invalid index %q: must be a non-negative number", args[0])
	}

	app, promote, err := copyApp()
	if err != nil {
		return err
	}

	var history *usecase.HistoryManager
	if promote {
		history, err = mutableHistory(cmd, app)
	} else {
		history, err = app.History()
	}
	if err != nil {
		return err
	}

	uc := usecase.NewCopyEntryUseCase(app.Clipboard, history)
	if err := uc.Copy(app.Ctx(), index, promote); err != nil {
		if errors.Is(err, usecase.ErrNoSuchEntry) {
			return fmt.Errorf("%w (history has %d entries)", err, history.Len())
		}
		return err
	}

	entry, _ := history.Entry(0)
	if !promote {
		entry, _ = history.Entry(index)
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessMessage("Copied: "+entry.Preview(40)))
	return nil
}

// copyApp takes the history lock when it is free. promote is false when
// a watcher holds it.
func copyApp() (*cli.App, bool, error) {
	app, err := requireApp()
	if err != nil {
		return nil, false, err
	}
	err = app.LockHistory()
	switch {
	case err == nil:
		return app, true, nil
	case errors.Is(err, lock.ErrLocked):
		return app, false, nil
	default:
		return nil, false, fmt.Errorf("lock history: %w", err)
	}
}
