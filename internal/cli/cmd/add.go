package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/application/usecase"
	"github.com/bnema/pastor/internal/cli"
	"github.com/bnema/pastor/internal/infrastructure/persistence/filestore"
)

var addSource string

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Record text as if it had been copied",
	Long: `Record text into the history, as the watcher does for a new copy.

Without arguments the text is read from standard input and one trailing
newline is dropped. Text already in the history moves to the top instead
of being stored twice.

Examples:
  pastor add "hello world"
  git rev-parse HEAD | pastor add --source git`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addSource, "source", "", "Application the text came from")
}

func runAdd(cmd *cobra.Command, args []string) error {
	app, err := lockedApp()
	if err != nil {
		return err
	}
	history, err := mutableHistory(cmd, app)
	if err != nil {
		return err
	}

	text, err := addText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	if err := history.Observe(app.Ctx(), text, usecase.WithSourceApp(addSource)); err != nil {
		if errors.Is(err, usecase.ErrEmptyContent) {
			return errors.New("nothing to add: text is empty")
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessMessage(fmt.Sprintf("Added (%d entries)", history.Len())))
	return nil
}

// addText joins args with spaces, or reads in when there are none.
func addText(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}

// mutableHistory returns the loaded history for commands that change it.
// An unreadable history file is not silently replaced.
func mutableHistory(cmd *cobra.Command, app *cli.App) (*usecase.HistoryManager, error) {
	history, err := app.History()
	switch {
	case err == nil:
		return history, nil
	case errors.Is(err, filestore.ErrMigrationNotSaved):
		fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.WarningMessage(err.Error()))
		return history, nil
	default:
		return nil, fmt.Errorf("history could not be loaded: %w (run 'pastor reset' to start over)", err)
	}
}
