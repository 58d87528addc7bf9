package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from the history",
	Long: `Remove every entry. The history file and its key are kept; use
'pastor reset' to delete them.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	app, err := lockedApp()
	if err != nil {
		return err
	}

	// An unreadable history is replaced by the empty one.
	history, err := app.History()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.WarningMessage("discarding unreadable history: "+err.Error()))
	}
	removed := history.Len()

	if err := history.Clear(app.Ctx()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessMessage(fmt.Sprintf("Cleared %d entries", removed)))
	return nil
}
