package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/cli/styles"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the history file and its encryption key",
	Long: `Delete the encrypted history file and remove its key from the OS
credential store. A new key is created on the next write.

Examples:
  pastor reset           # Ask before deleting
  pastor reset --force   # Delete without asking`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Delete without confirmation")
}

func runReset(cmd *cobra.Command, _ []string) error {
	app, err := lockedApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !resetForce {
		msg := fmt.Sprintf("%s Delete %s and its key?", styles.IconTrash, app.Store.Path())
		if !app.Theme.Confirm(cmd.InOrStdin(), out, msg) {
			fmt.Fprintln(out, app.Theme.Subtle.Render("Canceled"))
			return nil
		}
	}

	if err := app.Store.DeleteAll(app.Ctx()); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}

	fmt.Fprintln(out, app.Theme.SuccessMessage("History and key deleted"))
	return nil
}
