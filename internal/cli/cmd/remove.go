package cmd

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/domain/entity"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove one entry from the history",
	Long:    `Remove the entry with the given id. Ids are shown by 'pastor list --json'.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid entry id %q: %w", args[0], err)
	}

	app, err := lockedApp()
	if err != nil {
		return err
	}
	history, err := mutableHistory(cmd, app)
	if err != nil {
		return err
	}

	if !slices.ContainsFunc(history.Entries(), func(e entity.ClipEntry) bool { return e.ID == id }) {
		return fmt.Errorf("no history entry with id %s", id)
	}
	if err := history.Remove(app.Ctx(), id); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessMessage(fmt.Sprintf("Removed %s (%d entries left)", id, history.Len())))
	return nil
}
