package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/cli/styles"
	"github.com/bnema/pastor/internal/infrastructure/keyring"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version, build and storage information",
	Long: `Display version and build info, where the history is stored, how it
is sealed and which clipboard tool is used.`,
	Args: cobra.NoArgs,
	RunE: runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	details := []styles.AboutDetail{
		{Icon: styles.IconClipboard, Label: "Clipboard", Value: app.Clipboard.Backend()},
		{Icon: styles.IconLock, Label: "Cipher", Value: app.Config.Storage.Cipher},
		{Icon: styles.IconLock, Label: "Key store", Value: keyring.ServiceName + "/" + app.Profile.KeyName()},
		{Icon: styles.IconClock, Label: "History", Value: app.Store.Path()},
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo, details...))
	return nil
}
