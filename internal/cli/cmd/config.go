package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/pastor/internal/infrastructure/config"
	"github.com/bnema/pastor/internal/infrastructure/lock"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect pastor's configuration",
	Long: `Inspect the configuration file, the effective settings and the files
pastor uses. The config file is created with defaults on first run.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and data locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration in effect, after defaults, environment
overrides (PASTOR_*) and clamping of out-of-range values.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	configFile := "(unavailable)"
	if app.ConfigMgr != nil {
		configFile = app.ConfigMgr.ConfigFile()
	}
	logDir, err := app.Paths.LogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}

	rows := [][2]string{
		{"Config", configFile},
		{"History", app.Store.Path()},
		{"Lock", filepath.Join(app.DataDir, lock.FileName)},
		{"Logs", logDir},
	}

	out := cmd.OutOrStdout()
	for _, row := range rows {
		fmt.Fprintf(out, "%s %s\n", app.Theme.Subtle.Width(8).Render(row[0]), app.Theme.Normal.Render(row[1]))
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
