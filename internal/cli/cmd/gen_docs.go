package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/pastor/internal/domain/build"
	xdgadapter "github.com/bnema/pastor/internal/infrastructure/xdg"
)

const docsDirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands",
	Long: `Generate man pages or markdown from the CLI command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

By default, man pages are installed to ~/.local/share/man/man1/ so
'man pastor' works right away. Run 'mandb' if it does not.

Examples:
  pastor gen-docs                      # Install man pages
  pastor gen-docs --format markdown    # Generate markdown into ./docs
  pastor gen-docs --output ./man       # Generate to a local directory`,
	Hidden: true,
	RunE:   runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	outputDir, err := docsOutputDir(genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, docsDirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No generation timestamp in the footer, for reproducible builds.
	rootCmd.DisableAutoGenTag = true

	out := cmd.OutOrStdout()
	switch genDocsFormat {
	case "man":
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "PASTOR",
			Section: "1",
			Source:  "pastor " + buildInfo.Version,
			Manual:  "Pastor Manual",
			Date:    &now,
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		fmt.Fprintf(out, "Installed man pages to %s\n", outputDir)
		listGenerated(out, outputDir, ".1")
	case "markdown":
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		fmt.Fprintf(out, "Generated markdown docs in %s\n", outputDir)
		listGenerated(out, outputDir, ".md")
	}
	return nil
}

func docsOutputDir(format, override string) (string, error) {
	switch format {
	case "man":
		if override != "" {
			return override, nil
		}
		manDir, err := xdgadapter.New(build.CurrentProfile()).ManDir()
		if err != nil {
			return "", fmt.Errorf("resolve man directory: %w", err)
		}
		return manDir, nil
	case "markdown":
		if override != "" {
			return override, nil
		}
		return "./docs", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
