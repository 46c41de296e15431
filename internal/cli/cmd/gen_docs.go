package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/settingsdeck/internal/application/usecase"
	"github.com/bnema/settingsdeck/internal/infrastructure/config"
	"github.com/bnema/settingsdeck/internal/infrastructure/docs"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	settingsReferenceFile = "settings.md"
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate documentation from CLI commands and settings",
	Long: `Generate documentation (man pages or markdown) from CLI command definitions.

The markdown format also writes a settings reference (settings.md) listing
every setting with its default, choices, CLI parameters and environment
variable.

Supported formats (--docs-format):
  markdown  Markdown files (default)
  man       Unix manual pages (groff format)

Examples:
  settingsdeck gen-docs                        # Markdown docs in ./docs
  settingsdeck gen-docs --docs-format man -o ./man`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	outputDir := a.String(config.EntryDocsOutput)
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Disable auto-generation timestamp for reproducible builds
	rootCmd.DisableAutoGenTag = true

	w := cmd.OutOrStdout()
	switch format := a.String(config.EntryDocsFormat); format {
	case config.FormatMan:
		header := &doc.GenManHeader{
			Title:   strings.ToUpper(config.ApplicationName),
			Section: "1",
			Source:  config.ApplicationName + " " + rootCmd.Version,
			Manual:  "Settingsdeck Manual",
			Date:    func() *time.Time { t := time.Now(); return &t }(),
		}
		if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
			return fmt.Errorf("generate man pages: %w", err)
		}
		fmt.Fprintf(w, "Generated man pages in %s\n", outputDir)
		listGenerated(w, outputDir, ".1")
	case config.FormatMarkdown:
		if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
			return fmt.Errorf("generate markdown docs: %w", err)
		}
		if err := writeSettingsReference(filepath.Join(outputDir, settingsReferenceFile)); err != nil {
			return err
		}
		fmt.Fprintf(w, "Generated markdown docs in %s\n", outputDir)
		listGenerated(w, outputDir, ".md")
	default:
		return fmt.Errorf("unsupported format %q (use: %s, %s)", format, config.FormatMan, config.FormatMarkdown)
	}

	return nil
}

func writeSettingsReference(path string) error {
	a := GetApp()
	out, err := a.PresentSettingsUC.Execute(a.Ctx(), usecase.PresentSettingsInput{IncludeSettingsFile: true})
	if err != nil {
		return err
	}

	page, err := docs.SettingsMarkdown(config.ApplicationName, out.Entries, docs.ReferenceRows())
	if err != nil {
		return fmt.Errorf("render settings reference: %w", err)
	}
	if err := os.WriteFile(path, []byte(page), filePerm); err != nil {
		return fmt.Errorf("write settings reference: %w", err)
	}
	return nil
}

func listGenerated(w io.Writer, dir, ext string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return // Non-fatal
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(w, "  - %s\n", e.Name())
		}
	}
}
