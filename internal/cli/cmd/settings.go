package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/settingsdeck/internal/application/usecase"
	"github.com/bnema/settingsdeck/internal/cli/model"
	"github.com/bnema/settingsdeck/internal/cli/styles"
	"github.com/bnema/settingsdeck/internal/infrastructure/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [subcommand]",
	Short: "Show the current settings",
	Long: `Show every setting with its current value, default and source.

When a subcommand is given, only the settings that apply to it are shown.

The output is controlled by the mode and format settings:
  --mode stdout       print the settings (default)
  --mode interactive  browse the settings in a terminal UI
  --format table      render a table (default)
  --format json|yaml  serialize the presentable entries

Examples:
  settingsdeck settings                  # Table of all settings
  settingsdeck settings sample -f yaml   # Settings of the sample subcommand as YAML
  settingsdeck settings -m interactive   # Browse interactively`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: config.Subcommands(),
	RunE:      runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	input := usecase.PresentSettingsInput{IncludeSettingsFile: true}
	if len(args) > 0 {
		input.Subcommand = args[0]
	}

	out, err := a.PresentSettingsUC.Execute(a.Ctx(), input)
	if err != nil {
		return err
	}

	if a.String(config.EntryMode) == config.ModeInteractive {
		browser := model.NewSettingsBrowser(a.Ctx(), a.Theme, out.Entries, out.SettingsFilePath)
		p := tea.NewProgram(browser, tea.WithAltScreen(), tea.WithContext(a.Ctx()))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run settings browser: %w", err)
		}
		return nil
	}

	w := cmd.OutOrStdout()
	format := a.String(config.EntryFormat)
	if format != config.FormatTable {
		return config.Encode(w, out.Entries, format)
	}

	renderer := styles.NewSettingsRenderer(a.Theme)
	table, err := renderer.RenderTable(out.Entries, styles.DefaultSettingsColumns())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, renderer.RenderHeader(out.SettingsFilePath))
	fmt.Fprintln(w, table)
	return nil
}
