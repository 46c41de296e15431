// Package cmd provides Cobra CLI commands for settingsdeck.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/settingsdeck/internal/cli"
	"github.com/bnema/settingsdeck/internal/cli/styles"
	"github.com/bnema/settingsdeck/internal/infrastructure/config"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   config.ApplicationName,
		Short: "Inspect where every setting of an application comes from",
		Long: `Settingsdeck resolves its settings from the command line, environment
variables, a settings file and built-in defaults, then shows each setting with
its current value, its default and the source that won.

Settings file locations, first match wins:
  $SETTINGSDECK_CONFIG
  ./settingsdeck.{yml,yaml,json}
  ~/.settingsdeck.{yml,yaml,json}

Running settingsdeck without a subcommand runs the subcommand named by the
"app" setting (settings by default).`,
		// Errors are rendered by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
				return nil
			}

			var err error
			app, err = cli.NewApp(cmd.Flags())
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runDefaultSubcommand,
	}
)

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags(), config.Catalog())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		renderExecuteError(os.Stderr, err)
		os.Exit(1)
	}
}

func renderExecuteError(w io.Writer, err error) {
	theme := styles.NewTheme(false)
	if app != nil && app.Theme != nil {
		theme = app.Theme
	}
	fmt.Fprintln(w, styles.NewSettingsRenderer(theme).RenderError(err))
}

// SetVersion sets the version reported by --version (called from main.go before Execute).
func SetVersion(version string) {
	rootCmd.Version = version
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func runDefaultSubcommand(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	name := a.String(config.EntryApp)
	for _, sub := range cmd.Commands() {
		if sub.Name() == name && sub.RunE != nil {
			return sub.RunE(sub, args)
		}
	}
	return fmt.Errorf("unknown subcommand %q", name)
}
