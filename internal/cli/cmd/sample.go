package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/settingsdeck/internal/application/usecase"
	"github.com/bnema/settingsdeck/internal/infrastructure/config"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print a complete sample settings file",
	Long: `Print a settings file containing every setting.

Values are placeholders unless --sample-effective is set, in which case the
current values are written instead. The format follows --sample-format.

Examples:
  settingsdeck sample > settingsdeck.yml
  settingsdeck sample --sample-format json --sample-effective`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := a.GenerateSampleUC.Execute(a.Ctx(), usecase.GenerateSettingsSampleInput{
		Effective: a.Bool(config.EntrySampleEffective),
	})
	if err != nil {
		return err
	}

	return config.WriteSample(cmd.OutOrStdout(), out.Document, a.String(config.EntrySampleFormat))
}
