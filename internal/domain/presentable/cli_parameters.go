// Package presentable restates resolved settings entries as immutable,
// display-ready records for documentation, help screens and samples.
package presentable

import "github.com/bnema/settingsdeck/internal/domain/entity"

const (
	// NoLongMsg is shown when an entry has no long CLI flag.
	NoLongMsg = "No long CLI parameter"
	// NoShortMsg is shown when an entry has no short CLI flag.
	NoShortMsg = "No short CLI parameter"
)

// CliParameters is an entry's CLI flags in presentable form.
type CliParameters struct {
	Long  string `json:"long" yaml:"long" jsonschema_description:"The long CLI flag"`
	Short string `json:"short" yaml:"short" jsonschema_description:"The short CLI flag"`
}

// NoCliParameters returns the sentinel pair for entries without a CLI surface.
func NoCliParameters() CliParameters {
	return CliParameters{Long: NoLongMsg, Short: NoShortMsg}
}

// FromCliParams projects an entry's CLI parameters.
// The long flag is rendered by the entry's CliParameters from nameDashed.
func FromCliParams(cli *entity.CliParameters, nameDashed string) CliParameters {
	if cli == nil {
		return NoCliParameters()
	}
	short := cli.Short
	if short == "" {
		short = NoShortMsg
	}
	return CliParameters{Long: cli.Long(nameDashed), Short: short}
}
