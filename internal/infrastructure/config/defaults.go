// Package config resolves settingsdeck's own settings from flags, environment
// variables, a settings file and defaults.
package config

import "github.com/bnema/settingsdeck/internal/domain/entity"

// ApplicationName is used for the settings-file key, env prefix and file names.
const ApplicationName = "settingsdeck"

// Subcommand names.
const (
	SubcommandSettings = "settings"
	SubcommandSample   = "sample"
	SubcommandSchema   = "schema"
	SubcommandGenDocs  = "gen-docs"
)

// Entry names.
const (
	EntryApp             = "app"
	EntryDisplayColor    = "display_color"
	EntryEditorCommand   = "editor_command"
	EntryEditorConsole   = "editor_console"
	EntryLogAppend       = "log_append"
	EntryLogFile         = "log_file"
	EntryLogLevel        = "log_level"
	EntryMode            = "mode"
	EntryFormat          = "format"
	EntrySampleFormat    = "sample_format"
	EntrySampleEffective = "sample_effective"
	EntryDocsFormat      = "docs_format"
	EntryDocsOutput      = "docs_output"
)

// Mode values.
const (
	ModeStdout      = "stdout"
	ModeInteractive = "interactive"
)

// Output formats.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatMan      = "man"
)

const (
	defaultEditorCommand = "vi +{line_number} {filename}"
	defaultLogLevel      = "warning"
	defaultDocsOutput    = "./docs"
)

var logLevels = [...]string{"debug", "info", "warning", "error", "critical"}

// Subcommands returns every subcommand in display order.
func Subcommands() []string {
	return []string{SubcommandSettings, SubcommandSample, SubcommandSchema, SubcommandGenDocs}
}

func defaultValue(v any) entity.SettingsEntryValue {
	return entity.SettingsEntryValue{Default: v}
}

// Catalog returns the unresolved settings entries of settingsdeck.
func Catalog() []entity.SettingsEntry {
	return []entity.SettingsEntry{
		{
			Name:             EntryApp,
			ShortDescription: "Subcommand to run",
			Choices:          entity.ChoicesOf(Subcommands()...),
			Value:            defaultValue(SubcommandSettings),
		},
		{
			Name:                     EntryDisplayColor,
			ShortDescription:         "Enable the use of color in the output",
			Choices:                  []any{true, false},
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "color.enable",
			Value:                    defaultValue(true),
		},
		{
			Name:                     EntryEditorCommand,
			ShortDescription:         "Command used to open a settings file from the browser",
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "editor.command",
			Value:                    defaultValue(defaultEditorCommand),
		},
		{
			Name:                     EntryEditorConsole,
			ShortDescription:         "Specify if the editor is console based",
			Choices:                  []any{true, false},
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "editor.console",
			Value:                    defaultValue(true),
		},
		{
			Name:                     EntryLogAppend,
			ShortDescription:         "Append to the log file instead of truncating it",
			Choices:                  []any{true, false},
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "logging.append",
			Value:                    defaultValue(true),
		},
		{
			Name:                     EntryLogFile,
			ShortDescription:         "Path of the log file, empty logs to stderr",
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "logging.file",
			Value:                    defaultValue(""),
		},
		{
			Name:                     EntryLogLevel,
			ShortDescription:         "Log level",
			Choices:                  entity.ChoicesOf(logLevels[:]...),
			CliParameters:            &entity.CliParameters{Short: "-l"},
			SettingsFilePathOverride: "logging.level",
			Value:                    defaultValue(defaultLogLevel),
		},
		{
			Name:             EntryMode,
			ShortDescription: "Specify the user-interface mode",
			Choices:          []any{ModeStdout, ModeInteractive},
			CliParameters:    &entity.CliParameters{Short: "-m"},
			Value:            defaultValue(ModeStdout),
		},
		{
			Name:             EntryFormat,
			ShortDescription: "Output format of the settings listing",
			Choices:          []any{FormatTable, FormatJSON, FormatYAML},
			CliParameters:    &entity.CliParameters{Short: "-f"},
			Subcommands:      entity.SubcommandList(SubcommandSettings),
			Value:            defaultValue(FormatTable),
		},
		{
			Name:                     EntrySampleFormat,
			ShortDescription:         "Serialization format of the settings sample",
			Choices:                  []any{FormatYAML, FormatJSON},
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "sample.format",
			Subcommands:              entity.OnlySubcommand(SubcommandSample),
			Value:                    defaultValue(FormatYAML),
		},
		{
			Name:                     EntrySampleEffective,
			ShortDescription:         "Fill the sample with effective values instead of placeholders",
			Choices:                  []any{true, false},
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "sample.effective",
			Subcommands:              entity.OnlySubcommand(SubcommandSample),
			Value:                    defaultValue(false),
		},
		{
			Name:                     EntryDocsFormat,
			ShortDescription:         "Documentation output format",
			Choices:                  []any{FormatMarkdown, FormatMan},
			CliParameters:            &entity.CliParameters{},
			SettingsFilePathOverride: "docs.format",
			Subcommands:              entity.OnlySubcommand(SubcommandGenDocs),
			Value:                    defaultValue(FormatMarkdown),
		},
		{
			Name:                     EntryDocsOutput,
			ShortDescription:         "Documentation output directory",
			CliParameters:            &entity.CliParameters{Short: "-o"},
			SettingsFilePathOverride: "docs.output",
			Subcommands:              entity.OnlySubcommand(SubcommandGenDocs),
			Value:                    defaultValue(defaultDocsOutput),
		},
	}
}
