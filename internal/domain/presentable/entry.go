package presentable

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/settingsdeck/internal/domain/entity"
	"github.com/bnema/settingsdeck/internal/domain/settingsfile"
)

// ErrUnknownField is returned by Entry.Get for names outside the record.
var ErrUnknownField = errors.New("unknown presentable field")

const (
	settingsFileEntryName = "Current settings file"
	notApplicable         = "Not applicable"
	settingsFileDescFmt   = "The path to the current settings file. Possible locations are" +
		" {CWD}/%[1]s.{ext} or {HOME}/.%[1]s.{ext} where ext is yml, yaml or json."
)

// Entry is one settings entry in a presentable structure.
// It is built once by ForSettingsFile or FromSettingsEntry and never changed.
type Entry struct {
	Choices             []any         `json:"choices" yaml:"choices" jsonschema_description:"The possible values"`
	CliParameters       CliParameters `json:"cli_parameters" yaml:"cli_parameters" jsonschema_description:"The CLI parameters"`
	CurrentSettingsFile string        `json:"current_settings_file" yaml:"current_settings_file" jsonschema_description:"The path to the current settings file"`
	CurrentValue        any           `json:"current_value" yaml:"current_value" jsonschema_description:"The current effective value"`
	DefaultValue        any           `json:"default_value" yaml:"default_value" jsonschema_description:"The default value"`
	Default             bool          `json:"default" yaml:"default" jsonschema_description:"Whether the resolver considers the current value the default"`
	Description         string        `json:"description" yaml:"description" jsonschema_description:"A short description"`
	EnvVar              string        `json:"env_var" yaml:"env_var" jsonschema_description:"The environment variable"`
	Name                string        `json:"name" yaml:"name" jsonschema_description:"The display name"`
	SettingsFileSample  any           `json:"settings_file_sample" yaml:"settings_file_sample" jsonschema_description:"A sample settings file snippet"`
	Source              string        `json:"source" yaml:"source" jsonschema_description:"The source of the current value"`
	Subcommands         []string      `json:"subcommands" yaml:"subcommands" jsonschema_description:"The subcommands where this entry applies"`
}

// ForSettingsFile returns the synthetic entry describing the active settings file.
func ForSettingsFile(allSubcommands []string, applicationName string, internals entity.Internals) Entry {
	path := internals.SettingsFilePathOrNone()
	return Entry{
		Choices:             []any{},
		CliParameters:       NoCliParameters(),
		CurrentSettingsFile: path,
		CurrentValue:        path,
		DefaultValue:        entity.NoneValue,
		Default:             internals.SettingsSource == entity.SourceNone,
		Description:         fmt.Sprintf(settingsFileDescFmt, applicationName),
		EnvVar:              strings.ToUpper(applicationName) + "_CONFIG",
		Name:                settingsFileEntryName,
		SettingsFileSample:  notApplicable,
		Source:              string(internals.SettingsSource),
		Subcommands:         slices.Clone(allSubcommands),
	}
}

// FromSettingsEntry projects one resolved settings entry.
// It panics when the entry has not been resolved.
func FromSettingsEntry(
	allSubcommands []string,
	applicationNameDashed string,
	entry entity.SettingsEntry,
	settingsFilePath string,
) Entry {
	resolved := entry.Value.Resolved
	if resolved == nil {
		panic(fmt.Sprintf("presentable: settings entry %q has no resolved value", entry.Name))
	}

	choices := make([]any, len(entry.Choices))
	copy(choices, entry.Choices)

	return Entry{
		Choices:             choices,
		CliParameters:       FromCliParams(entry.CliParameters, entry.NameDashed()),
		CurrentSettingsFile: settingsFilePath,
		CurrentValue:        resolved.Current,
		DefaultValue:        resolved.Default,
		Default:             resolved.IsDefault,
		Description:         entry.ShortDescription,
		EnvVar:              entry.EnvironmentVariable(applicationNameDashed),
		Name:                displayName(entry.Name),
		SettingsFileSample: settingsfile.Sample(
			entry.SettingsFilePath(applicationNameDashed),
			settingsfile.Placeholder,
		),
		Source:      string(resolved.Source),
		Subcommands: entry.Subcommands.Expand(allSubcommands),
	}
}

// displayName turns "editor_console" into "Editor console".
func displayName(name string) string {
	spaced := strings.ReplaceAll(name, "_", " ")
	first, size := utf8.DecodeRuneInString(spaced)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(spaced[size:])
}

// Current returns the current value as text.
func (e Entry) Current() string {
	return Text(e.CurrentValue)
}

// Less orders entries by name using byte-wise string comparison.
func (e Entry) Less(other Entry) bool {
	return e.Name < other.Name
}

var entryFields = map[string]func(Entry) any{
	"choices":               func(e Entry) any { return slices.Clone(e.Choices) },
	"cli_parameters":        func(e Entry) any { return e.CliParameters },
	"current_settings_file": func(e Entry) any { return e.CurrentSettingsFile },
	"current_value":         func(e Entry) any { return e.CurrentValue },
	"default_value":         func(e Entry) any { return e.DefaultValue },
	"default":               func(e Entry) any { return e.Default },
	"description":           func(e Entry) any { return e.Description },
	"env_var":               func(e Entry) any { return e.EnvVar },
	"name":                  func(e Entry) any { return e.Name },
	"settings_file_sample":  func(e Entry) any { return e.SettingsFileSample },
	"source":                func(e Entry) any { return e.Source },
	"subcommands":           func(e Entry) any { return slices.Clone(e.Subcommands) },
}

// Get returns a field by its snake_case name, for renderers that work on
// dictionary-shaped rows. Unknown names return an error wrapping ErrUnknownField.
func (e Entry) Get(field string) (any, error) {
	get, ok := entryFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return get(e), nil
}

// FieldNames returns the names accepted by Get in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(entryFields))
	for name := range entryFields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (e Entry) clone() Entry {
	e.Choices = slices.Clone(e.Choices)
	e.Subcommands = slices.Clone(e.Subcommands)
	return e
}
