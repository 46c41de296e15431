// Package entity defines the resolved settings model the presentation layer consumes.
package entity

import (
	"strings"
)

// Source identifies the precedence tier that supplied a value.
// The string value doubles as its display form.
type Source string

const (
	SourceNone                Source = "None"
	SourceDefault             Source = "Default"
	SourceEnvironmentVariable Source = "Environment variable"
	SourceSearchPath          Source = "Search path"
	SourceUserCfg             Source = "Settings file"
	SourceUserCLI             Source = "Command line"
	SourceNotSet              Source = "Not set"
)

// NoneValue is the display form used when nothing is configured.
const NoneValue = "None"

// ResolvedValue is the outcome of precedence resolution for one entry.
type ResolvedValue struct {
	Current any
	Default any
	// IsDefault is decided by the resolver from the winning source,
	// not by comparing Current and Default.
	IsDefault bool
	Source    Source
}

// SettingsEntryValue holds the declared default and, once resolved, the result.
type SettingsEntryValue struct {
	Default  any
	Resolved *ResolvedValue
}

// CliParameters describes the command-line surface of an entry.
type CliParameters struct {
	// Short is the short flag including its dash (e.g. "-m"), or empty.
	Short string
	// LongOverride replaces the long flag derived from the entry name.
	LongOverride string
}

// Long returns the long flag for an entry with the given dashed name.
func (c CliParameters) Long(nameDashed string) string {
	if c.LongOverride != "" {
		return c.LongOverride
	}
	return "--" + nameDashed
}

// SettingsEntry is one configurable setting of the application.
type SettingsEntry struct {
	Name             string
	ShortDescription string
	Choices          []any
	// CliParameters is nil when the entry cannot be set from the command line.
	CliParameters               *CliParameters
	EnvironmentVariableOverride string
	// SettingsFilePathOverride is a dotted path below the application key
	// (e.g. "editor.console").
	SettingsFilePathOverride string
	Subcommands              SubcommandScope
	Value                    SettingsEntryValue
}

// NameDashed returns the entry name with underscores replaced by dashes.
func (e SettingsEntry) NameDashed() string {
	return strings.ReplaceAll(e.Name, "_", "-")
}

// EnvironmentVariable returns the environment variable for the entry.
func (e SettingsEntry) EnvironmentVariable(prefix string) string {
	name := e.EnvironmentVariableOverride
	if name == "" {
		name = e.Name
	}
	env := strings.ToUpper(prefix + "_" + name)
	return strings.ReplaceAll(env, "-", "_")
}

// SettingsFileKey returns the dotted key of the entry below the application key.
func (e SettingsEntry) SettingsFileKey() string {
	if e.SettingsFilePathOverride != "" {
		return e.SettingsFilePathOverride
	}
	return e.NameDashed()
}

// SettingsFilePath returns the full dotted path of the entry in a settings file.
func (e SettingsEntry) SettingsFilePath(prefix string) string {
	return prefix + "." + e.SettingsFileKey()
}

// ChoicesOf converts a typed ordered collection into entry choices.
func ChoicesOf[T any](values ...T) []any {
	choices := make([]any, len(values))
	for i, v := range values {
		choices[i] = v
	}
	return choices
}

// Internals describes where the active settings file came from.
type Internals struct {
	SettingsFilePath string
	SettingsSource   Source
}

// SettingsFilePathOrNone returns the settings file path or NoneValue.
func (i Internals) SettingsFilePathOrNone() string {
	if i.SettingsFilePath == "" {
		return NoneValue
	}
	return i.SettingsFilePath
}

// Settings is a snapshot of every resolved entry of an application.
type Settings struct {
	ApplicationName       string
	ApplicationNameDashed string
	Subcommands           []string
	Entries               []SettingsEntry
	Internals             Internals
}

// Entry returns the entry with the given name.
func (s *Settings) Entry(name string) (SettingsEntry, bool) {
	for _, e := range s.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return SettingsEntry{}, false
}
