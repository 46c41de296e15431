// Package docs renders presentable settings entries as documentation.
package docs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/settingsdeck/internal/domain/presentable"
)

// Row is one labelled field of the per-entry reference table.
type Row struct {
	Label string
	Field string
}

// ReferenceRows returns the rows rendered for each entry.
func ReferenceRows() []Row {
	return []Row{
		{Label: "Default value", Field: "default_value"},
		{Label: "Choices", Field: "choices"},
		{Label: "CLI parameters", Field: "cli_parameters"},
		{Label: "Environment variable", Field: "env_var"},
		{Label: "Subcommands", Field: "subcommands"},
	}
}

// SettingsMarkdown renders a settings reference page.
// Entries are rendered in the order given.
func SettingsMarkdown(appName string, entries presentable.Entries, rows []Row) (string, error) {
	if err := checkRows(rows); err != nil {
		return "", err
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s settings\n\n", appName)
	sb.WriteString("Each setting can be given on the command line, as an environment variable or in a settings file.\n")
	sb.WriteString("The command line wins over the environment, which wins over the settings file.\n")

	for _, entry := range entries.All() {
		fmt.Fprintf(&sb, "\n## %s\n\n", entry.Name)
		if entry.Description != "" {
			fmt.Fprintf(&sb, "%s\n\n", entry.Description)
		}

		sb.WriteString("| Field | Value |\n|---|---|\n")
		for _, row := range rows {
			text, err := entry.GetText(row.Field)
			if err != nil {
				return "", fmt.Errorf("render %s: %w", entry.Name, err)
			}
			if text == "" {
				text = "-"
			}
			fmt.Fprintf(&sb, "| %s | %s |\n", row.Label, escapeCell(text))
		}

		if sample, ok := entry.SettingsFileSample.(map[string]any); ok {
			fmt.Fprintf(&sb, "\n```yaml\n%s\n```\n", presentable.Text(sample))
		}
	}

	return sb.String(), nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

func checkRows(rows []Row) error {
	known := presentable.FieldNames()
	for _, row := range rows {
		if !slices.Contains(known, row.Field) {
			return fmt.Errorf("row %q: %w: %q", row.Label, presentable.ErrUnknownField, row.Field)
		}
	}
	return nil
}
