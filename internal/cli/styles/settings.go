package styles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/settingsdeck/internal/domain/presentable"
)

// Column maps a table header to a presentable field name.
type Column struct {
	Title string
	Field string
}

// DefaultSettingsColumns returns the columns of the settings listing.
func DefaultSettingsColumns() []Column {
	return []Column{
		{Title: "Name", Field: "name"},
		{Title: "Current", Field: "current_value"},
		{Title: "Source", Field: "source"},
		{Title: "Default", Field: "default"},
	}
}

var detailLabels = []struct {
	label string
	field string
}{
	{"Description", "description"},
	{"Current value", "current_value"},
	{"Default value", "default_value"},
	{"Default", "default"},
	{"Source", "source"},
	{"Choices", "choices"},
	{"CLI parameters", "cli_parameters"},
	{"Environment variable", "env_var"},
	{"Subcommands", "subcommands"},
	{"Settings file", "current_settings_file"},
	{"Settings file sample", "settings_file_sample"},
}

// SettingsRenderer renders presentable settings entries.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a new SettingsRenderer.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// RenderHeader renders the title line with the active settings file.
func (r *SettingsRenderer) RenderHeader(settingsFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s %s",
		iconStyle.Render(IconConfig),
		r.theme.Title.Render("Settings"),
		iconStyle.Render(IconFolder),
		r.theme.Subtle.Render(settingsFile),
	)
}

// RenderTable renders entries as a table with the given columns.
func (r *SettingsRenderer) RenderTable(entries presentable.Entries, columns []Column) (string, error) {
	for _, c := range columns {
		if err := checkField(c.Field); err != nil {
			return "", fmt.Errorf("render column %q: %w", c.Title, err)
		}
	}
	if entries.Len() == 0 {
		return r.theme.Subtle.Render("No settings entries found"), nil
	}

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Title
	}

	rows := make([][]string, 0, entries.Len())
	for _, entry := range entries.All() {
		row := make([]string, len(columns))
		for i, c := range columns {
			text, err := entry.GetText(c.Field)
			if err != nil {
				return "", fmt.Errorf("render column %q: %w", c.Title, err)
			}
			row[i] = text
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.theme.TableHeader
			}
			return r.theme.TableCell
		})

	return t.Render(), nil
}

// RenderDetail renders every field of one entry.
func (r *SettingsRenderer) RenderDetail(entry presentable.Entry) (string, error) {
	labelStyle := r.theme.Subtle.Width(22)
	valueStyle := r.theme.Normal

	lines := []string{r.theme.Highlight.Render(entry.Name) + " " + r.RenderSourceBadge(entry)}
	for _, l := range detailLabels {
		if err := checkField(l.field); err != nil {
			return "", fmt.Errorf("render detail %q: %w", l.label, err)
		}
		text, err := entry.GetText(l.field)
		if err != nil {
			return "", fmt.Errorf("render detail %q: %w", l.label, err)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(l.label),
			valueStyle.Render(text),
		))
	}

	return r.theme.Box.Render(strings.Join(lines, "\n")), nil
}

// RenderError renders an error message.
func (r *SettingsRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// RenderSourceBadge renders the source of an entry, muted when it is the default.
func (r *SettingsRenderer) RenderSourceBadge(entry presentable.Entry) string {
	if entry.Default {
		return r.theme.BadgeMuted.Render(IconCheck + " " + entry.Source)
	}
	return r.theme.Badge.Render(entry.Source)
}

func checkField(field string) error {
	if !slices.Contains(presentable.FieldNames(), field) {
		return fmt.Errorf("%w: %q", presentable.ErrUnknownField, field)
	}
	return nil
}
