package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/settingsdeck/internal/cli/styles"
	"github.com/bnema/settingsdeck/internal/domain/entity"
	"github.com/bnema/settingsdeck/internal/domain/presentable"
)

func sampleEntries() presentable.Entries {
	mode := entity.SettingsEntry{
		Name:             "mode",
		ShortDescription: "Specify the user-interface mode",
		Choices:          []any{"stdout", "interactive"},
		CliParameters:    &entity.CliParameters{Short: "-m"},
		Value: entity.SettingsEntryValue{Resolved: &entity.ResolvedValue{
			Current: "interactive", Default: "stdout", Source: entity.SourceUserCLI,
		}},
	}
	return presentable.NewEntries(
		presentable.FromSettingsEntry([]string{"settings"}, "myapp", mode, "None"),
		presentable.ForSettingsFile([]string{"settings"}, "myapp", entity.Internals{SettingsSource: entity.SourceNone}),
	).Sorted()
}

func TestSettingsRenderer_RenderTable(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(false))

	out, err := r.RenderTable(sampleEntries(), styles.DefaultSettingsColumns())
	require.NoError(t, err)

	for _, want := range []string{"Name", "Current", "Source", "Mode", "interactive", "Command line", "Current settings file", "None"} {
		assert.Contains(t, out, want)
	}
}

func TestSettingsRenderer_RenderTable_Empty(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(false))

	out, err := r.RenderTable(presentable.NewEntries(), styles.DefaultSettingsColumns())
	require.NoError(t, err)
	assert.Contains(t, out, "No settings entries found")
}

func TestSettingsRenderer_RenderTable_UnknownColumn(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(true))

	_, err := r.RenderTable(sampleEntries(), []styles.Column{{Title: "Nope", Field: "nope"}})
	require.ErrorIs(t, err, presentable.ErrUnknownField)

	_, err = r.RenderTable(presentable.NewEntries(), []styles.Column{{Title: "Nope", Field: "nope"}})
	require.ErrorIs(t, err, presentable.ErrUnknownField)
}

func TestSettingsRenderer_RenderDetail(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(false))

	out, err := r.RenderDetail(sampleEntries().At(1))
	require.NoError(t, err)
	assert.Contains(t, out, "Mode")
	assert.Contains(t, out, "MYAPP_MODE")
	assert.Contains(t, out, "--mode, -m")
	assert.Contains(t, out, "stdout, interactive")
	assert.Contains(t, out, "<------")
}

func TestSettingsRenderer_Misc(t *testing.T) {
	r := styles.NewSettingsRenderer(styles.NewTheme(false))

	assert.Contains(t, r.RenderHeader("/home/u/.myapp.yml"), "/home/u/.myapp.yml")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")

	entries := sampleEntries()
	assert.Contains(t, r.RenderSourceBadge(entries.At(0)), "None")
	assert.Contains(t, r.RenderSourceBadge(entries.At(1)), "Command line")
}
