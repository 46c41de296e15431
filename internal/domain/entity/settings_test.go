package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

func TestSettingsEntry_Names(t *testing.T) {
	e := entity.SettingsEntry{Name: "editor_console"}
	assert.Equal(t, "editor-console", e.NameDashed())
	assert.Equal(t, "MY_APP_EDITOR_CONSOLE", e.EnvironmentVariable("my-app"))
	assert.Equal(t, "my-app.editor-console", e.SettingsFilePath("my-app"))

	e.SettingsFilePathOverride = "editor.console"
	e.EnvironmentVariableOverride = "econ"
	assert.Equal(t, "my-app.editor.console", e.SettingsFilePath("my-app"))
	assert.Equal(t, "MY_APP_ECON", e.EnvironmentVariable("my-app"))
}

func TestCliParameters_Long(t *testing.T) {
	assert.Equal(t, "--log-level", entity.CliParameters{}.Long("log-level"))
	assert.Equal(t, "--ll", entity.CliParameters{LongOverride: "--ll"}.Long("log-level"))
}

func TestSubcommandScope_Expand(t *testing.T) {
	all := []string{"settings", "sample"}

	var zero entity.SubcommandScope
	assert.Equal(t, entity.ScopeAll, zero.Kind())
	assert.Equal(t, all, zero.Expand(all))
	assert.Equal(t, all, entity.AllSubcommands().Expand(all))
	assert.Equal(t, []string{"sample"}, entity.OnlySubcommand("sample").Expand(all))
	assert.Equal(t, []string{"a", "b"}, entity.SubcommandList("a", "b").Expand(all))

	expanded := entity.AllSubcommands().Expand(all)
	expanded[0] = "changed"
	assert.Equal(t, "settings", all[0])
}

func TestInternals_SettingsFilePathOrNone(t *testing.T) {
	assert.Equal(t, entity.NoneValue, entity.Internals{}.SettingsFilePathOrNone())
	assert.Equal(t, "/tmp/x.yml", entity.Internals{SettingsFilePath: "/tmp/x.yml"}.SettingsFilePathOrNone())
}

func TestChoicesOf(t *testing.T) {
	levels := [3]string{"debug", "info", "error"}
	assert.Equal(t, []any{"debug", "info", "error"}, entity.ChoicesOf(levels[:]...))
	assert.Empty(t, entity.ChoicesOf[bool]())
}

func TestSettings_Entry(t *testing.T) {
	s := &entity.Settings{Entries: []entity.SettingsEntry{{Name: "mode"}}}
	e, ok := s.Entry("mode")
	require.True(t, ok)
	assert.Equal(t, "mode", e.Name)

	_, ok = s.Entry("missing")
	assert.False(t, ok)
}
