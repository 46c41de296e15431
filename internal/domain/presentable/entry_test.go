package presentable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/settingsdeck/internal/domain/entity"
	"github.com/bnema/settingsdeck/internal/domain/presentable"
	"github.com/bnema/settingsdeck/internal/domain/settingsfile"
)

var allSubcommands = []string{"settings", "sample", "schema"}

func resolvedEntry(name string) entity.SettingsEntry {
	return entity.SettingsEntry{
		Name:             name,
		ShortDescription: "A description",
		Choices:          []any{true, false},
		CliParameters:    &entity.CliParameters{Short: "-e"},
		Value: entity.SettingsEntryValue{
			Default: true,
			Resolved: &entity.ResolvedValue{
				Current:   false,
				Default:   true,
				IsDefault: false,
				Source:    entity.SourceUserCLI,
			},
		},
	}
}

func TestFromCliParams(t *testing.T) {
	t.Run("absent parameters give both sentinels", func(t *testing.T) {
		got := presentable.FromCliParams(nil, "editor-console")
		assert.Equal(t, presentable.NoLongMsg, got.Long)
		assert.Equal(t, presentable.NoShortMsg, got.Short)
	})

	t.Run("missing short flag gives short sentinel", func(t *testing.T) {
		got := presentable.FromCliParams(&entity.CliParameters{}, "editor-console")
		assert.Equal(t, "--editor-console", got.Long)
		assert.Equal(t, "No short CLI parameter", got.Short)
	})

	t.Run("declared flags are kept", func(t *testing.T) {
		got := presentable.FromCliParams(&entity.CliParameters{Short: "-l", LongOverride: "--ll"}, "log-level")
		assert.Equal(t, presentable.CliParameters{Long: "--ll", Short: "-l"}, got)
	})
}

func TestForSettingsFile(t *testing.T) {
	t.Run("no settings file", func(t *testing.T) {
		got := presentable.ForSettingsFile(allSubcommands, "myapp", entity.Internals{SettingsSource: entity.SourceNone})

		assert.True(t, got.Default)
		assert.Equal(t, "None", got.CurrentValue)
		assert.Equal(t, "None", got.CurrentSettingsFile)
		assert.Equal(t, "None", got.DefaultValue)
		assert.Equal(t, "MYAPP_CONFIG", got.EnvVar)
		assert.Equal(t, "Current settings file", got.Name)
		assert.Equal(t, "Not applicable", got.SettingsFileSample)
		assert.Equal(t, "None", got.Source)
		assert.Equal(t, allSubcommands, got.Subcommands)
		assert.Empty(t, got.Choices)
		assert.NotNil(t, got.Choices)
		assert.Contains(t, got.Description, "{CWD}/myapp.{ext}")
		assert.Contains(t, got.Description, "{HOME}/.myapp.{ext}")
		assert.Equal(t, presentable.NoCliParameters(), got.CliParameters)
	})

	t.Run("settings file found", func(t *testing.T) {
		internals := entity.Internals{SettingsFilePath: "/home/u/.myapp.yml", SettingsSource: entity.SourceSearchPath}
		got := presentable.ForSettingsFile(allSubcommands, "myapp", internals)

		assert.False(t, got.Default)
		assert.Equal(t, "/home/u/.myapp.yml", got.CurrentValue)
		assert.Equal(t, "/home/u/.myapp.yml", got.CurrentSettingsFile)
		assert.Equal(t, "Search path", got.Source)
	})
}

func TestFromSettingsEntry(t *testing.T) {
	entry := resolvedEntry("editor_console")
	entry.SettingsFilePathOverride = "editor.console"

	got := presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "/etc/myapp.yml")

	assert.Equal(t, "Editor console", got.Name)
	assert.Equal(t, "A description", got.Description)
	assert.Equal(t, false, got.CurrentValue)
	assert.Equal(t, true, got.DefaultValue)
	assert.False(t, got.Default)
	assert.Equal(t, "Command line", got.Source)
	assert.Equal(t, "MYAPP_EDITOR_CONSOLE", got.EnvVar)
	assert.Equal(t, "/etc/myapp.yml", got.CurrentSettingsFile)
	assert.Equal(t, presentable.CliParameters{Long: "--editor-console", Short: "-e"}, got.CliParameters)
	assert.Equal(t, []any{true, false}, got.Choices)
	assert.Equal(t, allSubcommands, got.Subcommands)
	assert.Equal(t,
		map[string]any{"myapp": map[string]any{"editor": map[string]any{"console": settingsfile.Placeholder}}},
		got.SettingsFileSample,
	)
}

func TestFromSettingsEntry_DefaultIsCopiedFromResolver(t *testing.T) {
	entry := resolvedEntry("log_file")
	entry.Value.Resolved = &entity.ResolvedValue{
		Current:   "./a.log",
		Default:   "./a.log",
		IsDefault: false,
		Source:    entity.SourceEnvironmentVariable,
	}

	got := presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "None")
	assert.False(t, got.Default, "equal values must not make the entry default")
}

func TestFromSettingsEntry_NoCliParameters(t *testing.T) {
	entry := resolvedEntry("app")
	entry.CliParameters = nil

	got := presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "None")
	assert.Equal(t, "No long CLI parameter", got.CliParameters.Long)
	assert.Equal(t, "No short CLI parameter", got.CliParameters.Short)
}

func TestFromSettingsEntry_Subcommands(t *testing.T) {
	tests := []struct {
		name  string
		scope entity.SubcommandScope
		want  []string
	}{
		{name: "all", scope: entity.AllSubcommands(), want: allSubcommands},
		{name: "single", scope: entity.OnlySubcommand("sample"), want: []string{"sample"}},
		{name: "list", scope: entity.SubcommandList("schema", "settings"), want: []string{"schema", "settings"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := resolvedEntry("mode")
			entry.Subcommands = tt.scope
			got := presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "None")
			assert.Equal(t, tt.want, got.Subcommands)
		})
	}
}

func TestFromSettingsEntry_ChoicesAreCopied(t *testing.T) {
	levels := [3]string{"debug", "info", "error"}
	entry := resolvedEntry("log_level")
	entry.Choices = entity.ChoicesOf(levels[:]...)

	got := presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "None")
	require.Equal(t, []any{"debug", "info", "error"}, got.Choices)

	entry.Choices[0] = "trace"
	assert.Equal(t, "debug", got.Choices[0])
}

func TestFromSettingsEntry_Idempotent(t *testing.T) {
	entry := resolvedEntry("editor_console")
	first := presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "None")
	second := presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "None")
	assert.Equal(t, first, second)
}

func TestFromSettingsEntry_PanicsWhenUnresolved(t *testing.T) {
	entry := resolvedEntry("mode")
	entry.Value.Resolved = nil

	assert.PanicsWithValue(t, `presentable: settings entry "mode" has no resolved value`, func() {
		presentable.FromSettingsEntry(allSubcommands, "myapp", entry, "None")
	})
}

func TestFromSettingsEntry_DisplayName(t *testing.T) {
	tests := map[string]string{
		"editor_console":   "Editor console",
		"app":              "App",
		"sample_effective": "Sample effective",
		"LOG_level":        "Log level",
	}
	for in, want := range tests {
		got := presentable.FromSettingsEntry(allSubcommands, "myapp", resolvedEntry(in), "None")
		assert.Equal(t, want, got.Name, in)
	}
}

func TestEntry_Get(t *testing.T) {
	e := presentable.FromSettingsEntry(allSubcommands, "myapp", resolvedEntry("mode"), "None")

	name, err := e.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Mode", name)

	cli, err := e.Get("cli_parameters")
	require.NoError(t, err)
	assert.Equal(t, e.CliParameters, cli)

	for _, field := range presentable.FieldNames() {
		_, err := e.Get(field)
		assert.NoError(t, err, field)
	}

	_, err = e.Get("CurrentValue")
	require.ErrorIs(t, err, presentable.ErrUnknownField)
	assert.Contains(t, err.Error(), `"CurrentValue"`)
}

func TestEntry_Current(t *testing.T) {
	e := presentable.Entry{CurrentValue: false}
	assert.Equal(t, "false", e.Current())

	assert.Equal(t, "None", presentable.Entry{}.Current())
}

func TestEntry_Less(t *testing.T) {
	a := presentable.Entry{Name: "Beta"}
	b := presentable.Entry{Name: "alpha"}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
}
