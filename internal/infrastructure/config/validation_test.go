package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

func TestValidateEntries(t *testing.T) {
	entry := func(current any) entity.SettingsEntry {
		return entity.SettingsEntry{
			Name:    "mode",
			Choices: []any{"stdout", "interactive"},
			Value: entity.SettingsEntryValue{
				Resolved: &entity.ResolvedValue{Current: current, Source: entity.SourceUserCLI},
			},
		}
	}

	require.NoError(t, validateEntries([]entity.SettingsEntry{entry("stdout")}))
	require.NoError(t, validateEntries([]entity.SettingsEntry{{Name: "free", Value: entity.SettingsEntryValue{
		Resolved: &entity.ResolvedValue{Current: "anything"},
	}}}))

	err := validateEntries([]entity.SettingsEntry{entry("gui"), entry("tui")})
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "gui from Command line is not one of stdout, interactive")
	assert.Contains(t, err.Error(), "tui")
}

func TestValidateScopes(t *testing.T) {
	subcommands := []string{"settings", "sample"}

	require.NoError(t, validateScopes(subcommands, Catalog()[:0]))
	require.NoError(t, validateScopes(subcommands, []entity.SettingsEntry{
		{Name: "app"},
		{Name: "format", Subcommands: entity.SubcommandList("settings", "sample")},
		{Name: "sample_format", Subcommands: entity.OnlySubcommand("sample")},
	}))

	err := validateScopes(subcommands, []entity.SettingsEntry{
		{Name: "docs_output", Subcommands: entity.OnlySubcommand("gen-docs")},
	})
	require.ErrorIs(t, err, ErrUnknownSubcommand)
	assert.Contains(t, err.Error(), `entry "docs_output" applies to "gen-docs"`)
}

func TestValidateScopes_Catalog(t *testing.T) {
	assert.NoError(t, validateScopes(Subcommands(), Catalog()))
}
