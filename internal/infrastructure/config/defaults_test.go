package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Consistency(t *testing.T) {
	entries := Catalog()
	require.NotEmpty(t, entries)

	seenNames := make(map[string]bool)
	seenPaths := make(map[string]bool)
	seenShorts := make(map[string]bool)
	for _, e := range entries {
		assert.False(t, seenNames[e.Name], "duplicate entry %s", e.Name)
		seenNames[e.Name] = true

		path := e.SettingsFilePath(ApplicationName)
		assert.False(t, seenPaths[path], "duplicate settings path %s", path)
		seenPaths[path] = true

		assert.NotEmpty(t, e.ShortDescription, e.Name)
		assert.Nil(t, e.Value.Resolved, e.Name)

		if e.CliParameters != nil && e.CliParameters.Short != "" {
			assert.Len(t, e.CliParameters.Short, 2, e.Name)
			assert.False(t, seenShorts[e.CliParameters.Short], "duplicate short flag %s", e.CliParameters.Short)
			seenShorts[e.CliParameters.Short] = true
		}

		if len(e.Choices) > 0 {
			assert.Contains(t, e.Choices, e.Value.Default, "default of %s must be a choice", e.Name)
		}
	}
}

func TestCatalog_FreshSlices(t *testing.T) {
	first := Catalog()
	first[0].Choices[0] = "changed"
	assert.Equal(t, SubcommandSettings, Catalog()[0].Choices[0])
}
