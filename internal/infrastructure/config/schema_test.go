package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/settingsdeck/internal/domain/presentable"
)

func TestPresentableSchemaJSON(t *testing.T) {
	data, err := PresentableSchemaJSON()
	require.NoError(t, err)

	var schema struct {
		ID         string                    `json:"$id"`
		Title      string                    `json:"title"`
		Properties map[string]map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Contains(t, schema.ID, "settingsdeck")
	assert.NotEmpty(t, schema.Title)
	for _, field := range presentable.FieldNames() {
		assert.Contains(t, schema.Properties, field)
	}
	assert.Equal(t, "The environment variable", schema.Properties["env_var"]["description"])
}
