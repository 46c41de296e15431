package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/bnema/settingsdeck/internal/domain/presentable"
)

// PresentableSchema returns the JSON schema of a presentable settings entry.
func PresentableSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{ExpandedStruct: true}
	schema := r.Reflect(&presentable.Entry{})

	schema.ID = "https://github.com/bnema/settingsdeck/presentable-entry.schema.json"
	schema.Title = "Settingsdeck Presentable Settings Entry"
	schema.Description = "One resolved settings entry restated for documentation, help and samples"

	return schema
}

// PresentableSchemaJSON returns the indented JSON schema.
func PresentableSchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(PresentableSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
