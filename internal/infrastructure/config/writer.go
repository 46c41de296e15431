package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for serialization formats other than yaml and json.
var ErrUnsupportedFormat = errors.New("unsupported format")

const yamlIndent = 2

// WriteSample writes a settings-file document in the given format.
// Map keys are emitted in sorted order by both encoders.
func WriteSample(w io.Writer, doc map[string]any, format string) error {
	if format == FormatYAML {
		if _, err := io.WriteString(w, "---\n"); err != nil {
			return fmt.Errorf("failed to write sample: %w", err)
		}
	}
	return Encode(w, doc, format)
}

// Encode serializes v as yaml or json.
func Encode(w io.Writer, v any, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q (use: %s, %s)", ErrUnsupportedFormat, format, FormatYAML, FormatJSON)
	}
	return nil
}
