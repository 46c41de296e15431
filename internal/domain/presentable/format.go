package presentable

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

const sampleIndent = 2

// Text renders a field value as plain text for tables and documents.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return entity.NoneValue
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = Text(item)
		}
		return strings.Join(parts, ", ")
	case CliParameters:
		return val.Long + ", " + val.Short
	case map[string]any:
		var sb strings.Builder
		enc := yaml.NewEncoder(&sb)
		enc.SetIndent(sampleIndent)
		if err := enc.Encode(val); err != nil {
			return fmt.Sprint(val)
		}
		if err := enc.Close(); err != nil {
			return fmt.Sprint(val)
		}
		return strings.TrimRight(sb.String(), "\n")
	default:
		return fmt.Sprint(val)
	}
}

// GetText returns a field by name rendered with Text.
func (e Entry) GetText(field string) (string, error) {
	v, err := e.Get(field)
	if err != nil {
		return "", err
	}
	return Text(v), nil
}
