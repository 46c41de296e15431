// Package settingsfile builds settings-file snippets from dotted key paths.
package settingsfile

import "strings"

// Placeholder marks the value position in a settings-file sample.
const Placeholder = "<------"

// Sample nests value under the dotted path.
// "app.editor.console" becomes {"app": {"editor": {"console": value}}}.
func Sample(path string, value any) any {
	if path == "" {
		return value
	}
	key, rest, found := strings.Cut(path, ".")
	if !found {
		return map[string]any{key: value}
	}
	return map[string]any{key: Sample(rest, value)}
}

// Merge deep-merges sample into dst. Later values win on conflicts.
func Merge(dst map[string]any, sample any) {
	src, ok := sample.(map[string]any)
	if !ok {
		return
	}
	for key, value := range src {
		nested, isMap := value.(map[string]any)
		if !isMap {
			dst[key] = value
			continue
		}
		existing, ok := dst[key].(map[string]any)
		if !ok {
			existing = make(map[string]any, len(nested))
			dst[key] = existing
		}
		Merge(existing, nested)
	}
}
