package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

var (
	// ErrInvalidValue is returned when a source supplies an unusable value.
	ErrInvalidValue = errors.New("invalid settings value")
	// ErrUnknownSubcommand is returned when an entry is scoped to a subcommand
	// the application does not have.
	ErrUnknownSubcommand = errors.New("unknown subcommand")
)

// validateScopes checks that scoped entries only name known subcommands.
func validateScopes(subcommands []string, entries []entity.SettingsEntry) error {
	for _, entry := range entries {
		if entry.Subcommands.Kind() == entity.ScopeAll {
			continue
		}
		for _, name := range entry.Subcommands.Expand(subcommands) {
			if !slices.Contains(subcommands, name) {
				return fmt.Errorf("%w: entry %q applies to %q", ErrUnknownSubcommand, entry.Name, name)
			}
		}
	}
	return nil
}

// validateEntries checks resolved values against declared choices.
func validateEntries(entries []entity.SettingsEntry) error {
	var validationErrors []string

	for _, entry := range entries {
		if len(entry.Choices) == 0 || entry.Value.Resolved == nil {
			continue
		}
		current := entry.Value.Resolved.Current
		if slices.Contains(entry.Choices, current) {
			continue
		}
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s: %v from %s is not one of %s",
			entry.Name, current, entry.Value.Resolved.Source, formatChoices(entry.Choices),
		))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidValue, strings.Join(validationErrors, "; "))
	}
	return nil
}

func formatChoices(choices []any) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, ", ")
}
