// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/settingsdeck/internal/application/port"
	"github.com/bnema/settingsdeck/internal/domain/presentable"
	"github.com/bnema/settingsdeck/internal/logging"
)

// PresentSettingsUseCase turns resolved settings into presentable entries.
type PresentSettingsUseCase struct {
	resolver port.SettingsResolver
}

// NewPresentSettingsUseCase creates a new PresentSettingsUseCase.
func NewPresentSettingsUseCase(resolver port.SettingsResolver) *PresentSettingsUseCase {
	return &PresentSettingsUseCase{resolver: resolver}
}

// PresentSettingsInput contains input parameters for presenting settings.
type PresentSettingsInput struct {
	// Subcommand restricts the output to entries applicable to it. Empty keeps all.
	Subcommand string
	// IncludeSettingsFile adds the synthetic "Current settings file" entry.
	IncludeSettingsFile bool
}

// PresentSettingsOutput contains the presentable entries sorted by name.
type PresentSettingsOutput struct {
	Entries          presentable.Entries
	SettingsFilePath string
}

// Execute resolves the settings and projects them.
func (uc *PresentSettingsUseCase) Execute(ctx context.Context, input PresentSettingsInput) (*PresentSettingsOutput, error) {
	log := logging.FromContext(ctx)

	settings, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve settings: %w", err)
	}

	settingsFile := settings.Internals.SettingsFilePathOrNone()
	projected := presentable.ProjectAll(
		settings.Subcommands,
		settings.ApplicationNameDashed,
		settings.Entries,
		settingsFile,
	)

	items := projected.Slice()
	if input.IncludeSettingsFile {
		items = append(items, presentable.ForSettingsFile(
			settings.Subcommands,
			settings.ApplicationName,
			settings.Internals,
		))
	}

	entries := presentable.NewEntries(items...)
	if input.Subcommand != "" {
		entries = entries.ForSubcommand(input.Subcommand)
	}

	log.Debug().
		Int("resolved", len(settings.Entries)).
		Int("presented", entries.Len()).
		Str("subcommand", input.Subcommand).
		Msg("presented settings entries")

	return &PresentSettingsOutput{
		Entries:          entries.Sorted(),
		SettingsFilePath: settingsFile,
	}, nil
}
