package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/settingsdeck/internal/application/port"
	"github.com/bnema/settingsdeck/internal/domain/settingsfile"
	"github.com/bnema/settingsdeck/internal/logging"
)

// GenerateSettingsSampleUseCase builds a complete settings-file document.
type GenerateSettingsSampleUseCase struct {
	resolver port.SettingsResolver
}

// NewGenerateSettingsSampleUseCase creates a new GenerateSettingsSampleUseCase.
func NewGenerateSettingsSampleUseCase(resolver port.SettingsResolver) *GenerateSettingsSampleUseCase {
	return &GenerateSettingsSampleUseCase{resolver: resolver}
}

// GenerateSettingsSampleInput contains input parameters for sample generation.
type GenerateSettingsSampleInput struct {
	// Effective fills the document with resolved values instead of the placeholder.
	Effective bool
}

// GenerateSettingsSampleOutput contains the sample document.
type GenerateSettingsSampleOutput struct {
	Document         map[string]any
	SettingsFilePath string
}

// Execute resolves the settings and merges every entry's sample into one document.
func (uc *GenerateSettingsSampleUseCase) Execute(
	ctx context.Context,
	input GenerateSettingsSampleInput,
) (*GenerateSettingsSampleOutput, error) {
	settings, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve settings: %w", err)
	}

	doc := make(map[string]any)
	for _, entry := range settings.Entries {
		var value any = settingsfile.Placeholder
		if input.Effective {
			if entry.Value.Resolved == nil {
				return nil, fmt.Errorf("settings entry %q has no resolved value", entry.Name)
			}
			value = entry.Value.Resolved.Current
		}
		settingsfile.Merge(doc, settingsfile.Sample(entry.SettingsFilePath(settings.ApplicationNameDashed), value))
	}

	logging.FromContext(ctx).Debug().
		Int("entries", len(settings.Entries)).
		Bool("effective", input.Effective).
		Msg("generated settings sample")

	return &GenerateSettingsSampleOutput{
		Document:         doc,
		SettingsFilePath: settings.Internals.SettingsFilePathOrNone(),
	}, nil
}
