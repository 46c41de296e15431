// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

// SettingsResolver resolves every settings entry of the application
// against its competing sources.
type SettingsResolver interface {
	// Resolve returns a snapshot where every entry carries a resolved value.
	Resolve(ctx context.Context) (*entity.Settings, error)
}
