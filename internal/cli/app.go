// Package cli wires resolved settings, logging and styles for the CLI commands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/bnema/settingsdeck/internal/application/usecase"
	"github.com/bnema/settingsdeck/internal/cli/styles"
	"github.com/bnema/settingsdeck/internal/domain/entity"
	"github.com/bnema/settingsdeck/internal/infrastructure/config"
	"github.com/bnema/settingsdeck/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Settings *entity.Settings
	Theme    *styles.Theme

	// Use cases
	PresentSettingsUC *usecase.PresentSettingsUseCase
	GenerateSampleUC  *usecase.GenerateSettingsSampleUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp resolves settings against the parsed flags and builds the logger
// they describe.
func NewApp(flags *pflag.FlagSet, opts ...config.ResolverOption) (*App, error) {
	bootstrapCtx := logging.WithContext(context.Background(), logging.New(logging.DefaultConfig()))

	resolver := config.NewResolver(append([]config.ResolverOption{config.WithFlags(flags)}, opts...)...)
	settings, err := resolver.Resolve(bootstrapCtx)
	if err != nil {
		return nil, fmt.Errorf("resolve settings: %w", err)
	}

	app := &App{Settings: settings}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(app.String(config.EntryLogLevel))
	logCfg.TimeFormat = "15:04:05"
	logger, logCleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Path:   app.String(config.EntryLogFile),
		Append: app.Bool(config.EntryLogAppend),
	})
	if err != nil {
		return nil, fmt.Errorf("initialize logging: %w", err)
	}
	app.ctx = logging.WithContext(context.Background(), logger)
	app.logCleanup = logCleanup

	logger.Debug().
		Str("settings_file", settings.Internals.SettingsFilePathOrNone()).
		Str("settings_source", string(settings.Internals.SettingsSource)).
		Msg("settings resolved")

	snapshot := snapshotResolver{settings: settings}
	app.Theme = styles.NewTheme(app.Bool(config.EntryDisplayColor))
	app.PresentSettingsUC = usecase.NewPresentSettingsUseCase(snapshot)
	app.GenerateSampleUC = usecase.NewGenerateSettingsSampleUseCase(snapshot)

	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Value returns the resolved current value of a settings entry, or nil.
func (a *App) Value(name string) any {
	entry, ok := a.Settings.Entry(name)
	if !ok || entry.Value.Resolved == nil {
		return nil
	}
	return entry.Value.Resolved.Current
}

// String returns the resolved value of a settings entry as a string.
func (a *App) String(name string) string {
	return cast.ToString(a.Value(name))
}

// Bool returns the resolved value of a settings entry as a bool.
func (a *App) Bool(name string) bool {
	return cast.ToBool(a.Value(name))
}

// snapshotResolver serves settings that were already resolved.
type snapshotResolver struct {
	settings *entity.Settings
}

func (s snapshotResolver) Resolve(context.Context) (*entity.Settings, error) {
	return s.settings, nil
}
