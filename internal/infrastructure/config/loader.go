package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnema/settingsdeck/internal/domain/entity"
	"github.com/bnema/settingsdeck/internal/logging"
)

// ErrSettingsFileNotFound is returned when <APP>_CONFIG names a missing file.
var ErrSettingsFileNotFound = errors.New("settings file not found")

var settingsFileExtensions = []string{"yml", "yaml", "json"}

// Resolver resolves settings entries in precedence order:
// command line, environment variable, settings file, default.
// It implements port.SettingsResolver.
type Resolver struct {
	fs          afero.Fs
	flags       *pflag.FlagSet
	lookupEnv   func(string) (string, bool)
	workDir     string
	homeDir     string
	appName     string
	subcommands []string
	catalog     []entity.SettingsEntry
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFs sets the filesystem used for settings-file discovery and reading.
func WithFs(fs afero.Fs) ResolverOption {
	return func(r *Resolver) { r.fs = fs }
}

// WithFlags sets the parsed flag set consulted for command-line values.
func WithFlags(flags *pflag.FlagSet) ResolverOption {
	return func(r *Resolver) { r.flags = flags }
}

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(lookup func(string) (string, bool)) ResolverOption {
	return func(r *Resolver) { r.lookupEnv = lookup }
}

// WithDirs sets the working and home directories searched for a settings file.
func WithDirs(workDir, homeDir string) ResolverOption {
	return func(r *Resolver) {
		r.workDir = workDir
		r.homeDir = homeDir
	}
}

// WithCatalog replaces the application name, subcommands and entries.
func WithCatalog(appName string, subcommands []string, entries []entity.SettingsEntry) ResolverOption {
	return func(r *Resolver) {
		r.appName = appName
		r.subcommands = subcommands
		r.catalog = entries
	}
}

// NewResolver creates a Resolver for settingsdeck's own catalog.
func NewResolver(opts ...ResolverOption) *Resolver {
	workDir, _ := os.Getwd()
	homeDir, _ := os.UserHomeDir()

	r := &Resolver{
		fs:          afero.NewOsFs(),
		flags:       pflag.NewFlagSet(ApplicationName, pflag.ContinueOnError),
		lookupEnv:   os.LookupEnv,
		workDir:     workDir,
		homeDir:     homeDir,
		appName:     ApplicationName,
		subcommands: Subcommands(),
		catalog:     Catalog(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve discovers the settings file and resolves every catalog entry.
func (r *Resolver) Resolve(ctx context.Context) (*entity.Settings, error) {
	ctx = logging.WithComponent(ctx, "resolver")
	log := logging.FromContext(ctx)

	if err := validateScopes(r.subcommands, r.catalog); err != nil {
		return nil, fmt.Errorf("settings catalog is invalid: %w", err)
	}

	internals, err := r.discover()
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("path", internals.SettingsFilePath).
		Str("source", string(internals.SettingsSource)).
		Msg("settings file discovery finished")

	v := viper.New()
	v.SetFs(r.fs)
	if internals.SettingsFilePath != "" {
		v.SetConfigFile(internals.SettingsFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read settings file %s: %w", internals.SettingsFilePath, err)
		}
	}

	entries := make([]entity.SettingsEntry, len(r.catalog))
	for i, entry := range r.catalog {
		value, err := r.resolveEntry(entry, v, internals.SettingsFilePath != "")
		if err != nil {
			return nil, err
		}
		entry.Choices = append([]any{}, entry.Choices...)
		entry.Value.Resolved = value
		entries[i] = entry

		log.Trace().
			Str("entry", entry.Name).
			Str("source", string(value.Source)).
			Interface("current", value.Current).
			Msg("resolved settings entry")
	}

	if err := validateEntries(entries); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return &entity.Settings{
		ApplicationName:       r.appName,
		ApplicationNameDashed: strings.ReplaceAll(r.appName, "_", "-"),
		Subcommands:           append([]string{}, r.subcommands...),
		Entries:               entries,
		Internals:             internals,
	}, nil
}

func (r *Resolver) resolveEntry(entry entity.SettingsEntry, v *viper.Viper, haveFile bool) (*entity.ResolvedValue, error) {
	def := entry.Value.Default

	resolved := func(raw any, source entity.Source) (*entity.ResolvedValue, error) {
		current, err := coerce(raw, def)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %q from %s: %w", ErrInvalidValue, entry.Name, source, err)
		}
		return &entity.ResolvedValue{
			Current:   current,
			Default:   def,
			IsDefault: source == entity.SourceDefault,
			Source:    source,
		}, nil
	}

	if name := FlagName(entry); name != "" && r.flags != nil {
		if f := r.flags.Lookup(name); f != nil && f.Changed {
			return resolved(f.Value.String(), entity.SourceUserCLI)
		}
	}

	// An empty variable counts as unset.
	if raw, ok := r.lookupEnv(entry.EnvironmentVariable(r.appName)); ok && raw != "" {
		return resolved(raw, entity.SourceEnvironmentVariable)
	}

	if haveFile {
		key := r.appName + "." + entry.SettingsFileKey()
		if v.InConfig(key) && v.IsSet(key) {
			return resolved(v.Get(key), entity.SourceUserCfg)
		}
	}

	return resolved(def, entity.SourceDefault)
}

// discover finds the settings file: <APP>_CONFIG first, then the search path.
func (r *Resolver) discover() (entity.Internals, error) {
	envName := strings.ToUpper(r.appName) + "_CONFIG"
	if path, ok := r.lookupEnv(envName); ok && path != "" {
		exists, err := afero.Exists(r.fs, path)
		if err != nil {
			return entity.Internals{}, fmt.Errorf("stat settings file %s: %w", path, err)
		}
		if !exists {
			return entity.Internals{}, fmt.Errorf("%w: %s is set to %s", ErrSettingsFileNotFound, envName, path)
		}
		return entity.Internals{SettingsFilePath: path, SettingsSource: entity.SourceEnvironmentVariable}, nil
	}

	for _, candidate := range r.SearchPaths() {
		exists, err := afero.Exists(r.fs, candidate)
		if err != nil {
			return entity.Internals{}, fmt.Errorf("stat settings file %s: %w", candidate, err)
		}
		if exists {
			return entity.Internals{SettingsFilePath: candidate, SettingsSource: entity.SourceSearchPath}, nil
		}
	}

	return entity.Internals{SettingsSource: entity.SourceNone}, nil
}

// SearchPaths returns the candidate settings files in search order:
// {CWD}/<app>.{ext}, then {HOME}/.<app>.{ext}.
func (r *Resolver) SearchPaths() []string {
	var paths []string
	for _, dir := range []struct{ path, prefix string }{
		{r.workDir, ""},
		{r.homeDir, "."},
	} {
		if dir.path == "" {
			continue
		}
		for _, ext := range settingsFileExtensions {
			paths = append(paths, filepath.Join(dir.path, dir.prefix+r.appName+"."+ext))
		}
	}
	return paths
}

// coerce converts raw to the kind of the declared default.
func coerce(raw, def any) (any, error) {
	switch def.(type) {
	case bool:
		return cast.ToBoolE(raw)
	case int:
		return cast.ToIntE(raw)
	case []string:
		return cast.ToStringSliceE(raw)
	default:
		return cast.ToStringE(raw)
	}
}
