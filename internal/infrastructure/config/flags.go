package config

import (
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

// FlagName returns the pflag name of an entry, or "" when it has no CLI surface.
func FlagName(entry entity.SettingsEntry) string {
	if entry.CliParameters == nil {
		return ""
	}
	return strings.TrimPrefix(entry.CliParameters.Long(entry.NameDashed()), "--")
}

// RegisterFlags adds one flag per entry that exposes CLI parameters.
func RegisterFlags(fs *pflag.FlagSet, entries []entity.SettingsEntry) {
	for _, entry := range entries {
		name := FlagName(entry)
		if name == "" || fs.Lookup(name) != nil {
			continue
		}
		shorthand := strings.TrimPrefix(entry.CliParameters.Short, "-")

		switch def := entry.Value.Default.(type) {
		case bool:
			fs.BoolP(name, shorthand, def, entry.ShortDescription)
		default:
			fs.StringP(name, shorthand, cast.ToString(def), entry.ShortDescription)
		}
	}
}
