package loader

import (
	"strings"

	"github.com/samber/lo"
)

// Config holds configuration for feature loading.
type Config struct {
	// Disabled is a comma separated list of feature names that must not be mounted.
	Disabled string `mapstructure:"disabled" default:""`
}

// DisabledNames returns the normalized list of disabled feature names.
func (c Config) DisabledNames() []string {
	names := lo.Map(strings.Split(c.Disabled, ","), func(name string, _ int) string {
		return strings.ToLower(strings.TrimSpace(name))
	})
	return lo.Compact(names)
}

// IsDisabled reports whether the named feature is switched off.
func (c Config) IsDisabled(name string) bool {
	return lo.Contains(c.DisabledNames(), strings.ToLower(name))
}
