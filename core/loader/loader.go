package loader

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature is a self-contained snippet that mounts its own command.
type Feature interface {
	// Name returns the unique feature name.
	Name() string
	// IsEnabled reports whether the feature wants to be loaded.
	IsEnabled() bool
	// Load attaches the feature's commands to the root command.
	Load(root *cobra.Command) error
}

// Manager keeps the registry of features.
type Manager struct {
	cfg      Config
	logger   *zap.Logger
	features []Feature
	loaded   []string
}

// NewManager creates an empty feature manager.
func NewManager(cfg Config, logger *zap.Logger) *Manager {
	return &Manager{cfg: cfg, logger: logger}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every registered feature that is enabled and not disabled by configuration.
// Registering two features under the same name is an error.
func (m *Manager) LoadAll(root *cobra.Command) error {
	seen := make(map[string]struct{}, len(m.features))

	for _, f := range m.features {
		name := f.Name()
		if _, dup := seen[name]; dup {
			return fmt.Errorf("feature %q registered twice", name)
		}
		seen[name] = struct{}{}

		if !f.IsEnabled() || m.cfg.IsDisabled(name) {
			m.logger.Debug("Feature skipped", zap.String("feature", name))
			continue
		}

		if err := f.Load(root); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", name, err)
		}
		m.loaded = append(m.loaded, name)
		m.logger.Debug("Feature loaded", zap.String("feature", name))
	}

	return nil
}

// Loaded returns the names of the features mounted by LoadAll, in registration order.
func (m *Manager) Loaded() []string {
	return append([]string(nil), m.loaded...)
}
