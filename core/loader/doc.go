// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register features (one per snippet) and mount
// their commands on the root cobra command. Each feature implements the Feature
// interface.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(root *cobra.Command) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// Features listed in the FEATURES_DISABLED setting are skipped at load time.
package loader
