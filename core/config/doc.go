// Package config provides configuration management for the snippets CLI.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Output: Result format, text or json (OUTPUT_FORMAT)
//   - Features: Comma separated list of disabled features (FEATURES_DISABLED)
//
// Defaults come from the 'default' struct tags of each section.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Output.Format)
package config
