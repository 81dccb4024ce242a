package config

import (
	"reflect"
	"strings"

	"snippets/core/loader"
	"snippets/core/logger"
	"snippets/core/output"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by each package.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Output holds configuration for result rendering.
	Output output.Config `mapstructure:"output"`
	// Features holds configuration for the feature loader.
	Features loader.Config `mapstructure:"features"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is fine, the environment alone is enough.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Every key gets a default, even an empty one, so AutomaticEnv can find it.
	for key, value := range tagDefaults(reflect.TypeOf(Config{}), "") {
		v.SetDefault(key, value)
	}

	// LOG_LEVEL -> log.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// tagDefaults flattens a settings struct into dotted viper keys ("log.level")
// mapped to the value of their 'default' tag. Fields without a 'mapstructure'
// tag are not settings and are left out.
func tagDefaults(t reflect.Type, prefix string) map[string]string {
	defaults := make(map[string]string)

	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" || field.Anonymous {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() != reflect.Struct {
			defaults[name] = field.Tag.Get("default")
			continue
		}
		for key, value := range tagDefaults(field.Type, name) {
			defaults[key] = value
		}
	}

	return defaults
}
