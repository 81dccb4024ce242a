package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagDefaults(t *testing.T) {
	t.Run("Config", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"log.level":         "info",
			"log.format":        "console",
			"output.format":     "text",
			"features.disabled": "",
		}, tagDefaults(reflect.TypeOf(Config{}), ""))
	})

	t.Run("SkipsUntaggedAndNests", func(t *testing.T) {
		type inner struct {
			Depth int `mapstructure:"depth" default:"3"`
		}
		type settings struct {
			Name    string `mapstructure:"name" default:"x"`
			Ignored string
			Inner   inner `mapstructure:"inner"`
		}

		assert.Equal(t, map[string]string{
			"app.name":        "x",
			"app.inner.depth": "3",
		}, tagDefaults(reflect.TypeOf(settings{}), "app"))
	})
}
