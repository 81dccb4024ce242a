package output

// Config holds configuration for result rendering.
type Config struct {
	// Format selects how results are written (text, json).
	Format string `mapstructure:"format" default:"text"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// IsValidFormat checks if the configured format is supported.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}
