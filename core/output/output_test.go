package output_test

import (
	"bytes"
	"testing"

	"snippets/core/output"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_IsValidFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   bool
	}{
		{"Text", output.FormatText, true},
		{"JSON", output.FormatJSON, true},
		{"Invalid", "yaml", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := output.Config{Format: tt.format}
			assert.Equal(t, tt.want, c.IsValidFormat())
		})
	}
}

func TestNewPrinter_Invalid(t *testing.T) {
	p, err := output.NewPrinter(output.Config{Format: "xml"})
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestPrinter_Print(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		p, err := output.NewPrinter(output.Config{Format: output.FormatText})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, p.Print(&buf, "result", 16))
		assert.Equal(t, "result: 16\n", buf.String())
	})

	t.Run("JSON", func(t *testing.T) {
		p, err := output.NewPrinter(output.Config{Format: output.FormatJSON})
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, p.Print(&buf, "items", []string{"a", "b"}))
		assert.JSONEq(t, `{"items":["a","b"]}`, buf.String())
	})
}
