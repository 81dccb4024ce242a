package cmd

import (
	"bytes"
	"strings"
	"testing"

	"snippets/core/config"
	"snippets/core/loader"
	"snippets/core/output"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRoot(t *testing.T, cfg *config.Config) (*cobra.Command, *loader.Manager, *bytes.Buffer) {
	t.Helper()

	printer, err := output.NewPrinter(cfg.Output)
	require.NoError(t, err)

	root := &cobra.Command{Use: "snippets", SilenceUsage: true, SilenceErrors: true}
	mgr, err := Bootstrap(root, cfg, zap.NewNop(), printer)
	require.NoError(t, err)

	var buf bytes.Buffer
	root.SetOut(&buf)
	return root, mgr, &buf
}

func TestBootstrap_LoadsAllFeatures(t *testing.T) {
	root, mgr, _ := newTestRoot(t, &config.Config{Output: output.Config{Format: output.FormatText}})

	assert.Equal(t,
		[]string{"text", "ratings", "sequence", "vehicle", "value", "products", "calendar", "square"},
		mgr.Loaded(),
	)

	names := lo.Map(root.Commands(), func(c *cobra.Command, _ int) string { return c.Name() })
	for _, want := range []string{"text", "ratings", "concat", "vehicle", "value", "products", "daytype", "square", "demo"} {
		assert.Contains(t, names, want)
	}
}

func TestBootstrap_DisabledFeatures(t *testing.T) {
	cfg := &config.Config{
		Output:   output.Config{Format: output.FormatText},
		Features: loader.Config{Disabled: "square, calendar"},
	}
	root, mgr, _ := newTestRoot(t, cfg)

	assert.NotContains(t, mgr.Loaded(), "square")
	assert.NotContains(t, mgr.Loaded(), "calendar")

	root.SetArgs([]string{"daytype", "Monday"})
	assert.Error(t, root.Execute())
}

func TestRoot_RunsFeatureCommand(t *testing.T) {
	root, _, buf := newTestRoot(t, &config.Config{Output: output.Config{Format: output.FormatText}})

	root.SetArgs([]string{"text", "Hello", "--lower"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "formatted: hello\n", buf.String())
}

func TestDemo(t *testing.T) {
	root, _, buf := newTestRoot(t, &config.Config{Output: output.Config{Format: output.FormatText}})

	root.SetArgs([]string{"demo"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, lines, "formatString(Hello): HELLO")
	assert.Contains(t, lines, "formatString(Hello, false): hello")
	assert.Contains(t, lines, "filterByRating(books): [Book A (4.5) Book C (5)]")
	assert.Contains(t, lines, "concatenateArrays([a b], [c]): [a b c]")
	assert.Contains(t, lines, "car.info: Make: Toyota, Year: 2020")
	assert.Contains(t, lines, "car.model: Model: Corolla")
	assert.Contains(t, lines, "processValue(hello): 5")
	assert.Contains(t, lines, "processValue(10): 20")
	assert.Contains(t, lines, "getMostExpensiveProduct(products): Bag (50)")
	assert.Contains(t, lines, "getDayType(Monday): Weekday")
	assert.Contains(t, lines, "getDayType(Sunday): Weekend")
	assert.Contains(t, lines, "squareAsync(-3): Negative number not allowed")
	assert.Equal(t, "squareAsync(4): 16", lines[len(lines)-1])
}
