package loader_test

import (
	"errors"
	"testing"

	"snippets/core/loader"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	calls   int
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(root *cobra.Command) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	root.AddCommand(&cobra.Command{Use: s.name})
	return nil
}

func TestConfig_DisabledNames(t *testing.T) {
	tests := []struct {
		name     string
		disabled string
		want     []string
	}{
		{"Empty", "", []string{}},
		{"Single", "square", []string{"square"}},
		{"Spaces and case", " Square , TEXT ,, ", []string{"square", "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loader.Config{Disabled: tt.disabled}
			assert.Equal(t, tt.want, c.DisabledNames())
		})
	}

	c := loader.Config{Disabled: "text,square"}
	assert.True(t, c.IsDisabled("Square"))
	assert.False(t, c.IsDisabled("vehicle"))
}

func TestManager_LoadAll(t *testing.T) {
	root := &cobra.Command{Use: "root"}
	text := &stubFeature{name: "text", enabled: true}
	square := &stubFeature{name: "square", enabled: true}
	off := &stubFeature{name: "off", enabled: false}

	mgr := loader.NewManager(loader.Config{Disabled: "square"}, zap.NewNop())
	mgr.Register(text)
	mgr.Register(square)
	mgr.Register(off)

	require.NoError(t, mgr.LoadAll(root))
	assert.Equal(t, []string{"text"}, mgr.Loaded())
	assert.Equal(t, 1, text.calls)
	assert.Equal(t, 0, square.calls)
	assert.Equal(t, 0, off.calls)
	assert.Len(t, root.Commands(), 1)
}

func TestManager_LoadAll_Errors(t *testing.T) {
	t.Run("Load failure", func(t *testing.T) {
		mgr := loader.NewManager(loader.Config{}, zap.NewNop())
		mgr.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("boom")})

		err := mgr.LoadAll(&cobra.Command{Use: "root"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("Duplicate name", func(t *testing.T) {
		mgr := loader.NewManager(loader.Config{}, zap.NewNop())
		mgr.Register(&stubFeature{name: "text", enabled: true})
		mgr.Register(&stubFeature{name: "text", enabled: true})

		err := mgr.LoadAll(&cobra.Command{Use: "root"})
		assert.ErrorContains(t, err, "registered twice")
	})
}
