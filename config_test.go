package tactile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Disabled)
	assert.False(t, cfg.PreventDefault)
	assert.False(t, cfg.StopPropagation)
	assert.Equal(t, 10.0, cfg.DragThreshold)
	assert.Equal(t, 500*time.Millisecond, cfg.LongPressDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.DoubleTapDelay)
	assert.Equal(t, 100*time.Millisecond, cfg.DebounceDelay)
}

func TestConfigWithDefaultsFillsZeroes(t *testing.T) {
	cfg := Config{DragThreshold: 4}.withDefaults()
	assert.Equal(t, 4.0, cfg.DragThreshold)
	assert.Equal(t, defaultLongPressDelay, cfg.LongPressDelay)
	assert.Equal(t, defaultDoubleTapDelay, cfg.DoubleTapDelay)
	assert.Equal(t, defaultDebounceDelay, cfg.DebounceDelay)
	assert.NotNil(t, cfg.Logger)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
	}{
		{"toml", "toml", `
enabled = true
prevent_default = true
drag_threshold = 6.5
long_press_delay_ms = 750
debounce_delay_ms = 40
`},
		{"yaml", "yaml", `
enabled: true
prevent_default: true
drag_threshold: 6.5
long_press_delay_ms: 750
debounce_delay_ms: 40
`},
		{"yml upper", "YML", `
prevent_default: true
drag_threshold: 6.5
long_press_delay_ms: 750
debounce_delay_ms: 40
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.False(t, cfg.Disabled)
			assert.True(t, cfg.PreventDefault)
			assert.False(t, cfg.StopPropagation)
			assert.Equal(t, 6.5, cfg.DragThreshold)
			assert.Equal(t, 750*time.Millisecond, cfg.LongPressDelay)
			assert.Equal(t, defaultDoubleTapDelay, cfg.DoubleTapDelay, "unset keys keep defaults")
			assert.Equal(t, 40*time.Millisecond, cfg.DebounceDelay)
		})
	}
}

func TestParseConfigDisable(t *testing.T) {
	cfg, err := ParseConfig([]byte("enabled = false\n"), "toml")
	require.NoError(t, err)
	assert.True(t, cfg.Disabled)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		msg    string
	}{
		{"unknown format", "json", `{}`, "unsupported format"},
		{"bad toml", "toml", `drag_threshold = = 1`, "parse config"},
		{"bad yaml", "yaml", "drag_threshold: [1", "parse config"},
		{"negative threshold", "toml", `drag_threshold = -1`, "drag_threshold"},
		{"negative delay", "yaml", `double_tap_delay_ms: -5`, "double_tap_delay_ms"},
		{"zero threshold", "toml", `drag_threshold = 0`, "drag_threshold must be > 0"},
		{"zero delay", "toml", `debounce_delay_ms = 0`, "debounce_delay_ms must be > 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tactile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stop_propagation: true\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.StopPropagation)

	_, err = LoadConfigFile(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "tactile.ini")
	require.NoError(t, os.WriteFile(bad, []byte("x=1"), 0o644))
	_, err = LoadConfigFile(bad)
	assert.ErrorContains(t, err, "unsupported format")
}
