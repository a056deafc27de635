package tactile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultDragThreshold  = 10.0 // pixels
	defaultLongPressDelay = 500 * time.Millisecond
	defaultDoubleTapDelay = 300 * time.Millisecond
	defaultDebounceDelay  = 100 * time.Millisecond
)

// Config configures a Manager. The zero value is usable: zero thresholds and
// delays are replaced by their defaults in NewManager.
type Config struct {
	Disabled        bool // start with raw event processing off; see Manager.Enable
	PreventDefault  bool // call PreventDefault on consumed raw events
	StopPropagation bool // call StopPropagation on consumed raw events

	DragThreshold  float64       // pixels the pointer must travel before a drag starts
	LongPressDelay time.Duration // touch hold time classified as select
	DoubleTapDelay time.Duration // max gap between clicks flagged as double tap
	DebounceDelay  time.Duration // wheel coalescing window

	// Logger receives handler failures. Nil uses zap.L().
	Logger *zap.Logger
	// Scheduler runs the manager's timers. Nil creates a private scheduler on
	// the system clock; the caller must then call Manager.Update every frame.
	Scheduler *Scheduler
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		DragThreshold:  defaultDragThreshold,
		LongPressDelay: defaultLongPressDelay,
		DoubleTapDelay: defaultDoubleTapDelay,
		DebounceDelay:  defaultDebounceDelay,
	}
}

// withDefaults fills zero-valued tuning fields.
func (c Config) withDefaults() Config {
	if c.DragThreshold <= 0 {
		c.DragThreshold = defaultDragThreshold
	}
	if c.LongPressDelay <= 0 {
		c.LongPressDelay = defaultLongPressDelay
	}
	if c.DoubleTapDelay <= 0 {
		c.DoubleTapDelay = defaultDoubleTapDelay
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = defaultDebounceDelay
	}
	if c.Logger == nil {
		c.Logger = zap.L()
	}
	return c
}

// fileConfig is the on-disk shape. Pointers distinguish "unset" from zero.
type fileConfig struct {
	Enabled          *bool    `toml:"enabled" yaml:"enabled"`
	PreventDefault   *bool    `toml:"prevent_default" yaml:"prevent_default"`
	StopPropagation  *bool    `toml:"stop_propagation" yaml:"stop_propagation"`
	DragThreshold    *float64 `toml:"drag_threshold" yaml:"drag_threshold"`
	LongPressDelayMS *int     `toml:"long_press_delay_ms" yaml:"long_press_delay_ms"`
	DoubleTapDelayMS *int     `toml:"double_tap_delay_ms" yaml:"double_tap_delay_ms"`
	DebounceDelayMS  *int     `toml:"debounce_delay_ms" yaml:"debounce_delay_ms"`
}

// ParseConfig decodes a TOML or YAML document (format "toml", "yaml" or
// "yml") over DefaultConfig.
func ParseConfig(data []byte, format string) (Config, error) {
	var fc fileConfig
	switch strings.ToLower(format) {
	case "toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("parse config: unsupported format %q", format)
	}

	cfg := DefaultConfig()
	if fc.Enabled != nil {
		cfg.Disabled = !*fc.Enabled
	}
	if fc.PreventDefault != nil {
		cfg.PreventDefault = *fc.PreventDefault
	}
	if fc.StopPropagation != nil {
		cfg.StopPropagation = *fc.StopPropagation
	}
	if fc.DragThreshold != nil {
		if *fc.DragThreshold <= 0 {
			return Config{}, fmt.Errorf("parse config: drag_threshold must be > 0, got %v", *fc.DragThreshold)
		}
		cfg.DragThreshold = *fc.DragThreshold
	}
	for _, f := range []struct {
		name string
		src  *int
		dst  *time.Duration
	}{
		{"long_press_delay_ms", fc.LongPressDelayMS, &cfg.LongPressDelay},
		{"double_tap_delay_ms", fc.DoubleTapDelayMS, &cfg.DoubleTapDelay},
		{"debounce_delay_ms", fc.DebounceDelayMS, &cfg.DebounceDelay},
	} {
		if f.src == nil {
			continue
		}
		if *f.src <= 0 {
			return Config{}, fmt.Errorf("parse config: %s must be > 0, got %d", f.name, *f.src)
		}
		*f.dst = time.Duration(*f.src) * time.Millisecond
	}
	return cfg, nil
}

// LoadConfigFile reads a config file, choosing the format from its extension.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	cfg, err := ParseConfig(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
