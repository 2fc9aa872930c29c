package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/looplist/pkg/gestures"
	"github.com/go-drift/looplist/pkg/loop"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "looplist.yaml"

// SchemaVersion is the configuration schema this build understands.
const SchemaVersion = "v1.0.0"

// Config represents the optional looplist.yaml configuration.
type Config struct {
	Version  string         `yaml:"version,omitempty"`
	List     ListConfig     `yaml:"list"`
	Gestures GesturesConfig `yaml:"gestures"`
	Demo     DemoConfig     `yaml:"demo"`
	Log      LogConfig      `yaml:"log"`
}

// ListConfig contains view options. Pointer fields distinguish an explicit
// zero from an omitted key.
type ListConfig struct {
	SnapDuration   string   `yaml:"snap_duration,omitempty"`
	Overscan       *float64 `yaml:"overscan,omitempty"`
	SnapOnRelease  *bool    `yaml:"snap_on_release,omitempty"`
	MaxFillPerPass int      `yaml:"max_fill_per_pass,omitempty"`
}

// GesturesConfig contains gesture thresholds.
type GesturesConfig struct {
	TouchSlop        float64 `yaml:"touch_slop,omitempty"`
	MinFlingVelocity float64 `yaml:"min_fling_velocity,omitempty"`
	MaxFlingVelocity float64 `yaml:"max_fling_velocity,omitempty"`
	DoubleTapTimeout string  `yaml:"double_tap_timeout,omitempty"`
}

// DemoConfig contains settings for the terminal demo.
type DemoConfig struct {
	Items        int     `yaml:"items,omitempty"`
	ItemPadding  float64 `yaml:"item_padding,omitempty"`
	PixelsPerRow float64 `yaml:"pixels_per_row,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Demo holds resolved demo settings.
type Demo struct {
	Items        int
	ItemPadding  float64
	PixelsPerRow float64
}

// DefaultDemo returns the demo settings used when none are configured.
func DefaultDemo() Demo {
	return Demo{Items: 12, ItemPadding: 4, PixelsPerRow: 13}
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path     string
	Version  string
	Options  loop.Options
	Demo     Demo
	LogLevel string
}

// Load reads the file at path. A missing file yields an empty Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return &cfg, nil
}

// LoadOptional reads looplist.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Resolve loads the file at path (if present) and resolves defaults.
func Resolve(path string) (*Resolved, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	resolved.Path = path
	return resolved, nil
}

// Resolve validates c and merges it over the defaults.
func (c *Config) Resolve() (*Resolved, error) {
	version, err := validateVersion(c.Version)
	if err != nil {
		return nil, err
	}

	options := loop.DefaultOptions()
	if c.List.SnapDuration != "" {
		d, err := parseDuration("list.snap_duration", c.List.SnapDuration)
		if err != nil {
			return nil, err
		}
		options.SnapDuration = d
	}
	if c.List.Overscan != nil {
		if *c.List.Overscan < 0 {
			return nil, fmt.Errorf("list.overscan must not be negative, got %v", *c.List.Overscan)
		}
		options.Overscan = *c.List.Overscan
	}
	if c.List.SnapOnRelease != nil {
		options.SnapOnRelease = *c.List.SnapOnRelease
	}
	if c.List.MaxFillPerPass < 0 {
		return nil, fmt.Errorf("list.max_fill_per_pass must not be negative, got %d", c.List.MaxFillPerPass)
	}
	if c.List.MaxFillPerPass > 0 {
		options.MaxFillPerPass = c.List.MaxFillPerPass
	}

	g, err := c.Gestures.resolve(options.Gestures)
	if err != nil {
		return nil, err
	}
	options.Gestures = g

	demo := DefaultDemo()
	if c.Demo.Items < 0 {
		return nil, fmt.Errorf("demo.items must not be negative, got %d", c.Demo.Items)
	}
	if c.Demo.Items > 0 {
		demo.Items = c.Demo.Items
	}
	if c.Demo.ItemPadding > 0 {
		demo.ItemPadding = c.Demo.ItemPadding
	}
	if c.Demo.PixelsPerRow > 0 {
		demo.PixelsPerRow = c.Demo.PixelsPerRow
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level == "" {
		level = "info"
	}

	return &Resolved{
		Version:  version,
		Options:  options,
		Demo:     demo,
		LogLevel: level,
	}, nil
}

func (g GesturesConfig) resolve(base gestures.Config) (gestures.Config, error) {
	if g.TouchSlop > 0 {
		base.TouchSlop = g.TouchSlop
	}
	if g.MinFlingVelocity > 0 {
		base.MinFlingVelocity = g.MinFlingVelocity
	}
	if g.MaxFlingVelocity > 0 {
		base.MaxFlingVelocity = g.MaxFlingVelocity
	}
	if base.MinFlingVelocity > base.MaxFlingVelocity {
		return base, fmt.Errorf("gestures.min_fling_velocity (%v) exceeds max_fling_velocity (%v)",
			base.MinFlingVelocity, base.MaxFlingVelocity)
	}
	if g.DoubleTapTimeout != "" {
		d, err := parseDuration("gestures.double_tap_timeout", g.DoubleTapTimeout)
		if err != nil {
			return base, err
		}
		base.DoubleTapTimeout = d
	}
	return base, nil
}

// validateVersion accepts an empty version (meaning the current schema) or
// any semantic version sharing the current major.
func validateVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return SchemaVersion, nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid config version %q", v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return "", fmt.Errorf("unsupported config version %s (want %s.x)", v, semver.Major(SchemaVersion))
	}
	if semver.Compare(v, SchemaVersion) > 0 {
		return "", fmt.Errorf("config version %s is newer than supported %s", v, SchemaVersion)
	}
	return semver.Canonical(v), nil
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", field, value)
	}
	return d, nil
}
