package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/nikbrunner/carousel/internal/carousel"
)

// ErrInvalid is returned when a config value is out of range.
var ErrInvalid = errors.New("invalid config")

// Lock release modes.
const (
	ReleaseSettle = "settle" // release on scroll completion, timer as fallback
	ReleaseTimer  = "timer"  // release only when the lock duration elapses
)

// Config holds user configuration loaded from config.toml.
type Config struct {
	LockDuration  time.Duration `koanf:"lock_duration"`
	LockRelease   string        `koanf:"lock_release"`   // "settle" or "timer"
	FrameInterval time.Duration `koanf:"frame_interval"` // 0 disables animation
	ScrollSpeed   float64       `koanf:"scroll_speed"`   // lerp factor per frame, (0, 1]

	CardWidth    int `koanf:"card_width"`
	CardGap      int `koanf:"card_gap"`
	StripPadding int `koanf:"strip_padding"`
	FadeWidth    int `koanf:"fade_width"` // 0 disables the fade mask

	Library string `koanf:"library"` // catalog library path, empty = default location
	Mouse   bool   `koanf:"mouse"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LockDuration:  carousel.DefaultLockDuration,
		LockRelease:   ReleaseSettle,
		FrameInterval: 16 * time.Millisecond,
		ScrollSpeed:   0.25,
		CardWidth:     28,
		CardGap:       2,
		StripPadding:  6,
		FadeWidth:     6,
		Mouse:         true,
	}
}

// Load reads ~/.config/carousel/config.toml and then ./config.toml.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom layers the given TOML files over the defaults, last wins.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.Library = expandPath(cfg.Library)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.LockDuration <= 0:
		return fmt.Errorf("%w: lock_duration must be positive", ErrInvalid)
	case c.LockRelease != ReleaseSettle && c.LockRelease != ReleaseTimer:
		return fmt.Errorf("%w: lock_release %q (want %q or %q)", ErrInvalid, c.LockRelease, ReleaseSettle, ReleaseTimer)
	case c.FrameInterval < 0:
		return fmt.Errorf("%w: frame_interval must not be negative", ErrInvalid)
	case c.ScrollSpeed <= 0 || c.ScrollSpeed > 1:
		return fmt.Errorf("%w: scroll_speed %v not in (0, 1]", ErrInvalid, c.ScrollSpeed)
	case c.CardWidth < 8:
		return fmt.Errorf("%w: card_width %d is below 8", ErrInvalid, c.CardWidth)
	case c.CardGap < 0 || c.StripPadding < 0 || c.FadeWidth < 0:
		return fmt.Errorf("%w: card_gap, strip_padding and fade_width must not be negative", ErrInvalid)
	}
	return nil
}

// ReleaseOnSettle reports whether the scroll completion signal clears the lock.
func (c *Config) ReleaseOnSettle() bool {
	return c.LockRelease == ReleaseSettle
}

func getConfigPaths() []string {
	paths := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "carousel", "config.toml"))
	}

	// ./config.toml has the highest priority
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
