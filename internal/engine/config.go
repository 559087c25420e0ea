package engine

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"lifeloop/internal/rules"
)

// Mode selects how the simulation is fed with life.
type Mode int

const (
	// RandomSeed injects random noise along the grid border every tick.
	RandomSeed Mode = iota
	// Stamp leaves the border dead; life enters only through placed stamps.
	Stamp
)

// ErrInvalidMode reports an unknown play mode.
var ErrInvalidMode = errors.New("invalid play mode")

func (m Mode) String() string {
	switch m {
	case RandomSeed:
		return "random"
	case Stamp:
		return "stamp"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Valid reports whether m names a known mode.
func (m Mode) Valid() bool { return m == RandomSeed || m == Stamp }

// ParseMode accepts "random", "random_seed", "stamp" and the like.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "random_seed", "randomseed", "random-seed":
		return RandomSeed, nil
	case "stamp", "stamps":
		return Stamp, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// UnmarshalText lets config files spell modes by name.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText renders the mode name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// Config controls the engine.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   uint32 `yaml:"seed"`
	Rules  string `yaml:"rules"`
	Mode   Mode   `yaml:"mode"`
	// TPS caps the tick rate; 0 runs unthrottled.
	TPS int `yaml:"tps"`
	// MaxCells bounds width*height for the initial grid and every resize.
	MaxCells int `yaml:"max_cells"`
	// StampsFile optionally replaces the built-in stamp catalogue.
	StampsFile string `yaml:"stamps_file"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Seed:     2011,
		Rules:    rules.Default,
		Mode:     RandomSeed,
		TPS:      60,
		MaxCells: 4096 * 4096,
	}
}

// Validate checks the dimensions and mode.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(c.Mode))
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps must be >= 0, got %d", c.TPS)
	}
	return c.checkSize(c.Width, c.Height)
}

func (c Config) checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if c.MaxCells > 0 && w > c.MaxCells/h {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidSize, w, h, c.MaxCells)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Seed = uint32(parsed)
		}
	}
	if v, ok := cfg["rules"]; ok && v != "" {
		c.Rules = v
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["max_cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxCells = parsed
		}
	}
	if v, ok := cfg["stamps"]; ok {
		c.StampsFile = v
	}
	return c
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
