package life

import (
	"strconv"

	"lifeloop/internal/core"
	"lifeloop/internal/rules"
)

// Config holds parameters for a standalone Life simulation.
type Config struct {
	Width  int
	Height int
	Rule   string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: rules.Default}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	return c
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		rs, err := rules.Resolve(c.Rule)
		if err != nil {
			return nil, err
		}
		return NewWithRules(c.Width, c.Height, rs), nil
	})
}
