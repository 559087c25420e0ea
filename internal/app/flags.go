package app

import (
	"flag"
	"fmt"
	"math"

	"lifeloop/internal/engine"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigFile  string
	StampsFile  string
	Width       int
	Height      int
	Scale       int
	TPS         int
	Seed        uint
	Rules       string
	Mode        string
	HUDWidth    int
	MetricsAddr string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := engine.DefaultConfig()
	return &Config{
		Width:    160,
		Height:   120,
		Scale:    4,
		TPS:      d.TPS,
		Seed:     uint(d.Seed),
		Rules:    d.Rules,
		Mode:     d.Mode.String(),
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML engine config file")
	fs.StringVar(&c.StampsFile, "stamps", c.StampsFile, "YAML stamp catalogue file")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second (0 = unthrottled)")
	fs.UintVar(&c.Seed, "seed", c.Seed, "seed for border noise")
	fs.StringVar(&c.Rules, "rules", c.Rules, "automaton rules as survive/birth or a preset name")
	fs.StringVar(&c.Mode, "mode", c.Mode, "play mode: random or stamp")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.StringVar(&c.MetricsAddr, "metrics", c.MetricsAddr, "address to serve Prometheus metrics on, empty to disable")
}

// EngineConfig builds the engine configuration. Values come from the config
// file when one is given; flags set explicitly on fs override them.
func (c *Config) EngineConfig(fs *flag.FlagSet) (engine.Config, error) {
	ec := engine.DefaultConfig()
	ec.Width, ec.Height = c.Width, c.Height
	if c.ConfigFile != "" {
		loaded, err := engine.LoadConfig(c.ConfigFile)
		if err != nil {
			return ec, err
		}
		ec = loaded
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "w":
			ec.Width = c.Width
		case "h":
			ec.Height = c.Height
		case "tps":
			ec.TPS = c.TPS
		case "seed":
			if c.Seed > math.MaxUint32 {
				err = fmt.Errorf("seed %d does not fit in 32 bits", c.Seed)
				return
			}
			ec.Seed = uint32(c.Seed)
		case "rules":
			ec.Rules = c.Rules
		case "stamps":
			ec.StampsFile = c.StampsFile
		case "mode":
			ec.Mode, err = engine.ParseMode(c.Mode)
		}
	})
	if err != nil {
		return ec, err
	}
	if c.Scale <= 0 {
		return ec, fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return ec, ec.Validate()
}
