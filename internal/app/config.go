package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"termlife/internal/core"
	"termlife/internal/sims/life"
)

// Config represents the command-line and file parameters for the front ends.
type Config struct {
	ConfigFile string  `json:"-"`
	Seed       int64   `json:"seed"`
	Density    float64 `json:"density"`
	Pattern    string  `json:"pattern"`
	PollMS     int     `json:"poll_ms"`
	TPS        int     `json:"tps"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Scale      int     `json:"scale"`
	Sound      bool    `json:"sound"`
	LogFile    string  `json:"log_file"`
	LogLevel   string  `json:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults. A zero
// width or height means "fit the terminal".
func NewConfig() *Config {
	return &Config{
		Density:  life.DefaultDensity,
		Pattern:  life.PatternRandom,
		PollMS:   int(DefaultPollInterval / time.Millisecond),
		TPS:      20,
		Width:    0,
		Height:   0,
		Scale:    6,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON config file applied before flags")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill (0 = time based)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that an unset cell starts alive")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: random, empty, glider, blinker")
	fs.IntVar(&c.PollMS, "poll", c.PollMS, "input poll timeout in milliseconds")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second (window front end)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 = fit terminal)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 = fit terminal)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (window front end)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "click on cell toggles and resets")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// PollInterval is PollMS as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollMS) * time.Millisecond
}

// ResolveSeed returns Seed, or a time-derived seed when Seed is 0.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Validate rejects values the front ends cannot run with.
func (c *Config) Validate() error {
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density %v outside [0,1]", c.Density)
	}
	if _, ok := core.Patterns()[c.Pattern]; !ok {
		return errors.Errorf("unknown pattern %q (have %v)", c.Pattern, core.PatternNames())
	}
	if c.PollMS <= 0 {
		return errors.Errorf("poll interval must be positive, got %dms", c.PollMS)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("negative grid size %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}

// LoadConfigFile reads a JSON config on top of the defaults.
func LoadConfigFile(filename string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfigFile] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfigFile] failed to unmarshal data from file: %+v", filename)
	}

	cfg.ConfigFile = filename
	return cfg, nil
}

// ParseArgs builds a Config from defaults, then the -config file if one is
// named, then the remaining flags, which win over the file.
func ParseArgs(name string, args []string) (*Config, error) {
	cfg := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.ConfigFile != "" {
		loaded, err := LoadConfigFile(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		fs = flag.NewFlagSet(name, flag.ContinueOnError)
		loaded.Bind(fs)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// NewGrid returns the starting grid for a w*h area with the configured
// pattern applied.
func (c *Config) NewGrid(w, h int) *core.Grid {
	g := core.NewGrid(h, w)
	if p, ok := core.Patterns()[c.Pattern]; ok {
		p(g)
	}
	return g
}
