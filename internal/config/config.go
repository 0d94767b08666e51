// Package config loads the tracker's HCL configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/pokertracker/internal/parser"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// DefaultWorkers is the batch parse concurrency when none is configured.
const DefaultWorkers = 4

// Config represents the complete tracker configuration
type Config struct {
	Parser *ParserSettings `hcl:"parser,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Stakes []StakeConfig   `hcl:"stake,block"`
}

// ParserSettings tunes batch parsing
type ParserSettings struct {
	Workers          int      `hcl:"workers,optional"`
	TimestampLayouts []string `hcl:"timestamp_layouts,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// StakeConfig maps a blind pair to a stake label, overriding the built-in table
type StakeConfig struct {
	Label      string `hcl:"label,label"`
	SmallBlind string `hcl:"small_blind"`
	BigBlind   string `hcl:"big_blind"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Parser: &ParserSettings{Workers: DefaultWorkers},
		Log:    &LogSettings{Level: "info"},
	}
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	p := hclparse.NewParser()
	file, diags := p.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Parser == nil {
		config.Parser = &ParserSettings{}
	}
	if config.Parser.Workers == 0 {
		config.Parser.Workers = DefaultWorkers
	}
	if config.Log == nil {
		config.Log = &LogSettings{}
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Parser != nil && c.Parser.Workers < 1 {
		return fmt.Errorf("parser: workers must be positive, got %d", c.Parser.Workers)
	}
	if c.Log != nil {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("log: invalid level %q", c.Log.Level)
		}
	}

	seen := make(map[string]bool, len(c.Stakes))
	for _, s := range c.Stakes {
		if seen[s.Label] {
			return fmt.Errorf("stake %s: defined more than once", s.Label)
		}
		seen[s.Label] = true
		if _, err := s.stake(); err != nil {
			return err
		}
	}
	return nil
}

func (s StakeConfig) stake() (parser.Stake, error) {
	sb, err := decimal.NewFromString(s.SmallBlind)
	if err != nil {
		return parser.Stake{}, fmt.Errorf("stake %s: invalid small blind %q", s.Label, s.SmallBlind)
	}
	bb, err := decimal.NewFromString(s.BigBlind)
	if err != nil {
		return parser.Stake{}, fmt.Errorf("stake %s: invalid big blind %q", s.Label, s.BigBlind)
	}
	if !sb.IsPositive() {
		return parser.Stake{}, fmt.Errorf("stake %s: small blind must be positive", s.Label)
	}
	if bb.LessThan(sb) {
		return parser.Stake{}, fmt.Errorf("stake %s: big blind must not be less than small blind", s.Label)
	}
	return parser.Stake{Label: s.Label, SmallBlind: sb, BigBlind: bb}, nil
}

// StakeTable returns the built-in stake table extended with configured stakes.
func (c *Config) StakeTable() *parser.StakeTable {
	extra := make([]parser.Stake, 0, len(c.Stakes))
	for _, s := range c.Stakes {
		if st, err := s.stake(); err == nil {
			extra = append(extra, st)
		}
	}
	return parser.DefaultStakes().With(extra...)
}

// LogLevel returns the configured log level, info when unset or invalid.
func (c *Config) LogLevel() zerolog.Level {
	if c.Log == nil {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || c.Log.Level == "" {
		return zerolog.InfoLevel
	}
	return level
}

// ParserOptions converts the configuration into parser options.
func (c *Config) ParserOptions() []parser.Option {
	opts := []parser.Option{parser.WithStakes(c.StakeTable())}
	if c.Parser != nil {
		if c.Parser.Workers > 0 {
			opts = append(opts, parser.WithWorkers(c.Parser.Workers))
		}
		if len(c.Parser.TimestampLayouts) > 0 {
			opts = append(opts, parser.WithTimestampLayouts(c.Parser.TimestampLayouts...))
		}
	}
	return opts
}
