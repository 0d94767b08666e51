package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lox/pokertracker/internal/parser"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokertracker.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
parser {
  workers           = 8
  timestamp_layouts = ["02.01.2006 15:04"]
}

log {
  level = "debug"
}

stake "MICRO40" {
  small_blind = "0.20"
  big_blind   = "0.40"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Parser.Workers)
	assert.Equal(t, []string{"02.01.2006 15:04"}, cfg.Parser.TimestampLayouts)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel())
	require.Len(t, cfg.Stakes, 1)
	assert.Equal(t, "MICRO40", cfg.Stakes[0].Label)

	table := cfg.StakeTable()
	assert.Equal(t, "MICRO40", table.Label(decimal.RequireFromString("0.2"), decimal.RequireFromString("0.4")))
	assert.Equal(t, "NL50", table.Label(decimal.RequireFromString("0.25"), decimal.RequireFromString("0.5")))
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, `log {}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultWorkers, cfg.Parser.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Stakes)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"syntax", `parser {`, "failed to parse HCL file"},
		{"unknown attribute", `parser { threads = 2 }`, "failed to decode HCL"},
		{"negative workers", `parser { workers = -1 }`, "workers must be positive"},
		{"bad level", `log { level = "loud" }`, "invalid level"},
		{"bad blind", `stake "X" {
  small_blind = "abc"
  big_blind   = "1"
}`, "invalid small blind"},
		{"inverted blinds", `stake "X" {
  small_blind = "2"
  big_blind   = "1"
}`, "must not be less than"},
		{"duplicate stake", `stake "X" {
  small_blind = "1"
  big_blind   = "2"
}
stake "X" {
  small_blind = "2"
  big_blind   = "4"
}`, "defined more than once"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParserOptions(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
parser {
  timestamp_layouts = ["02.01.2006 15:04"]
}

stake "MICRO40" {
  small_blind = "0.20"
  big_blind   = "0.40"
}
`))
	require.NoError(t, err)

	block := strings.Join([]string{
		"PokerStars Hand #77: Hold'em No Limit ($0.20/$0.40 USD) - 15.01.2024 20:30",
		"Table 'Vega' 6-max Seat #1 is the button",
		"Seat 1: Alice ($40 in chips)",
		"Seat 2: Bob ($40 in chips)",
		"Seat 3: Carol ($40 in chips)",
		"Bob: posts small blind $0.20",
		"Carol: posts big blind $0.40",
		"*** HOLE CARDS ***",
		"Alice: folds",
		"Bob: folds",
		"Uncalled bet ($0.20) returned to Carol",
		"Carol collected $0.40 from pot",
		"*** SUMMARY ***",
		"Total pot $0.40 | Rake $0",
	}, "\n")

	h, err := parser.New(cfg.ParserOptions()...).ParseHand(block)
	require.NoError(t, err)
	assert.Equal(t, "MICRO40", h.Stake)
	assert.False(t, h.TimestampFallback)
	assert.Equal(t, 2024, h.Timestamp.Year())
}
