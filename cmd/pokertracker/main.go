package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/lox/pokertracker/cmd/pokertracker/shared"
	"github.com/lox/pokertracker/internal/config"
	"github.com/lox/pokertracker/internal/hand"
	"github.com/lox/pokertracker/internal/parser"
	"github.com/rs/zerolog"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config   string           `help:"Path to HCL config file" default:"pokertracker.hcl" type:"path"`
	Debug    bool             `help:"Enable debug logging"`
	JSONLogs bool             `name:"json-logs" help:"Emit structured JSON logs"`
	Version  kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Parse  ParseCmd  `cmd:"" help:"Parse hand histories and print a summary or JSON lines"`
	Report ReportCmd `cmd:"" help:"Aggregate per-player statistics"`
	Export ExportCmd `cmd:"" help:"Export hands as PHH sections"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokertracker"),
		kong.Description("PokerStars hand history parser and statistics tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// env is what a command needs after the globals have been applied.
type env struct {
	logger zerolog.Logger
	config *config.Config
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}

	level := shared.ResolveLevel(g.Debug, cfg.LogLevel())
	var logger zerolog.Logger
	if g.JSONLogs {
		logger = shared.SetupStructuredLogger(level)
	} else {
		logger = shared.SetupLogger(level)
	}
	logger = logger.With().Str("run_id", uuid.NewString()[:8]).Logger()

	return &env{logger: logger, config: cfg}, nil
}

func (e *env) parser(workers int) *parser.Parser {
	opts := append(e.config.ParserOptions(), parser.WithLogger(e.logger))
	if workers > 0 {
		opts = append(opts, parser.WithWorkers(workers))
	}
	return parser.New(opts...)
}

// batch is the combined outcome of parsing several files.
type batch struct {
	hands  []*hand.Hand
	failed int
}

// parseFiles parses each file in order. Per-hand failures are logged and
// counted; an unreadable file or a cancelled context stops the batch.
func (e *env) parseFiles(ctx context.Context, p *parser.Parser, files []string) (*batch, error) {
	out := &batch{}
	for _, file := range files {
		data, err := os.ReadFile(filepath.Clean(file))
		if err != nil {
			return out, err
		}

		result, err := p.Parse(ctx, string(data))
		out.hands = append(out.hands, result.Hands...)
		out.failed += result.Failed

		e.logger.Info().
			Str("file", file).
			Int("hands", result.Total).
			Int("parsed", result.Successful).
			Int("failed", result.Failed).
			Msg("Parsed file")
		for _, he := range result.Errors {
			e.logger.Debug().Str("file", file).Int("index", he.Index).Str("hand_id", he.HandID).Err(he.Err).Msg("Hand skipped")
		}

		if err != nil {
			return out, fmt.Errorf("%s: %d hands not parsed: %w", file, result.Skipped, err)
		}
	}
	return out, nil
}
