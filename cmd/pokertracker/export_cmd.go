package main

import (
	"errors"
	"io"

	"github.com/lox/pokertracker/cmd/pokertracker/shared"
	"github.com/lox/pokertracker/internal/fileutil"
	"github.com/lox/pokertracker/internal/phh"
)

// ExportCmd writes parsed hands as a PHH session file.
type ExportCmd struct {
	Files   []string `arg:"" name:"file" help:"PokerStars hand history files" type:"existingfile"`
	Output  string   `short:"o" required:"" help:"Output .phhs file" type:"path"`
	Workers int      `help:"Hands parsed concurrently (0 = from config)"`
}

func (c *ExportCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	ctx, stop := shared.SetupSignalHandlerWithLogger(e.logger)
	defer stop()

	b, err := e.parseFiles(ctx, e.parser(c.Workers), c.Files)
	if err != nil {
		return err
	}
	if len(b.hands) == 0 {
		return errors.New("no hands parsed, nothing to export")
	}

	histories := phh.FromHands(b.hands)
	err = fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
		return phh.WriteSections(w, 1, histories)
	})
	if err != nil {
		return err
	}

	e.logger.Info().
		Str("output", c.Output).
		Int("hands", len(histories)).
		Int("failed", b.failed).
		Msg("Exported hands")
	return nil
}
