package main

import (
	"fmt"
	"os"

	"github.com/lox/pokertracker/cmd/pokertracker/shared"
	"github.com/lox/pokertracker/internal/statistics"
)

// ReportCmd aggregates per-player statistics across hand history files.
type ReportCmd struct {
	Files   []string `arg:"" name:"file" help:"PokerStars hand history files" type:"existingfile"`
	Player  string   `help:"Only report on this player, with a position breakdown"`
	Workers int      `help:"Hands parsed concurrently (0 = from config)"`
}

func (c *ReportCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	ctx, stop := shared.SetupSignalHandlerWithLogger(e.logger)
	defer stop()

	b, parseErr := e.parseFiles(ctx, e.parser(c.Workers), c.Files)
	report := statistics.Collect(b.hands)

	if c.Player == "" {
		fmt.Fprintln(os.Stdout, renderReport(report.Players()))
		return parseErr
	}

	ps, ok := report.Player(c.Player)
	if !ok {
		return fmt.Errorf("player %q not found in %d hands", c.Player, len(b.hands))
	}
	fmt.Fprintln(os.Stdout, renderReport([]*statistics.PlayerStats{ps}))
	fmt.Fprintln(os.Stdout, renderPlayerDetail(ps))
	return parseErr
}
