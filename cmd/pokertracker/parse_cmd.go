package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lox/pokertracker/cmd/pokertracker/shared"
)

// ParseCmd parses hand histories and prints what it found.
type ParseCmd struct {
	Files   []string `arg:"" name:"file" help:"PokerStars hand history files" type:"existingfile"`
	JSON    bool     `help:"Write one JSON object per hand to stdout"`
	Workers int      `help:"Hands parsed concurrently (0 = from config)"`
}

func (c *ParseCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}
	ctx, stop := shared.SetupSignalHandlerWithLogger(e.logger)
	defer stop()

	b, parseErr := e.parseFiles(ctx, e.parser(c.Workers), c.Files)

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		for _, h := range b.hands {
			if err := enc.Encode(h); err != nil {
				return fmt.Errorf("writing hand %s: %w", h.ID, err)
			}
		}
	} else {
		fmt.Fprintln(os.Stdout, renderHands(b.hands))
		fmt.Fprintln(os.Stdout, renderTotals(len(b.hands), b.failed))
	}
	return parseErr
}
