// Package parser turns PokerStars cash-game hand histories into structured
// hands with per-player statistical flags.
//
// A batch is split into per-hand blocks which are parsed independently,
// optionally on a worker pool. Each block runs through the same stages:
// metadata, seats and positions, street sections, actions, summary and
// finally the flag calculator. A block that fails is recorded in the
// Result and never affects its neighbours.
//
//	p := parser.New(parser.WithLogger(logger), parser.WithWorkers(8))
//	result, err := p.Parse(ctx, text)
package parser

import (
	"context"
	"fmt"
	"runtime"

	"github.com/coder/quartz"
	"github.com/lox/pokertracker/internal/flags"
	"github.com/lox/pokertracker/internal/hand"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Parser parses hand histories. It holds only immutable configuration and
// is safe for concurrent use.
type Parser struct {
	logger    zerolog.Logger
	clock     quartz.Clock
	workers   int
	stakes    *StakeTable
	positions *PositionTable
	layouts   []string
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger.With().Str("component", "parser").Logger()
	}
}

// WithClock sets the clock used when a hand timestamp cannot be read.
func WithClock(clock quartz.Clock) Option {
	return func(p *Parser) {
		p.clock = clock
	}
}

// WithWorkers bounds how many hands are parsed concurrently.
func WithWorkers(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithStakes replaces the stake label table.
func WithStakes(stakes *StakeTable) Option {
	return func(p *Parser) {
		if stakes != nil {
			p.stakes = stakes
		}
	}
}

// WithTimestampLayouts replaces the header timestamp layouts, tried in order.
func WithTimestampLayouts(layouts ...string) Option {
	return func(p *Parser) {
		if len(layouts) > 0 {
			p.layouts = append([]string(nil), layouts...)
		}
	}
}

// New creates a parser with the given options.
func New(opts ...Option) *Parser {
	p := &Parser{
		logger:    zerolog.Nop(),
		clock:     quartz.NewReal(),
		workers:   runtime.GOMAXPROCS(0),
		stakes:    DefaultStakes(),
		positions: DefaultPositions(),
		layouts:   DefaultTimestampLayouts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result collects the outcome of parsing a batch.
type Result struct {
	Hands  []*hand.Hand
	Errors []HandError

	Total      int
	Successful int
	Failed     int
	// Skipped counts blocks never started because the context was done.
	Skipped int
}

// Messages returns the error messages in batch order.
func (r *Result) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

type blockOutcome struct {
	hand    *hand.Hand
	err     error
	started bool
}

// Parse splits raw into hands and parses each one. Hands are parsed on up
// to the configured number of workers; the result keeps batch order
// regardless of completion order. If ctx is cancelled no new hands are
// started, hands already in progress finish, and ctx.Err() is returned
// together with the partial result.
func (p *Parser) Parse(ctx context.Context, raw string) (*Result, error) {
	blocks := Split(raw)
	outcomes := make([]blockOutcome, len(blocks))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, block := range blocks {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			h, err := p.ParseHand(block)
			outcomes[i] = blockOutcome{hand: h, err: err, started: true}
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{Total: len(blocks)}
	for i, out := range outcomes {
		switch {
		case !out.started:
			result.Skipped++
		case out.err != nil:
			he := HandError{Index: i + 1, Err: out.err}
			if out.hand != nil {
				he.HandID = out.hand.ID
			}
			result.Errors = append(result.Errors, he)
			result.Failed++
			p.logger.Warn().Int("index", i+1).Err(out.err).Msg("Failed to parse hand")
		default:
			result.Hands = append(result.Hands, out.hand)
			result.Successful++
		}
	}

	p.logger.Debug().
		Int("total", result.Total).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Int("skipped", result.Skipped).
		Msg("Parsed batch")

	if result.Skipped > 0 {
		return result, ctx.Err()
	}
	return result, nil
}

// ParseHand parses a single hand block and computes its flags. On failure
// the returned hand, when non-nil, carries whatever metadata was read.
func (p *Parser) ParseHand(block string) (h *hand.Hand, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()

	lines := splitLines(block)
	md, err := p.extractMetadata(lines)
	if err != nil {
		if md.id != "" {
			return &hand.Hand{ID: md.id}, err
		}
		return nil, err
	}

	h = &hand.Hand{
		ID:                md.id,
		Timestamp:         md.timestamp,
		TimestampFallback: md.timestampFallback,
		Table:             md.table,
		Stake:             p.stakes.Label(md.smallBlind, md.bigBlind),
		SmallBlind:        md.smallBlind,
		BigBlind:          md.bigBlind,
		Currency:          md.currency,
		MaxSeats:          md.maxSeats,
		ButtonSeat:        md.buttonSeat,
		Raw:               block,
	}

	secs := sectionize(lines)
	h.Players, err = p.parseSeats(secs.header, md.buttonSeat)
	if err != nil {
		return h, fmt.Errorf("hand #%s: %w", md.id, err)
	}
	if h.MaxSeats == 0 {
		h.MaxSeats = len(h.Players)
	}

	ap := newActionParser(h.Players, md.smallBlind, p.logger.With().Str("hand_id", md.id).Logger())
	ap.parse(secs)
	h.Actions = ap.actions
	h.Refunds = ap.refunds

	sum := p.extractSummary(secs.summary, md.id)
	h.Board = mergeBoard(secs.board, sum.board)
	h.Pot = sum.pot
	h.Rake = sum.rake

	h.Flags = flags.Calculate(h)
	return h, nil
}
