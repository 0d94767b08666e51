package statistics

import (
	"sort"

	"github.com/lox/pokertracker/internal/flags"
	"github.com/lox/pokertracker/internal/hand"
	"github.com/shopspring/decimal"
)

// Counter is a made/opportunity pair for a frequency stat.
type Counter struct {
	Made          int
	Opportunities int
}

func (c *Counter) add(opportunity, made bool) {
	if !opportunity {
		return
	}
	c.Opportunities++
	if made {
		c.Made++
	}
}

// Percent returns Made as a percentage of Opportunities, 0 when there were none.
func (c Counter) Percent() float64 {
	if c.Opportunities == 0 {
		return 0
	}
	return float64(c.Made) * 100 / float64(c.Opportunities)
}

// PlayerStats aggregates one player's flags across many hands.
type PlayerStats struct {
	Name    string
	NetWon  decimal.Decimal
	Results Statistics

	VPIP        Counter
	PFR         Counter
	ThreeBet    Counter
	FoldToThree Counter
	CbetFlop    Counter
	FoldToCbet  Counter
	WentToSD    Counter // over hands that saw the flop
	WonAtSD     Counter // over hands that went to showdown
	Steal       Counter
	FoldToSteal Counter
}

// Hands is the number of hands the player was dealt into.
func (p *PlayerStats) Hands() int {
	return p.Results.Hands
}

// Add folds one hand's flags into the aggregate.
func (p *PlayerStats) Add(h *hand.Hand, pl hand.Player, f hand.SummaryFlags) {
	p.NetWon = p.NetWon.Add(f.ProfitLoss)

	p.VPIP.add(true, f.VPIP)
	p.PFR.add(true, f.PFR)
	p.ThreeBet.add(f.ThreeBetOpportunity, f.ThreeBetMade)
	p.FoldToThree.add(f.FacedThreeBet, f.FoldedToThreeBet)
	p.CbetFlop.add(f.CbetOpportunityFlop, f.CbetMadeFlop)
	p.FoldToCbet.add(f.FacedCbetFlop, f.FoldedToCbetFlop)
	p.WentToSD.add(f.SawFlop, f.WentToShowdown)
	p.WonAtSD.add(f.WentToShowdown, f.WonAtShowdown)
	p.Steal.add(f.StealOpportunity, f.StealAttempt)
	p.FoldToSteal.add(f.FacedSteal, f.FoldedToSteal)

	p.Results.Add(HandResult{
		NetBB:          inBigBlinds(f.ProfitLoss, h.BigBlind),
		Position:       pl.Position,
		WentToShowdown: f.WentToShowdown,
		PotBB:          inBigBlinds(h.Pot, h.BigBlind),
		StreetReached:  streetReached(f),
	})
}

func inBigBlinds(amount, bb decimal.Decimal) float64 {
	if bb.IsZero() {
		return 0
	}
	v, _ := amount.Div(bb).Float64()
	return v
}

func streetReached(f hand.SummaryFlags) hand.Street {
	switch {
	case f.SawRiver:
		return hand.River
	case f.SawTurn:
		return hand.Turn
	case f.SawFlop:
		return hand.Flop
	}
	return hand.Preflop
}

// Report holds per-player aggregates keyed by player name.
type Report struct {
	players map[string]*PlayerStats
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{players: make(map[string]*PlayerStats)}
}

// Collect aggregates every active player of every hand.
func Collect(hands []*hand.Hand) *Report {
	r := NewReport()
	for _, h := range hands {
		r.AddHand(h)
	}
	return r
}

// AddHand folds a hand into the report. Hands without precomputed flags are
// calculated on the fly; sitting-out players are not counted.
func (r *Report) AddHand(h *hand.Hand) {
	if h == nil {
		return
	}
	computed := h.Flags
	if computed == nil {
		computed = flags.Calculate(h)
	}
	for _, pl := range h.ActivePlayers() {
		f, ok := computed[pl.Name]
		if !ok {
			continue
		}
		ps, ok := r.players[pl.Name]
		if !ok {
			ps = &PlayerStats{Name: pl.Name}
			r.players[pl.Name] = ps
		}
		ps.Add(h, pl, f)
	}
}

// Player returns the aggregate for one player.
func (r *Report) Player(name string) (*PlayerStats, bool) {
	ps, ok := r.players[name]
	return ps, ok
}

// Players returns all aggregates, most hands first, then by name.
func (r *Report) Players() []*PlayerStats {
	out := make([]*PlayerStats, 0, len(r.players))
	for _, ps := range r.players {
		out = append(out, ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hands() != out[j].Hands() {
			return out[i].Hands() > out[j].Hands()
		}
		return out[i].Name < out[j].Name
	})
	return out
}
