// Package flags derives per-player statistical flags from a parsed hand.
//
// Calculate is a pure function of the hand's players, actions and raw text:
// calling it again on the same hand, with or without re-parsing, yields
// identical records. Each rule group below reads a shared, precomputed view
// of the hand and returns its own slice of the record; the slices are only
// combined at the end. Missing preconditions leave flags false, nothing in
// here returns an error.
package flags

import (
	"strings"

	"github.com/lox/pokertracker/internal/hand"
)

// Calculate computes the summary flags for every seated player.
func Calculate(h *hand.Hand) map[string]hand.SummaryFlags {
	v := newView(h)
	out := make(map[string]hand.SummaryFlags, len(h.Players))
	for _, p := range h.Players {
		out[p.Name] = v.summarize(p)
	}
	return out
}

// ForPlayer computes the summary flags for one player.
func ForPlayer(h *hand.Hand, name string) (hand.SummaryFlags, bool) {
	p, ok := h.Player(name)
	if !ok {
		return hand.SummaryFlags{}, false
	}
	return newView(h).summarize(p), true
}

func (v *view) summarize(p hand.Player) hand.SummaryFlags {
	vis := v.visibility(p.Name)
	facing := v.facingCbet(p.Name)
	return hand.SummaryFlags{
		PreflopFlags:    v.preflop(p.Name),
		VisibilityFlags: vis,
		CbetFlags:       v.cbetFlags(p.Name),
		FacingCbetFlags: facing,
		CheckRaiseFlags: v.checkRaise(p.Name),
		DonkFlags:       v.donk(p.Name),
		FloatFlags:      v.float(p.Name, vis, facing),
		StealFlags:      v.steal(p),
		ShowdownFlags:   v.showdown(p.Name, vis),
	}
}

// view is the read-only, precomputed shape of a hand shared by every rule.
type view struct {
	h       *hand.Hand
	streets [4][]hand.Action
	reached [4]bool

	// raises indexes the voluntary preflop bets and raises in order; the
	// first is the open (2-bet), the second the 3-bet and so on.
	raises []int
	// aggressor is the author of the last preflop raise, if any.
	aggressor     string
	aggressorVis  hand.VisibilityFlags
	aggressorCbet [4]streetCbet

	positions map[string]hand.Position
	survivors int
	text      textEvidence
}

func newView(h *hand.Hand) *view {
	v := &view{
		h:         h,
		positions: make(map[string]hand.Position, len(h.Players)),
	}
	for _, a := range h.Actions {
		v.streets[a.Street] = append(v.streets[a.Street], a)
	}
	for _, s := range hand.Streets {
		v.reached[s] = h.ReachedStreet(s)
	}
	for _, p := range h.Players {
		v.positions[p.Name] = p.Position
	}
	for i, a := range v.streets[hand.Preflop] {
		if a.IsAggressive {
			v.raises = append(v.raises, i)
			v.aggressor = a.Player
		}
	}
	if v.aggressor != "" {
		v.aggressorVis = v.visibility(v.aggressor)
		v.aggressorCbet = v.cbet(v.aggressor, v.aggressorVis)
	}
	v.survivors = v.riverSurvivors()
	v.text = scanText(h.Raw)
	return v
}

// firstBy returns the index of the first action by name at or after from.
func firstBy(acts []hand.Action, name string, from int) int {
	for i := max(from, 0); i < len(acts); i++ {
		if acts[i].Player == name {
			return i
		}
	}
	return -1
}

// lastBy returns the index of the last action by name in acts[from:to].
func lastBy(acts []hand.Action, name string, from, to int) int {
	to = min(to, len(acts))
	for i := to - 1; i >= max(from, 0); i-- {
		if acts[i].Player == name {
			return i
		}
	}
	return -1
}

func (v *view) folded(name string, street hand.Street) bool {
	for _, a := range v.streets[street] {
		if a.Player == name && a.Kind == hand.Fold {
			return true
		}
	}
	return false
}

func (v *view) acted(name string, street hand.Street) bool {
	return firstBy(v.streets[street], name, 0) >= 0
}

// textEvidence is what the raw text says about the end of the hand, for
// the parts that are not modelled as actions.
type textEvidence struct {
	lines    []string
	showdown bool
}

func scanText(raw string) textEvidence {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	ev := textEvidence{lines: lines}
	for _, l := range lines {
		if strings.HasPrefix(l, "*** SHOW DOWN ***") {
			ev.showdown = true
			break
		}
	}
	return ev
}
