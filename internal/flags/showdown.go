package flags

import (
	"strings"

	"github.com/lox/pokertracker/internal/hand"
	"github.com/shopspring/decimal"
)

// showdown combines two sources. The structured actions decide whenever
// the hand reached the river; only hands that ended earlier, or whose board
// is missing, fall back to the text's show/muck lines. Winnings always come
// from the text because collections are not modelled as actions.
func (v *view) showdown(name string, vis hand.VisibilityFlags) hand.ShowdownFlags {
	var f hand.ShowdownFlags

	if v.reached[hand.River] {
		f.WentToShowdown = vis.SawRiver && !v.folded(name, hand.River) && v.survivors >= 2
	} else {
		f.WentToShowdown = v.text.showdown && v.text.revealed(name)
	}

	collected := v.text.collected(name)
	f.WonHand = collected.IsPositive()
	f.WonAtShowdown = f.WentToShowdown && f.WonHand
	f.ProfitLoss = collected.Sub(v.h.Invested(name))
	return f
}

// riverSurvivors counts players who saw the river and did not fold on it.
func (v *view) riverSurvivors() int {
	n := 0
	for _, p := range v.h.Players {
		if saw(v.visibility(p.Name), hand.River) && !v.folded(p.Name, hand.River) {
			n++
		}
	}
	return n
}

// revealed reports a "shows" or "mucks" line for the player.
func (t textEvidence) revealed(name string) bool {
	for _, l := range t.lines {
		if strings.HasPrefix(l, name+": shows [") || strings.HasPrefix(l, name+": mucks hand") {
			return true
		}
	}
	return false
}

// collected sums the "collected"/"wins" lines for the player, one per pot.
// Summary lines start with "Seat N:" so they are not counted twice.
func (t textEvidence) collected(name string) decimal.Decimal {
	total := decimal.Zero
	for _, l := range t.lines {
		rest, ok := strings.CutPrefix(l, name+" collected ")
		if !ok {
			rest, ok = strings.CutPrefix(l, name+" wins ")
		}
		if !ok {
			continue
		}
		if amt, ok := hand.ParseAmount(rest); ok {
			total = total.Add(amt)
		}
	}
	return total
}
