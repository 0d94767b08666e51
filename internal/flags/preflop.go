package flags

import "github.com/lox/pokertracker/internal/hand"

// preflop derives voluntary entry and the 3/4/5-bet ladder.
func (v *view) preflop(name string) hand.PreflopFlags {
	var f hand.PreflopFlags
	acts := v.streets[hand.Preflop]

	postedBlind := false
	firstVoluntary := -1
	for i, a := range acts {
		if a.Player != name {
			continue
		}
		if a.Kind == hand.PostSmallBlind || a.Kind == hand.PostBigBlind {
			postedBlind = true
		}
		if a.IsVoluntary() {
			f.VPIP = true
			if firstVoluntary < 0 {
				firstVoluntary = i
			}
		}
		if a.IsAggressive {
			f.PFR = true
		}
		if a.Kind == hand.Call && !a.FacingBet {
			f.Limp = true
		}
		if a.IsAllIn {
			f.AllInPreflop = true
		}
	}
	if firstVoluntary >= 0 {
		a := acts[firstVoluntary]
		f.ColdCall = a.Kind == hand.Call && a.FacingBet && !postedBlind
	}
	f.PreflopAggressor = v.aggressor != "" && name == v.aggressor

	open := v.rung(name, 0)
	f.ThreeBetOpportunity = open.faced

	three := v.rung(name, 1)
	f.ThreeBetMade = three.made
	f.FacedThreeBet, f.FoldedToThreeBet, f.CalledThreeBet = three.faced, three.folded, three.called

	four := v.rung(name, 2)
	f.FourBetMade = four.made
	f.FacedFourBet, f.FoldedToFourBet, f.CalledFourBet = four.faced, four.folded, four.called

	five := v.rung(name, 3)
	f.FiveBetMade = five.made
	f.FacedFiveBet, f.FoldedToFiveBet, f.CalledFiveBet = five.faced, five.folded, five.called

	f.Squeeze = f.ThreeBetMade && v.coldCallersOfOpen(name) > 0
	return f
}

// rung is one step of the preflop raise ladder seen from one player.
type rung struct {
	made   bool
	faced  bool
	folded bool
	called bool
}

// rung reports whether name made raise k, or else responded to it. The
// response window runs from just after raise k up to and including raise
// k+1, so a player who re-raises still counts as having faced raise k.
func (v *view) rung(name string, k int) rung {
	if k >= len(v.raises) {
		return rung{}
	}
	acts := v.streets[hand.Preflop]
	at := v.raises[k]
	if acts[at].Player == name {
		return rung{made: true}
	}

	end := len(acts)
	if k+1 < len(v.raises) {
		end = v.raises[k+1] + 1
	}
	i := lastBy(acts, name, at+1, end)
	if i < 0 {
		return rung{}
	}
	r := rung{faced: true}
	switch acts[i].Kind {
	case hand.Fold:
		r.folded = true
	case hand.Call:
		r.called = true
	}
	return r
}

// coldCallersOfOpen counts distinct players, other than the opener and
// squeezer, who called between the open and the 3-bet.
func (v *view) coldCallersOfOpen(squeezer string) int {
	if len(v.raises) < 2 {
		return 0
	}
	acts := v.streets[hand.Preflop]
	opener := acts[v.raises[0]].Player
	callers := make(map[string]bool)
	for _, a := range acts[v.raises[0]+1 : v.raises[1]] {
		if a.Kind == hand.Call && a.Player != opener && a.Player != squeezer {
			callers[a.Player] = true
		}
	}
	return len(callers)
}
