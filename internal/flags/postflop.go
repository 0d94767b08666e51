package flags

import "github.com/lox/pokertracker/internal/hand"

// visibility chains street by street: a player sees a street when the hand
// got there and they did not fold on any earlier one.
func (v *view) visibility(name string) hand.VisibilityFlags {
	var f hand.VisibilityFlags
	if !v.acted(name, hand.Preflop) {
		return f
	}
	f.SawFlop = v.reached[hand.Flop] && !v.folded(name, hand.Preflop)
	f.SawTurn = f.SawFlop && v.reached[hand.Turn] && !v.folded(name, hand.Flop)
	f.SawRiver = f.SawTurn && v.reached[hand.River] && !v.folded(name, hand.Turn)
	return f
}

func saw(vis hand.VisibilityFlags, s hand.Street) bool {
	switch s {
	case hand.Preflop:
		return true
	case hand.Flop:
		return vis.SawFlop
	case hand.Turn:
		return vis.SawTurn
	case hand.River:
		return vis.SawRiver
	}
	return false
}

type streetCbet struct {
	opp  bool
	made bool
}

// cbet walks the postflop streets for the preflop aggressor. Each street
// after the flop only offers a cbet if the previous one was made.
func (v *view) cbet(name string, vis hand.VisibilityFlags) [4]streetCbet {
	var out [4]streetCbet
	for _, s := range hand.Postflop {
		if !saw(vis, s) {
			break
		}
		acts := v.streets[s]
		i := firstBy(acts, name, 0)
		if i < 0 {
			break
		}
		out[s] = streetCbet{opp: true, made: acts[i].IsBetOrRaise()}
		if !out[s].made {
			break
		}
	}
	return out
}

func (v *view) cbetFlags(name string) hand.CbetFlags {
	if v.aggressor == "" || name != v.aggressor {
		return hand.CbetFlags{}
	}
	c := v.aggressorCbet
	return hand.CbetFlags{
		CbetOpportunityFlop:  c[hand.Flop].opp,
		CbetMadeFlop:         c[hand.Flop].made,
		CbetOpportunityTurn:  c[hand.Turn].opp,
		CbetMadeTurn:         c[hand.Turn].made,
		CbetOpportunityRiver: c[hand.River].opp,
		CbetMadeRiver:        c[hand.River].made,
	}
}

type cbetResponse struct {
	faced, folded, called, raised bool
}

// facingCbet classifies each non-aggressor's answer to a continuation bet
// by their last action on the street after it. Exactly one response is
// set whenever faced is.
func (v *view) facingCbet(name string) hand.FacingCbetFlags {
	var r [4]cbetResponse
	if v.aggressor != "" && name != v.aggressor {
		for _, s := range hand.Postflop {
			if !v.aggressorCbet[s].made {
				continue
			}
			acts := v.streets[s]
			bet := firstBy(acts, v.aggressor, 0)
			i := lastBy(acts, name, bet+1, len(acts))
			if i < 0 || !acts[i].FacingBet {
				continue
			}
			r[s].faced = true
			switch acts[i].Kind {
			case hand.Fold:
				r[s].folded = true
			case hand.Bet, hand.Raise:
				r[s].raised = true
			default:
				r[s].called = true
			}
		}
	}
	return hand.FacingCbetFlags{
		FacedCbetFlop:     r[hand.Flop].faced,
		FoldedToCbetFlop:  r[hand.Flop].folded,
		CalledCbetFlop:    r[hand.Flop].called,
		RaisedCbetFlop:    r[hand.Flop].raised,
		FacedCbetTurn:     r[hand.Turn].faced,
		FoldedToCbetTurn:  r[hand.Turn].folded,
		CalledCbetTurn:    r[hand.Turn].called,
		RaisedCbetTurn:    r[hand.Turn].raised,
		FacedCbetRiver:    r[hand.River].faced,
		FoldedToCbetRiver: r[hand.River].folded,
		CalledCbetRiver:   r[hand.River].called,
		RaisedCbetRiver:   r[hand.River].raised,
	}
}

// checkRaise looks for a raise by the player later in the street's action
// order than their first check.
func (v *view) checkRaise(name string) hand.CheckRaiseFlags {
	var opp, made [4]bool
	for _, s := range hand.Postflop {
		acts := v.streets[s]
		checked := -1
		for i, a := range acts {
			if a.Player == name && a.Kind == hand.Check {
				checked = i
				break
			}
		}
		if checked < 0 {
			continue
		}
		opp[s] = true
		for _, a := range acts[checked+1:] {
			if a.Player == name && a.Kind == hand.Raise {
				made[s] = true
				break
			}
		}
	}
	return hand.CheckRaiseFlags{
		CheckRaiseOpportunityFlop:  opp[hand.Flop],
		CheckRaisedFlop:            made[hand.Flop],
		CheckRaiseOpportunityTurn:  opp[hand.Turn],
		CheckRaisedTurn:            made[hand.Turn],
		CheckRaiseOpportunityRiver: opp[hand.River],
		CheckRaisedRiver:           made[hand.River],
	}
}

// donk flags a non-aggressor who leads a street before the preflop
// aggressor, still in the hand, has acted on it.
func (v *view) donk(name string) hand.DonkFlags {
	var d [4]bool
	if v.aggressor != "" && name != v.aggressor {
		for _, s := range hand.Postflop {
			if !saw(v.aggressorVis, s) {
				continue
			}
			acts := v.streets[s]
			i := firstBy(acts, name, 0)
			if i < 0 || !acts[i].IsBetOrRaise() {
				continue
			}
			if j := firstBy(acts, v.aggressor, 0); j >= 0 && j < i {
				continue
			}
			d[s] = true
		}
	}
	return hand.DonkFlags{
		DonkBetFlop:  d[hand.Flop],
		DonkBetTurn:  d[hand.Turn],
		DonkBetRiver: d[hand.River],
	}
}

// float: called the flop cbet, then bet the turn after the aggressor
// checked it.
func (v *view) float(name string, vis hand.VisibilityFlags, facing hand.FacingCbetFlags) hand.FloatFlags {
	if !facing.CalledCbetFlop || !vis.SawTurn {
		return hand.FloatFlags{}
	}
	acts := v.streets[hand.Turn]
	j := firstBy(acts, v.aggressor, 0)
	if j < 0 || acts[j].Kind != hand.Check {
		return hand.FloatFlags{}
	}
	for _, a := range acts[j+1:] {
		if a.Player == name && a.IsBetOrRaise() {
			return hand.FloatFlags{Float: true}
		}
	}
	return hand.FloatFlags{}
}
