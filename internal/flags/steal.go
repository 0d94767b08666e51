package flags

import "github.com/lox/pokertracker/internal/hand"

// steal covers late-position open raises and the blinds' answers to them.
func (v *view) steal(p hand.Player) hand.StealFlags {
	var f hand.StealFlags
	acts := v.streets[hand.Preflop]

	firstVoluntary := -1
	for i, a := range acts {
		if a.IsVoluntary() {
			firstVoluntary = i
			break
		}
	}

	if p.Position.IsLate() {
		// An opportunity is being first in: every voluntary action so far
		// was a fold.
		mine := -1
		for i, a := range acts {
			if a.Player == p.Name && !a.IsBlindPost() {
				mine = i
				break
			}
		}
		f.StealOpportunity = mine >= 0 && (firstVoluntary < 0 || mine <= firstVoluntary)
	}

	if firstVoluntary < 0 {
		return f
	}
	open := acts[firstVoluntary]
	if open.Kind != hand.Raise || !v.positions[open.Player].IsLate() {
		return f
	}
	if open.Player == p.Name {
		f.StealAttempt = true
		return f
	}

	if !p.Position.IsBlind() {
		return f
	}
	i := firstBy(acts, p.Name, firstVoluntary+1)
	if i < 0 {
		return f
	}
	f.FacedSteal = true
	switch acts[i].Kind {
	case hand.Fold:
		f.FoldedToSteal = true
	case hand.Call:
		f.CalledSteal = true
	case hand.Raise:
		f.ThreeBetVsSteal = true
	}
	return f
}
