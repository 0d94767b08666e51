package hand

// Street is a betting round within a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// Streets lists every betting round in dealing order.
var Streets = [...]Street{Preflop, Flop, Turn, River}

// Postflop lists the betting rounds after the flop is dealt.
var Postflop = [...]Street{Flop, Turn, River}

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Next returns the street dealt after s, and false for the river.
func (s Street) Next() (Street, bool) {
	if s >= River {
		return s, false
	}
	return s + 1, true
}

// Previous returns the street dealt before s, and false for preflop.
func (s Street) Previous() (Street, bool) {
	if s <= Preflop {
		return s, false
	}
	return s - 1, true
}

// ActionKind is the type of a recorded action.
type ActionKind int

const (
	PostSmallBlind ActionKind = iota
	PostBigBlind
	PostAnte
	Fold
	Check
	Call
	Bet
	Raise
)

func (k ActionKind) String() string {
	switch k {
	case PostSmallBlind:
		return "post_small_blind"
	case PostBigBlind:
		return "post_big_blind"
	case PostAnte:
		return "post_ante"
	case Fold:
		return "fold"
	case Check:
		return "check"
	case Call:
		return "call"
	case Bet:
		return "bet"
	case Raise:
		return "raise"
	}
	return "unknown"
}

// MarshalText renders the kind using its string name.
func (k ActionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalText renders the street using its string name.
func (s Street) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Position is a seat label relative to the button.
type Position string

const (
	NoPosition Position = ""
	BTN        Position = "BTN"
	SB         Position = "SB"
	BB         Position = "BB"
	UTG        Position = "UTG"
	UTG1       Position = "UTG+1"
	UTG2       Position = "UTG+2"
	MP         Position = "MP"
	HJ         Position = "HJ"
	CO         Position = "CO"
)

// IsLate reports whether the position can attempt a blind steal.
func (p Position) IsLate() bool {
	return p == CO || p == BTN || p == SB
}

// IsBlind reports whether the position posts a blind.
func (p Position) IsBlind() bool {
	return p == SB || p == BB
}
