package hand

import "github.com/shopspring/decimal"

// Action is a single recorded action. Amount is the money the player added
// with this action; for raises RaiseTo holds the street total.
type Action struct {
	Player       string          `json:"player"`
	Street       Street          `json:"street"`
	Kind         ActionKind      `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	RaiseTo      decimal.Decimal `json:"raise_to"`
	PotBefore    decimal.Decimal `json:"pot_before"`
	PotAfter     decimal.Decimal `json:"pot_after"`
	IsAggressive bool            `json:"is_aggressive"`
	FacingBet    bool            `json:"facing_bet"`
	StackBefore  decimal.Decimal `json:"stack_before"`
	IsAllIn      bool            `json:"is_all_in"`
}

// IsBlindPost reports whether the action is a forced post.
func (a Action) IsBlindPost() bool {
	switch a.Kind {
	case PostSmallBlind, PostBigBlind, PostAnte:
		return true
	}
	return false
}

// IsVoluntary reports whether the player chose to put money in.
func (a Action) IsVoluntary() bool {
	switch a.Kind {
	case Call, Bet, Raise:
		return true
	}
	return false
}

// IsBetOrRaise is true for bets and raises.
func (a Action) IsBetOrRaise() bool {
	return a.Kind == Bet || a.Kind == Raise
}

// Refund is an uncalled bet returned to a player.
type Refund struct {
	Player string          `json:"player"`
	Street Street          `json:"street"`
	Amount decimal.Decimal `json:"amount"`
}
