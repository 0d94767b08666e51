package hand

import "github.com/shopspring/decimal"

// Player is a seated player as listed at the start of a hand.
type Player struct {
	Name       string          `json:"name"`
	Seat       int             `json:"seat"`
	Position   Position        `json:"position,omitempty"`
	Stack      decimal.Decimal `json:"stack"`
	SittingOut bool            `json:"sitting_out,omitempty"`
}

// IsActive returns true if the player was dealt into the hand
func (p Player) IsActive() bool {
	return !p.SittingOut
}
