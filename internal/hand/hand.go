package hand

import (
	"time"

	"github.com/shopspring/decimal"
)

// Hand is a fully parsed hand. It is assembled by the parser in stages
// and treated as read-only once Flags has been populated.
type Hand struct {
	ID                string                  `json:"id"`
	Timestamp         time.Time               `json:"timestamp"`
	TimestampFallback bool                    `json:"timestamp_fallback,omitempty"`
	Table             string                  `json:"table"`
	Stake             string                  `json:"stake"`
	SmallBlind        decimal.Decimal         `json:"small_blind"`
	BigBlind          decimal.Decimal         `json:"big_blind"`
	Currency          string                  `json:"currency,omitempty"`
	MaxSeats          int                     `json:"max_seats"`
	ButtonSeat        int                     `json:"button_seat"`
	Players           []Player                `json:"players"`
	Actions           []Action                `json:"actions"`
	Refunds           []Refund                `json:"refunds,omitempty"`
	Board             map[Street][]string     `json:"board,omitempty"`
	Pot               decimal.Decimal         `json:"pot"`
	Rake              decimal.Decimal         `json:"rake"`
	Raw               string                  `json:"-"`
	Flags             map[string]SummaryFlags `json:"flags,omitempty"`
}

// Player looks up a seated player by name.
func (h *Hand) Player(name string) (Player, bool) {
	for _, p := range h.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// ActivePlayers returns the players dealt into the hand, in seat order.
func (h *Hand) ActivePlayers() []Player {
	active := make([]Player, 0, len(h.Players))
	for _, p := range h.Players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// PlayerAt returns the active player holding the given position.
func (h *Hand) PlayerAt(pos Position) (Player, bool) {
	for _, p := range h.Players {
		if p.Position == pos && pos != NoPosition {
			return p, true
		}
	}
	return Player{}, false
}

// ActionsOn returns the actions taken on a street in the order they happened.
func (h *Hand) ActionsOn(street Street) []Action {
	var out []Action
	for _, a := range h.Actions {
		if a.Street == street {
			out = append(out, a)
		}
	}
	return out
}

// ActionsBy returns the actions a player took on a street.
func (h *Hand) ActionsBy(name string, street Street) []Action {
	var out []Action
	for _, a := range h.Actions {
		if a.Street == street && a.Player == name {
			out = append(out, a)
		}
	}
	return out
}

// Contributed returns the gross amount a player put in across all streets.
func (h *Hand) Contributed(name string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range h.Actions {
		if a.Player == name {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// Refunded returns the uncalled bets returned to a player.
func (h *Hand) Refunded(name string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range h.Refunds {
		if r.Player == name {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// Invested returns what a player actually left in the pot: contributions
// net of any uncalled bet returned.
func (h *Hand) Invested(name string) decimal.Decimal {
	return h.Contributed(name).Sub(h.Refunded(name))
}

// NetPot sums every player's net contribution.
func (h *Hand) NetPot() decimal.Decimal {
	total := decimal.Zero
	for _, a := range h.Actions {
		total = total.Add(a.Amount)
	}
	for _, r := range h.Refunds {
		total = total.Sub(r.Amount)
	}
	return total
}

// ReachedStreet reports whether the hand was dealt as far as the street.
func (h *Hand) ReachedStreet(street Street) bool {
	if street == Preflop {
		return true
	}
	if len(h.Board[street]) > 0 {
		return true
	}
	for _, a := range h.Actions {
		if a.Street >= street {
			return true
		}
	}
	return false
}

// BoardCards returns the full board in dealing order.
func (h *Hand) BoardCards() []string {
	var cards []string
	for _, s := range Postflop {
		cards = append(cards, h.Board[s]...)
	}
	return cards
}
