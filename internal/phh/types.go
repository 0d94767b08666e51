package phh

import "github.com/shopspring/decimal"

// Amount is an exact chip amount written as a bare TOML number.
type Amount decimal.Decimal

// MarshalTOML writes the amount without quotes, e.g. 0.25 or 1250.5.
func (a Amount) MarshalTOML() ([]byte, error) {
	return []byte(decimal.Decimal(a).String()), nil
}

func (a Amount) String() string {
	return decimal.Decimal(a).String()
}

// HandHistory represents a single poker hand encoded in PHH format.
// Fields starting with an underscore are PHH user-defined fields.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Venue             string   `toml:"venue,omitempty"`
	Currency          string   `toml:"currency,omitempty"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []Amount `toml:"antes"`
	BlindsOrStraddles []Amount `toml:"blinds_or_straddles"`
	MinBet            Amount   `toml:"min_bet"`
	StartingStacks    []Amount `toml:"starting_stacks"`
	FinishingStacks   []Amount `toml:"finishing_stacks,omitempty"`
	Winnings          []Amount `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Time              string   `toml:"time,omitempty"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`

	Stake      string `toml:"_stake,omitempty"`
	Pot        Amount `toml:"_pot"`
	Rake       Amount `toml:"_rake"`
	ButtonSeat int    `toml:"_button_seat,omitempty"`
}
