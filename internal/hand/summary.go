package hand

import "github.com/shopspring/decimal"

// SummaryFlags is the per-player statistical record derived from a hand.
// Each embedded group is produced by one independent rule; the groups never
// share fields so they can be assembled in a single literal.
type SummaryFlags struct {
	PreflopFlags
	VisibilityFlags
	CbetFlags
	FacingCbetFlags
	CheckRaiseFlags
	DonkFlags
	FloatFlags
	StealFlags
	ShowdownFlags
}

// PreflopFlags covers voluntary entry and the raise ladder.
type PreflopFlags struct {
	VPIP                bool `json:"vpip"`
	PFR                 bool `json:"pfr"`
	Limp                bool `json:"limp"`
	ColdCall            bool `json:"cold_call"`
	Squeeze             bool `json:"squeeze"`
	PreflopAggressor    bool `json:"preflop_aggressor"`
	AllInPreflop        bool `json:"all_in_preflop"`
	ThreeBetOpportunity bool `json:"three_bet_opportunity"`
	ThreeBetMade        bool `json:"three_bet_made"`
	FacedThreeBet       bool `json:"faced_three_bet"`
	FoldedToThreeBet    bool `json:"folded_to_three_bet"`
	CalledThreeBet      bool `json:"called_three_bet"`
	FourBetMade         bool `json:"four_bet_made"`
	FacedFourBet        bool `json:"faced_four_bet"`
	FoldedToFourBet     bool `json:"folded_to_four_bet"`
	CalledFourBet       bool `json:"called_four_bet"`
	FiveBetMade         bool `json:"five_bet_made"`
	FacedFiveBet        bool `json:"faced_five_bet"`
	FoldedToFiveBet     bool `json:"folded_to_five_bet"`
	CalledFiveBet       bool `json:"called_five_bet"`
}

// VisibilityFlags records how far into the hand the player got.
type VisibilityFlags struct {
	SawFlop  bool `json:"saw_flop"`
	SawTurn  bool `json:"saw_turn"`
	SawRiver bool `json:"saw_river"`
}

// CbetFlags is only ever set for the last preflop aggressor.
type CbetFlags struct {
	CbetOpportunityFlop  bool `json:"cbet_opportunity_flop"`
	CbetMadeFlop         bool `json:"cbet_made_flop"`
	CbetOpportunityTurn  bool `json:"cbet_opportunity_turn"`
	CbetMadeTurn         bool `json:"cbet_made_turn"`
	CbetOpportunityRiver bool `json:"cbet_opportunity_river"`
	CbetMadeRiver        bool `json:"cbet_made_river"`
}

// FacingCbetFlags records responses to the aggressor's continuation bets.
type FacingCbetFlags struct {
	FacedCbetFlop     bool `json:"faced_cbet_flop"`
	FoldedToCbetFlop  bool `json:"folded_to_cbet_flop"`
	CalledCbetFlop    bool `json:"called_cbet_flop"`
	RaisedCbetFlop    bool `json:"raised_cbet_flop"`
	FacedCbetTurn     bool `json:"faced_cbet_turn"`
	FoldedToCbetTurn  bool `json:"folded_to_cbet_turn"`
	CalledCbetTurn    bool `json:"called_cbet_turn"`
	RaisedCbetTurn    bool `json:"raised_cbet_turn"`
	FacedCbetRiver    bool `json:"faced_cbet_river"`
	FoldedToCbetRiver bool `json:"folded_to_cbet_river"`
	CalledCbetRiver   bool `json:"called_cbet_river"`
	RaisedCbetRiver   bool `json:"raised_cbet_river"`
}

// CheckRaiseFlags per postflop street.
type CheckRaiseFlags struct {
	CheckRaiseOpportunityFlop  bool `json:"check_raise_opportunity_flop"`
	CheckRaisedFlop            bool `json:"check_raised_flop"`
	CheckRaiseOpportunityTurn  bool `json:"check_raise_opportunity_turn"`
	CheckRaisedTurn            bool `json:"check_raised_turn"`
	CheckRaiseOpportunityRiver bool `json:"check_raise_opportunity_river"`
	CheckRaisedRiver           bool `json:"check_raised_river"`
}

// DonkFlags per postflop street.
type DonkFlags struct {
	DonkBetFlop  bool `json:"donk_bet_flop"`
	DonkBetTurn  bool `json:"donk_bet_turn"`
	DonkBetRiver bool `json:"donk_bet_river"`
}

// FloatFlags records a turn stab after calling a flop cbet.
type FloatFlags struct {
	Float bool `json:"float"`
}

// StealFlags covers late-position opens and blind defense.
type StealFlags struct {
	StealOpportunity bool `json:"steal_opportunity"`
	StealAttempt     bool `json:"steal_attempt"`
	FacedSteal       bool `json:"faced_steal"`
	FoldedToSteal    bool `json:"folded_to_steal"`
	CalledSteal      bool `json:"called_steal"`
	ThreeBetVsSteal  bool `json:"three_bet_vs_steal"`
}

// ShowdownFlags holds the result of the hand for the player.
type ShowdownFlags struct {
	WentToShowdown bool            `json:"went_to_showdown"`
	WonAtShowdown  bool            `json:"won_at_showdown"`
	WonHand        bool            `json:"won_hand"`
	ProfitLoss     decimal.Decimal `json:"profit_loss"`
}
