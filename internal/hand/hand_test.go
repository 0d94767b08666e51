package hand

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in       string
		want     string
		currency string
		ok       bool
	}{
		{"$0.25", "0.25", "$", true},
		{"$1,250.50", "1250.50", "$", true},
		{"€3", "3", "€", true},
		{"£0.10 to £0.50", "0.10", "£", true},
		{"1500", "1500", "", true},
		{"collected ($8.81)", "8.81", "$", true},
		{"nothing here", "0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseAmount(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
			assert.Equal(t, tt.currency, CurrencySymbol(tt.in))
		})
	}
}

func TestStreetOrder(t *testing.T) {
	next, ok := Preflop.Next()
	assert.True(t, ok)
	assert.Equal(t, Flop, next)

	_, ok = River.Next()
	assert.False(t, ok)

	prev, ok := River.Previous()
	assert.True(t, ok)
	assert.Equal(t, Turn, prev)

	_, ok = Preflop.Previous()
	assert.False(t, ok)

	assert.Equal(t, "turn", Turn.String())
	assert.Equal(t, "unknown", Street(9).String())
}

func TestActionKindString(t *testing.T) {
	assert.Equal(t, "post_ante", PostAnte.String())
	assert.Equal(t, "raise", Raise.String())
	assert.Equal(t, "unknown", ActionKind(42).String())
	assert.Equal(t, "unknown", ActionKind(-1).String())
}

func TestPositions(t *testing.T) {
	for _, p := range []Position{CO, BTN, SB} {
		assert.True(t, p.IsLate(), p)
	}
	for _, p := range []Position{BB, UTG, MP, HJ, NoPosition} {
		assert.False(t, p.IsLate(), p)
	}
	assert.True(t, BB.IsBlind())
	assert.False(t, BTN.IsBlind())
}

func sample() *Hand {
	return &Hand{
		ID: "1",
		Players: []Player{
			{Name: "Alice", Seat: 1, Position: BTN, Stack: d("10")},
			{Name: "Bob", Seat: 2, Position: BB, Stack: d("10")},
			{Name: "Carol", Seat: 3, Stack: d("10"), SittingOut: true},
		},
		Actions: []Action{
			{Player: "Alice", Street: Preflop, Kind: PostSmallBlind, Amount: d("0.25")},
			{Player: "Bob", Street: Preflop, Kind: PostBigBlind, Amount: d("0.5")},
			{Player: "Alice", Street: Preflop, Kind: Raise, Amount: d("1.25"), RaiseTo: d("1.5"), IsAggressive: true},
			{Player: "Bob", Street: Preflop, Kind: Call, Amount: d("1"), FacingBet: true},
			{Player: "Bob", Street: Flop, Kind: Check},
			{Player: "Alice", Street: Flop, Kind: Bet, Amount: d("2"), IsAggressive: true},
			{Player: "Bob", Street: Flop, Kind: Fold, FacingBet: true},
		},
		Refunds: []Refund{{Player: "Alice", Street: Flop, Amount: d("2")}},
		Board:   map[Street][]string{Flop: {"Ah", "Kd", "2c"}},
		Pot:     d("3"),
	}
}

func TestHandAccessors(t *testing.T) {
	h := sample()

	_, ok := h.Player("Carol")
	assert.True(t, ok)
	_, ok = h.Player("Dave")
	assert.False(t, ok)
	assert.Len(t, h.ActivePlayers(), 2)

	p, ok := h.PlayerAt(BB)
	require.True(t, ok)
	assert.Equal(t, "Bob", p.Name)
	_, ok = h.PlayerAt(NoPosition)
	assert.False(t, ok)

	assert.Len(t, h.ActionsOn(Preflop), 4)
	assert.Len(t, h.ActionsBy("Bob", Flop), 2)

	assert.True(t, d("3.5").Equal(h.Contributed("Alice")))
	assert.True(t, d("2").Equal(h.Refunded("Alice")))
	assert.True(t, d("1.5").Equal(h.Invested("Alice")))
	assert.True(t, d("1.5").Equal(h.Invested("Bob")))
	assert.True(t, h.NetPot().Equal(h.Pot))

	assert.True(t, h.ReachedStreet(Flop))
	assert.False(t, h.ReachedStreet(Turn))
	assert.Equal(t, []string{"Ah", "Kd", "2c"}, h.BoardCards())
}

func TestActionPredicates(t *testing.T) {
	assert.True(t, Action{Kind: PostAnte}.IsBlindPost())
	assert.False(t, Action{Kind: PostAnte}.IsVoluntary())
	assert.True(t, Action{Kind: Call}.IsVoluntary())
	assert.False(t, Action{Kind: Check}.IsVoluntary())
	assert.True(t, Action{Kind: Raise}.IsBetOrRaise())
	assert.False(t, Action{Kind: Call}.IsBetOrRaise())
}

func TestHandJSONUsesNames(t *testing.T) {
	data, err := json.Marshal(sample())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	actions := out["actions"].([]any)
	first := actions[0].(map[string]any)
	assert.Equal(t, "post_small_blind", first["kind"])
	assert.Equal(t, "preflop", first["street"])

	board := out["board"].(map[string]any)
	assert.Contains(t, board, "flop")
	assert.NotContains(t, out, "Raw")
}
