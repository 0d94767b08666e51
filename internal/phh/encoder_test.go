package phh_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/lox/pokertracker/internal/hand"
	"github.com/lox/pokertracker/internal/parser"
	"github.com/lox/pokertracker/internal/phh"
	"github.com/shopspring/decimal"
)

func TestNormalizeCard(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10h", "Th"},
		{"10H", "Th"},
		{"ah", "Ah"},
		{"As", "As"},
		{"kS", "Ks"},
		{"??", "??"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := phh.NormalizeCard(tt.in); got != tt.want {
			t.Fatalf("NormalizeCard(%q)=%q, want %q", tt.in, got, tt.want)
		}
	}

	if got := phh.JoinCards([]string{"Qs", "7h", "10c"}); got != "Qs7hTc" {
		t.Fatalf("JoinCards=%q", got)
	}
}

func TestFormatAction(t *testing.T) {
	d := decimal.RequireFromString
	tests := []struct {
		name      string
		index     int
		action    hand.Action
		want      string
		shouldUse bool
	}{
		{"fold", 0, hand.Action{Kind: hand.Fold}, "p1 f", true},
		{"check", 1, hand.Action{Kind: hand.Check}, "p2 cc", true},
		{"call", 3, hand.Action{Kind: hand.Call, Amount: d("1.5")}, "p4 cc", true},
		{"raise", 0, hand.Action{Kind: hand.Raise, Amount: d("1.75"), RaiseTo: d("2")}, "p1 cbr 2", true},
		{"bet", 1, hand.Action{Kind: hand.Bet, Amount: d("2.50"), RaiseTo: d("2.50")}, "p2 cbr 2.5", true},
		{"zero bet", 2, hand.Action{Kind: hand.Bet}, "", false},
		{"all-in raise", 0, hand.Action{Kind: hand.Raise, RaiseTo: d("40"), IsAllIn: true}, "p1 cbr 40", true},
		{"post sb", 0, hand.Action{Kind: hand.PostSmallBlind, Amount: d("0.25")}, "", false},
		{"post bb", 1, hand.Action{Kind: hand.PostBigBlind, Amount: d("0.5")}, "", false},
		{"ante", 1, hand.Action{Kind: hand.PostAnte, Amount: d("0.05")}, "", false},
	}

	for _, tt := range tests {
		got, ok := phh.FormatAction(tt.index, tt.action)
		if ok != tt.shouldUse {
			t.Fatalf("%s: ok=%v want %v", tt.name, ok, tt.shouldUse)
		}
		if got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.name, got, tt.want)
		}
	}
}

func parseSession(t *testing.T) []*hand.Hand {
	t.Helper()
	data, err := os.ReadFile("../parser/testdata/session.txt")
	if err != nil {
		t.Fatalf("read session: %v", err)
	}
	result, err := parser.New().Parse(t.Context(), string(data))
	if err != nil {
		t.Fatalf("parse session: %v", err)
	}
	if result.Successful != 3 {
		t.Fatalf("parsed %d hands: %v", result.Successful, result.Messages())
	}
	return result.Hands
}

func TestEncodeParsedHand(t *testing.T) {
	hh := phh.FromHand(parseSession(t)[0])

	var buf bytes.Buffer
	if err := phh.Encode(&buf, hh); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	got := buf.String()
	want := "" +
		"variant = \"NT\"\n" +
		"venue = \"PokerStars\"\n" +
		"currency = \"USD\"\n" +
		"table = \"Alcor II\"\n" +
		"seat_count = 6\n" +
		"seats = [2, 3, 4, 5, 6, 1]\n" +
		"antes = [0, 0, 0, 0, 0, 0]\n" +
		"blinds_or_straddles = [0.25, 0.5, 0, 0, 0, 0]\n" +
		"min_bet = 0.5\n" +
		"starting_stacks = [50, 50, 50, 50, 50, 50]\n" +
		"finishing_stacks = [49.75, 45.5, 54.31, 50, 50, 50]\n" +
		"winnings = [0, 0, 8.81, 0, 0, 0]\n" +
		"actions = [\"d dh p1 ????\", \"d dh p2 ????\", \"d dh p3 ????\", \"d dh p4 ????\", \"d dh p5 ????\", \"d dh p6 ????\", " +
		"\"p3 cbr 2\", \"p4 f\", \"p5 f\", \"p6 f\", \"p1 f\", \"p2 cc\", " +
		"\"d db Qs7h2c\", \"p2 cc\", \"p3 cbr 2.5\", \"p2 cc\", " +
		"\"d db 9d\", \"p2 cc\", \"p3 cbr 6\", \"p2 f\"]\n" +
		"players = [\"Bob\", \"Carol\", \"Dave\", \"Erin\", \"Frank\", \"Alice\"]\n" +
		"hand = \"245123456789\"\n" +
		"time = \"20:30:00\"\n" +
		"day = 15\n" +
		"month = 1\n" +
		"year = 2024\n" +
		"_stake = \"NL50\"\n" +
		"_pot = 9.25\n" +
		"_rake = 0.44\n" +
		"_button_seat = 1\n"

	if got != want {
		t.Fatalf("Encode output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestFromHandSkipsSittingOut(t *testing.T) {
	hh := phh.FromHand(parseSession(t)[2])

	if len(hh.Players) != 4 {
		t.Fatalf("players=%v", hh.Players)
	}
	if want := []string{"Frank", "Alice", "Carol", "Erin"}; strings.Join(hh.Players, ",") != strings.Join(want, ",") {
		t.Fatalf("players=%v want %v", hh.Players, want)
	}
	if hh.Winnings[3].String() != "1.25" {
		t.Fatalf("button winnings=%s", hh.Winnings[3])
	}
}

func TestFromHandAllInShowdown(t *testing.T) {
	hh := phh.FromHand(parseSession(t)[1])

	last := hh.Actions[len(hh.Actions)-3:]
	if strings.Join(last, "|") != "d db Ah8d3s|d db Kc|d db 2h" {
		t.Fatalf("board actions=%v", last)
	}
	// Frank is the big blind, second in dealing order.
	if hh.FinishingStacks[1].String() != "78.5" {
		t.Fatalf("finishing stacks=%v", hh.FinishingStacks)
	}
}

func TestWriteSections(t *testing.T) {
	hands := phh.FromHands(parseSession(t))

	var buf bytes.Buffer
	if err := phh.WriteSections(&buf, 7, hands); err != nil {
		t.Fatalf("WriteSections: %v", err)
	}
	out := buf.String()

	for _, header := range []string{"[7]\n", "\n\n[8]\n", "\n\n[9]\n"} {
		if !strings.Contains(out, header) {
			t.Fatalf("missing section %q in:\n%s", header, out)
		}
	}
	if !strings.HasSuffix(out, "_button_seat = 5\n\n") {
		t.Fatalf("unexpected tail: %q", out[len(out)-40:])
	}
	if strings.Count(out, "variant = \"NT\"") != 3 {
		t.Fatalf("expected 3 hands")
	}
}

func TestEncodeNil(t *testing.T) {
	if err := phh.Encode(&bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected error for nil hand")
	}
}
