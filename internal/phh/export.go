package phh

import (
	"sort"
	"strconv"

	"github.com/lox/pokertracker/internal/flags"
	"github.com/lox/pokertracker/internal/hand"
	"github.com/shopspring/decimal"
)

// Venue is written on every exported hand.
const Venue = "PokerStars"

// FromHand converts a parsed hand to PHH. Players are numbered in dealing
// order starting from the seat after the button, so p1 is the small blind
// at full tables and the big blind heads-up. Hole cards are not part of
// the parsed hand and are dealt as unknown.
func FromHand(h *hand.Hand) *HandHistory {
	order := dealingOrder(h)
	index := make(map[string]int, len(order))
	for i, p := range order {
		index[p.Name] = i
	}

	n := len(order)
	hh := &HandHistory{
		Variant:           "NT",
		Venue:             Venue,
		Currency:          h.Currency,
		Table:             h.Table,
		SeatCount:         h.MaxSeats,
		Seats:             make([]int, n),
		Antes:             make([]Amount, n),
		BlindsOrStraddles: make([]Amount, n),
		MinBet:            Amount(h.BigBlind),
		StartingStacks:    make([]Amount, n),
		FinishingStacks:   make([]Amount, n),
		Winnings:          make([]Amount, n),
		Players:           make([]string, n),
		HandID:            h.ID,
		Stake:             h.Stake,
		Pot:               Amount(h.Pot),
		Rake:              Amount(h.Rake),
		ButtonSeat:        h.ButtonSeat,
	}
	populateTimeFields(hh, h)

	antes := make([]decimal.Decimal, n)
	blinds := make([]decimal.Decimal, n)
	for _, a := range h.Actions {
		i, ok := index[a.Player]
		if !ok {
			continue
		}
		switch a.Kind {
		case hand.PostAnte:
			antes[i] = antes[i].Add(a.Amount)
		case hand.PostSmallBlind, hand.PostBigBlind:
			blinds[i] = blinds[i].Add(a.Amount)
		}
	}

	for i, p := range order {
		hh.Seats[i] = p.Seat
		hh.Players[i] = p.Name
		hh.Antes[i] = Amount(antes[i])
		hh.BlindsOrStraddles[i] = Amount(blinds[i])
		hh.StartingStacks[i] = Amount(p.Stack)

		profit := profitLoss(h, p.Name)
		hh.FinishingStacks[i] = Amount(p.Stack.Add(profit))
		hh.Winnings[i] = Amount(decimal.Max(profit.Add(h.Invested(p.Name)), decimal.Zero))
	}

	for i := range order {
		hh.Actions = append(hh.Actions, formatDeal(i))
	}
	for _, street := range hand.Streets {
		if street != hand.Preflop {
			if cards := h.Board[street]; len(cards) > 0 {
				hh.Actions = append(hh.Actions, "d db "+JoinCards(cards))
			}
		}
		for _, a := range h.ActionsOn(street) {
			i, ok := index[a.Player]
			if !ok {
				continue
			}
			if s, ok := FormatAction(i, a); ok {
				hh.Actions = append(hh.Actions, s)
			}
		}
	}
	return hh
}

// FromHands converts hands in order.
func FromHands(hands []*hand.Hand) []*HandHistory {
	out := make([]*HandHistory, 0, len(hands))
	for _, h := range hands {
		out = append(out, FromHand(h))
	}
	return out
}

func formatDeal(index int) string {
	return "d dh p" + strconv.Itoa(index+1) + " " + unknownHole
}

func profitLoss(h *hand.Hand, name string) decimal.Decimal {
	if f, ok := h.Flags[name]; ok {
		return f.ProfitLoss
	}
	f, _ := flags.ForPlayer(h, name)
	return f.ProfitLoss
}

// dealingOrder returns the active players clockwise from the seat after
// the button.
func dealingOrder(h *hand.Hand) []hand.Player {
	active := h.ActivePlayers()
	sort.SliceStable(active, func(i, j int) bool { return active[i].Seat < active[j].Seat })

	start := 0
	for i, p := range active {
		if p.Seat > h.ButtonSeat {
			start = i
			break
		}
	}
	order := make([]hand.Player, 0, len(active))
	order = append(order, active[start:]...)
	return append(order, active[:start]...)
}

func populateTimeFields(hh *HandHistory, h *hand.Hand) {
	t := h.Timestamp
	if t.IsZero() {
		return
	}
	hh.Time = t.Format("15:04:05")
	hh.Day = t.Day()
	hh.Month = int(t.Month())
	hh.Year = t.Year()
}
