package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lox/pokertracker/internal/hand"
)

var seatLine = pattern(`^Seat (\d+): (.+?) \((` + amountExpr + `) in chips(, [^)]*)?\)(.*)$`)

// PositionTable holds the position labels for each table size, listed
// clockwise starting from the seat after the button.
type PositionTable struct {
	labels map[int][]hand.Position
}

// DefaultPositions returns the standard labels for 2 to 9 handed tables.
// Sizes without an explicit list get generic MP1..MPn middle positions.
func DefaultPositions() *PositionTable {
	return &PositionTable{labels: map[int][]hand.Position{
		2: {hand.BB, hand.BTN},
		3: {hand.SB, hand.BB, hand.BTN},
		4: {hand.SB, hand.BB, hand.CO, hand.BTN},
		5: {hand.SB, hand.BB, hand.UTG, hand.CO, hand.BTN},
		6: {hand.SB, hand.BB, hand.UTG, hand.MP, hand.CO, hand.BTN},
		9: {hand.SB, hand.BB, hand.UTG, hand.UTG1, hand.UTG2, hand.MP, hand.HJ, hand.CO, hand.BTN},
	}}
}

// Labels returns the labels for n active players.
func (t *PositionTable) Labels(n int) []hand.Position {
	if labels, ok := t.labels[n]; ok {
		return append([]hand.Position(nil), labels...)
	}
	if n < 5 {
		return nil
	}
	labels := []hand.Position{hand.SB, hand.BB, hand.UTG}
	for i := 1; i <= n-5; i++ {
		labels = append(labels, hand.Position("MP"+strconv.Itoa(i)))
	}
	return append(labels, hand.CO, hand.BTN)
}

// parseSeats reads the seat list, then labels active players relative to
// the button. Sitting-out seats are kept without a position.
func (p *Parser) parseSeats(lines []string, buttonSeat int) ([]hand.Player, error) {
	var players []hand.Player
	seen := make(map[string]bool)

	each(lines, seatLine, func(m match) {
		seat, _ := strconv.Atoi(m.group(1))
		rest := m.group(4) + m.group(5)
		players = append(players, hand.Player{
			Name:       m.group(2),
			Seat:       seat,
			Stack:      mustMoney(m.group(3)),
			SittingOut: strings.Contains(rest, "sitting out") || strings.Contains(rest, "out of hand"),
		})
	})

	for _, pl := range players {
		if seen[pl.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayer, pl.Name)
		}
		seen[pl.Name] = true
	}

	sort.SliceStable(players, func(i, j int) bool { return players[i].Seat < players[j].Seat })

	var active []int
	for i, pl := range players {
		if pl.IsActive() {
			active = append(active, i)
		}
	}
	if len(active) < 2 || len(active) > 9 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayerCount, len(active))
	}

	labels := p.positions.Labels(len(active))
	start := 0
	for i, idx := range active {
		if players[idx].Seat > buttonSeat {
			start = i
			break
		}
	}
	for i, label := range labels {
		players[active[(start+i)%len(active)]].Position = label
	}
	return players, nil
}
