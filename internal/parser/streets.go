package parser

import (
	"strings"

	"github.com/lox/pokertracker/internal/hand"
)

var (
	markerLine   = pattern(`^\*\*\* ([A-Z ]+?) \*\*\*\s*(.*)$`)
	bracketGroup = pattern(`\[([^\]]*)\]\s*$`)
	seatPrefix   = pattern(`^Seat \d+: `)
)

// sections is a hand block carved up by street markers.
type sections struct {
	header   []string
	streets  map[hand.Street][]string
	board    map[hand.Street][]string
	showdown []string
	summary  []string
}

// sectionize splits a hand into its header, betting streets, show down and
// summary. Streets the hand never reached have no entry.
func sectionize(lines []string) sections {
	s := sections{
		streets: make(map[hand.Street][]string),
		board:   make(map[hand.Street][]string),
	}

	// The header runs up to the first marker. Everything after the last
	// seat line (blind posts) already belongs to preflop.
	firstMarker := len(lines)
	if _, i := first(lines, markerLine); i >= 0 {
		firstMarker = i
	}
	head := lines[:firstMarker]
	_, lastSeat := last(head, seatPrefix)
	s.header = head[:lastSeat+1]
	s.streets[hand.Preflop] = append([]string(nil), head[lastSeat+1:]...)

	street := hand.Preflop
	var sink *[]string
	for _, line := range lines[firstMarker:] {
		m := markerLine(line)
		if !m.ok {
			if sink != nil {
				*sink = append(*sink, line)
			} else {
				s.streets[street] = append(s.streets[street], line)
			}
			continue
		}

		switch m.group(1) {
		case "HOLE CARDS", "PRE-FLOP":
			sink = nil
			street = hand.Preflop
		case "FLOP", "TURN", "RIVER":
			sink = nil
			street = streetForMarker(m.group(1))
			if _, ok := s.streets[street]; !ok {
				s.streets[street] = []string{}
			}
			s.board[street] = boardCards(m.group(2))
		case "SHOW DOWN":
			sink = &s.showdown
		case "SUMMARY":
			sink = &s.summary
		default:
			// Run-it-twice boards and other variants are not modelled.
			sink = &s.showdown
		}
	}
	return s
}

func streetForMarker(name string) hand.Street {
	switch name {
	case "FLOP":
		return hand.Flop
	case "TURN":
		return hand.Turn
	default:
		return hand.River
	}
}

// boardCards returns the cards newly dealt by a street marker: the flop's
// three cards or the single card in the final bracket for turn and river.
func boardCards(rest string) []string {
	m := bracketGroup(rest)
	if !m.ok {
		return nil
	}
	return strings.Fields(m.group(1))
}
