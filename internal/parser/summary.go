package parser

import (
	"strings"

	"github.com/lox/pokertracker/internal/hand"
	"github.com/shopspring/decimal"
)

var (
	totalPotLine = pattern(`^Total pot (` + amountExpr + `)`)
	rakeField    = pattern(`\| Rake (` + amountExpr + `)`)
	boardLine    = pattern(`^Board \[([^\]]*)\]`)
)

// summary is the settlement information at the end of a hand.
type summary struct {
	pot   decimal.Decimal
	rake  decimal.Decimal
	board []string
}

// extractSummary reads pot, rake and board from the summary section.
// Unreadable pot or rake stay zero.
func (p *Parser) extractSummary(lines []string, handID string) summary {
	var s summary
	if m, _ := first(lines, totalPotLine); m.ok {
		s.pot = mustMoney(m.group(1))
	} else {
		p.logger.Debug().Str("hand_id", handID).Msg("No total pot in summary")
	}
	if m, _ := first(lines, rakeField); m.ok {
		s.rake = mustMoney(m.group(1))
	} else {
		p.logger.Debug().Str("hand_id", handID).Msg("No rake in summary")
	}
	if m, _ := first(lines, boardLine); m.ok {
		s.board = strings.Fields(m.group(1))
	}
	return s
}

// mergeBoard fills streets missing from the marker lines using the summary
// board, which lists all cards in dealing order.
func mergeBoard(fromMarkers map[hand.Street][]string, full []string) map[hand.Street][]string {
	board := make(map[hand.Street][]string, len(fromMarkers))
	for street, cards := range fromMarkers {
		if len(cards) > 0 {
			board[street] = cards
		}
	}
	slots := map[hand.Street][2]int{
		hand.Flop:  {0, 3},
		hand.Turn:  {3, 4},
		hand.River: {4, 5},
	}
	for _, street := range hand.Postflop {
		span := slots[street]
		if _, ok := board[street]; ok || len(full) < span[1] {
			continue
		}
		board[street] = append([]string(nil), full[span[0]:span[1]]...)
	}
	return board
}
