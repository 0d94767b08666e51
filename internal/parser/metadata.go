package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTimestampLayouts are tried in order against the header timestamp.
var DefaultTimestampLayouts = []string{
	"2006/01/02 15:04:05",
	"2006/01/02 - 15:04:05",
	"2006-01-02 15:04:05",
}

var (
	headerLine = pattern(`^PokerStars (?:Zoom )?Hand #(\d+):\s+(.*?)\s*\((` + amountExpr + `)/(` + amountExpr + `)(?:\s+([A-Z]{3}))?\)\s*-\s*(.*)$`)
	tableLine  = pattern(`^Table '([^']+)'(?:\s+(\d+)-max)?.*?Seat #(\d+) is the button`)

	timestampRe = regexp.MustCompile(`\d{4}[/-]\d{2}[/-]\d{2}(?: - | )\d{1,2}:\d{2}:\d{2}`)
)

// metadata is the header information of one hand.
type metadata struct {
	id                string
	game              string
	smallBlind        decimal.Decimal
	bigBlind          decimal.Decimal
	currency          string
	timestamp         time.Time
	timestampFallback bool
	table             string
	maxSeats          int
	buttonSeat        int
}

// extractMetadata reads the header and table lines of a hand block.
func (p *Parser) extractMetadata(lines []string) (metadata, error) {
	var md metadata

	header, _ := first(lines, headerLine)
	if !header.ok {
		return md, ErrMalformedHeader
	}
	md.id = header.group(1)
	md.game = header.group(2)
	md.smallBlind = mustMoney(header.group(3))
	md.bigBlind = mustMoney(header.group(4))
	md.currency = header.group(5)
	if md.currency == "" {
		md.currency = currencySymbol(header.group(4))
	}
	md.timestamp, md.timestampFallback = p.parseTimestamp(header.group(6))

	table, _ := first(lines, tableLine)
	if !table.ok {
		return md, fmt.Errorf("hand #%s: %w", md.id, ErrMalformedTableLine)
	}
	md.table = table.group(1)
	if n := table.group(2); n != "" {
		md.maxSeats, _ = strconv.Atoi(n)
	}
	md.buttonSeat, _ = strconv.Atoi(table.group(3))

	return md, nil
}

// parseTimestamp tries each configured layout against the first timestamp
// in the header text, then against the whole text. When nothing parses the
// clock's current time is substituted and reported via the second result.
func (p *Parser) parseTimestamp(text string) (time.Time, bool) {
	candidates := []string{strings.TrimSpace(text)}
	if ts := timestampRe.FindString(text); ts != "" {
		candidates = append([]string{ts}, candidates...)
	}
	for _, candidate := range candidates {
		for _, layout := range p.layouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t, false
			}
		}
	}
	p.logger.Warn().Str("timestamp", text).Msg("Unparsable hand timestamp, using current time")
	return p.clock.Now(), true
}
