package parser

import (
	"regexp"
	"strings"
)

var handStartRe = regexp.MustCompile(`(?m)^\x{FEFF}?PokerStars (?:Zoom )?Hand #`)

// Split breaks a multi-hand export into one text block per hand. Text
// before the first header is kept as its own block unless it is blank, so
// nothing is silently dropped.
func Split(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	starts := handStartRe.FindAllStringIndex(raw, -1)
	var blocks []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			blocks = append(blocks, s)
		}
	}

	if len(starts) == 0 {
		add(raw)
		return blocks
	}
	add(raw[:starts[0][0]])
	for i, loc := range starts {
		end := len(raw)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		add(strings.TrimPrefix(raw[loc[0]:end], "\ufeff"))
	}
	return blocks
}
