package phh

import "strings"

var rankMap = map[string]string{
	"a":  "A",
	"k":  "K",
	"q":  "Q",
	"j":  "J",
	"10": "T",
	"t":  "T",
	"9":  "9",
	"8":  "8",
	"7":  "7",
	"6":  "6",
	"5":  "5",
	"4":  "4",
	"3":  "3",
	"2":  "2",
}

// unknownHole is the PHH placeholder for two undisclosed hole cards.
const unknownHole = "????"

// NormalizeCard converts hand-history notation (e.g. 10h, kS) to PHH
// notation (Th, Ks).
func NormalizeCard(card string) string {
	card = strings.TrimSpace(card)
	if card == "" {
		return ""
	}
	lowered := strings.ToLower(card)
	if lowered == "??" {
		return "??"
	}
	if len(lowered) < 2 {
		return strings.ToUpper(lowered)
	}

	suit := lowered[len(lowered)-1:]
	rankPart := lowered[:len(lowered)-1]
	rank, ok := rankMap[rankPart]
	if !ok {
		rank = strings.ToUpper(rankPart[:1])
	}
	return rank + suit
}

// JoinCards normalizes cards and concatenates them the way PHH deal
// actions expect, e.g. ["Qs", "7h", "2c"] becomes "Qs7h2c".
func JoinCards(cards []string) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(NormalizeCard(c))
	}
	return b.String()
}
