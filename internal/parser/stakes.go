package parser

import (
	"github.com/shopspring/decimal"
)

// Stake maps a blind pair to a display label.
type Stake struct {
	Label      string
	SmallBlind decimal.Decimal
	BigBlind   decimal.Decimal
}

// StakeTable resolves blinds to stake labels. It is immutable once built and
// safe to share between workers.
type StakeTable struct {
	labels map[string]string
}

var defaultStakes = []struct {
	sb, bb, label string
}{
	{"0.01", "0.02", "NL2"},
	{"0.02", "0.05", "NL5"},
	{"0.05", "0.10", "NL10"},
	{"0.10", "0.25", "NL25"},
	{"0.25", "0.50", "NL50"},
	{"0.50", "1.00", "NL100"},
	{"1", "2", "NL200"},
	{"2", "4", "NL400"},
	{"2.50", "5", "NL500"},
	{"3", "6", "NL600"},
	{"5", "10", "NL1000"},
	{"10", "20", "NL2000"},
	{"25", "50", "NL5000"},
}

// DefaultStakes returns the stake table for standard cash-game blinds.
func DefaultStakes() *StakeTable {
	stakes := make([]Stake, 0, len(defaultStakes))
	for _, s := range defaultStakes {
		stakes = append(stakes, Stake{
			Label:      s.label,
			SmallBlind: decimal.RequireFromString(s.sb),
			BigBlind:   decimal.RequireFromString(s.bb),
		})
	}
	return NewStakeTable(stakes...)
}

// NewStakeTable builds a table from explicit entries.
func NewStakeTable(stakes ...Stake) *StakeTable {
	t := &StakeTable{labels: make(map[string]string, len(stakes))}
	for _, s := range stakes {
		t.labels[stakeKey(s.SmallBlind, s.BigBlind)] = s.Label
	}
	return t
}

// With returns a copy of the table with extra entries, which win over
// existing ones for the same blinds.
func (t *StakeTable) With(stakes ...Stake) *StakeTable {
	out := &StakeTable{labels: make(map[string]string, len(t.labels)+len(stakes))}
	for k, v := range t.labels {
		out.labels[k] = v
	}
	for _, s := range stakes {
		out.labels[stakeKey(s.SmallBlind, s.BigBlind)] = s.Label
	}
	return out
}

// Label returns the stake label for the blinds, synthesizing NL<bb*100>
// for blinds the table does not know.
func (t *StakeTable) Label(sb, bb decimal.Decimal) string {
	if label, ok := t.labels[stakeKey(sb, bb)]; ok {
		return label
	}
	return "NL" + bb.Shift(2).String()
}

func stakeKey(sb, bb decimal.Decimal) string {
	return sb.String() + "/" + bb.String()
}
