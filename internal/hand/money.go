package hand

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountExpr matches one amount with an optional currency symbol, e.g.
// "$1,250.50" or "300".
const AmountExpr = `[$€£]?[0-9][0-9,]*(?:\.[0-9]+)?`

var amountRe = regexp.MustCompile(`([$€£]?)([0-9][0-9,]*(?:\.[0-9]+)?)`)

// ParseAmount reads the first amount in s. Thousands separators are dropped.
func ParseAmount(s string) (decimal.Decimal, bool) {
	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[2], ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// CurrencySymbol returns the currency symbol of the first amount in s.
func CurrencySymbol(s string) string {
	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
