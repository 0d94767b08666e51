package parser

import (
	"github.com/lox/pokertracker/internal/hand"
	"github.com/shopspring/decimal"
)

const amountExpr = hand.AmountExpr

// mustMoney parses an amount captured by a pattern built on amountExpr, so
// it cannot fail in practice; anything unreadable counts as zero.
func mustMoney(s string) decimal.Decimal {
	d, _ := hand.ParseAmount(s)
	return d
}

func currencySymbol(s string) string {
	return hand.CurrencySymbol(s)
}
