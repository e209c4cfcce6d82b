package domain

import "github.com/shopspring/decimal"

// Currency is the only currency the marketplace settles in.
const Currency = "BDT"

func init() {
	// prices go over the wire as plain numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// RoundMoney rounds to two decimal places, the precision of stored prices.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
