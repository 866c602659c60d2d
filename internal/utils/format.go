package utils

import (
	"github.com/dustin/go-humanize"
)

// FormatPrice renders an amount with thousands separators behind the currency symbol.
func FormatPrice(symbol string, amount int) string {
	return symbol + humanize.Comma(int64(amount))
}
