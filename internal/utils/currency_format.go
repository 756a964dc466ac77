package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var nairaPrinter = message.NewPrinter(language.English)

// FormatNaira formats an amount as a display-ready Naira string with grouped
// thousands and exactly two fraction digits.
// Example: 1234567.5 returns "₦1,234,567.50".
func FormatNaira(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return nairaPrinter.Sprintf("₦%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatWithPrecision formats an amount rounded to the given number of
// fraction digits, without grouping or a currency sign.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
