// Package format provides currency and percentage string formatting for
// tables and messages.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// WholeCurrency returns a currency string rounded to whole dollars
// (e.g., "$1,234").
func WholeCurrency(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.0f", -amount)
	}
	return printer.Sprintf("$%.0f", amount)
}

// Percent returns a percentage string with one decimal (e.g., "-3.8%").
func Percent(value float64) string {
	return printer.Sprintf("%.1f%%", value)
}
