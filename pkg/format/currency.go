// Package format renders money amounts for people.
package format

import (
	"math"
	"strings"

	"github.com/iwvelando/take-home/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(mathutil.Round(amount)))
	if mathutil.Round(amount) < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// SignedCurrency always includes a sign, which reads better for monthly
// impacts (e.g., "+$400.00", "-$1,500.00").
func SignedCurrency(amount float64) string {
	if mathutil.Round(amount) < 0 {
		return Currency(amount)
	}
	return "+" + Currency(amount)
}

// Rate renders a fractional rate as a percentage with up to two decimals
// (e.g., 0.0545 -> "5.45%", 0.05 -> "5%").
func Rate(rate float64) string {
	s := printer.Sprintf("%.2f", mathutil.Percent(rate))
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "%"
}
