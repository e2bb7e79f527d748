package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nairaPrinter = message.NewPrinter(language.MustParse("en-NG"))

// FormatNaira renders an amount in the backend's canonical currency for
// display. No rounding or tax math happens here.
func FormatNaira(amount float64) string {
	return nairaPrinter.Sprintf("₦%.2f", amount)
}
