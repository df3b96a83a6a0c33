package gochart

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber renders v with thousands separators and the given number of
// decimal places.
func FormatNumber(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	scale := math.Pow(10, float64(precision))
	if r := math.Round(v*scale) / scale; isFinite(r) {
		v = r
	}
	if v == 0 {
		v = 0 // drops the sign of -0
	}
	return numberPrinter.Sprintf(fmt.Sprintf("%%.%df", precision), v)
}
