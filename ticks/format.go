package ticks

import (
	"fmt"
	"math"
	"strconv"
)

// Exponents at or beyond these limits switch Format to scientific notation.
var (
	SciAbove = 6
	SciBelow = -4
)

// Format renders a tick in plain decimal notation with just enough
// fractional digits for the interval the tick was generated with, or in
// scientific notation c×10^e for very large or very small magnitudes.
func Format(t Tick) string {
	if t.Value != 0 && (t.Exponent >= SciAbove || t.Exponent <= SciBelow) {
		return fmt.Sprintf("%.*f×10^%d", t.RequiredDecimalPlaces, t.Coefficient, t.Exponent)
	}
	decimals := t.RequiredDecimalPlaces - t.Exponent
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(t.Value, 'f', decimals, 64)
}

// FormatDecade renders a tick of a logarithmic axis. Tick values of such
// axes are decades (log10 of the data value); small integral decades are
// shown as plain numbers, everything else as 10^v.
func FormatDecade(t Tick) string {
	if v := t.Value; v == math.Trunc(v) && math.Abs(v) <= 3 {
		return strconv.FormatFloat(math.Pow10(int(v)), 'f', -1, 64)
	}
	return "10^" + Format(t)
}
