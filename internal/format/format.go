package format

import (
	"fmt"
	"math"
)

// ToDuration renders decimal hours as {H}h{MM}: 8.5 -> "8h30". Only the
// magnitude is formatted. Minutes are rounded to the nearest minute and
// not renormalized when rounding reaches 60, so 7.9999 renders as "7h60".
func ToDuration(hours float64) string {
	abs := math.Abs(hours)
	h := int(math.Floor(abs))
	m := int(math.Round((abs - math.Floor(abs)) * 60))
	return fmt.Sprintf("%dh%02d", h, m)
}

// ToSignedDuration prefixes the sign: +8h30, -0h15. Zero is positive.
func ToSignedDuration(hours float64) string {
	sign := "+"
	if hours < 0 {
		sign = "-"
	}
	return sign + ToDuration(hours)
}

// Sign returns the display class of a delta value, "plus" or "minus".
func Sign(hours float64) string {
	if hours >= 0 {
		return "plus"
	}
	return "minus"
}
