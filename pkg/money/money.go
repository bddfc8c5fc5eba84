package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when an amount cannot be represented in cents.
var ErrInvalidAmount = errors.New("invalid amount")

// Cents is a monetary amount in integer minor units (1/100 of the currency).
// All arithmetic in the application happens on this type; conversion to a
// two-decimal string happens only at the display boundary.
type Cents int64

// FromUnits builds a Cents value from whole units and a two-digit fraction.
func FromUnits(units int64, fraction int64) Cents {
	return Cents(units*100 + fraction)
}

// Float64 returns the amount as a float, for JSON bodies that carry decimals.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// MulQty multiplies a unit price by a line quantity.
func (c Cents) MulQty(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount with exactly two decimal places, e.g. "12.30".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// ClampZero returns the amount, floored at zero. Used for display values the
// screen never shows as negative (change, discounted total).
func (c Cents) ClampZero() Cents {
	if c < 0 {
		return 0
	}
	return c
}

// Sanitize reduces free-form text to the characters the payment inputs accept:
// digits and at most one decimal point. Anything from a second decimal point
// onward is dropped. This mirrors the per-keystroke filtering of the order
// screen, so a minus sign can never survive into an amount.
func Sanitize(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenDot {
				return b.String()
			}
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse converts user-entered amount text to cents. The input is sanitized
// first, so negative amounts are structurally impossible. Empty input (or
// input that sanitizes to nothing) is zero, matching the screen's behavior of
// treating a blank field as no discount / no payment. Fractions beyond two
// digits round half up.
func Parse(s string) (Cents, error) {
	s = Sanitize(s)
	if s == "" || s == "." {
		return 0, nil
	}
	return ParseDecimal(s)
}

// ParseDecimal converts a non-negative decimal string ("12", "12.5", "12.50")
// to cents without going through floating point. Unlike Parse it does not
// sanitize: malformed input is an error, which is what the catalog loader
// needs to drop products with unusable prices.
func ParseDecimal(s string) (Cents, error) {
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return 0, ErrInvalidAmount
		}
	}
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}

	var units int64
	if intPart != "" {
		var err error
		units, err = strconv.ParseInt(intPart, 10, 64)
		if err != nil || units < 0 {
			return 0, ErrInvalidAmount
		}
	}

	cents := units * 100
	if fracPart == "" {
		return Cents(cents), nil
	}

	// Take the first three fraction digits; the third decides rounding.
	digits := fracPart
	if len(digits) > 3 {
		digits = digits[:3]
	}
	frac, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	switch len(digits) {
	case 1:
		cents += frac * 10
	case 2:
		cents += frac
	case 3:
		cents += frac / 10
		if frac%10 >= 5 {
			cents++
		}
	}
	return Cents(cents), nil
}
