// Package scale holds the weighbridge arithmetic: net weight derivation and
// the lenient numeric parsing applied to raw operator input.
package scale

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Net returns the net weight for a gross and empty measurement, floored at
// zero. It is used both for the live readout while the operator types and
// for the committed value at submission time.
func Net(gross, empty int) int {
	if n := gross - empty; n > 0 {
		return n
	}
	return 0
}

// ParseKilograms converts raw operator input into a weight measurement.
// Blank, malformed, or negative input coerces to 0; bad input is clamped,
// never rejected.
func ParseKilograms(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseAmount converts raw operator input into a monetary amount under the
// same rule as ParseKilograms: anything that is not a non-negative number
// coerces to zero.
func ParseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
