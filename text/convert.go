package text

import (
	"fmt"
	"strconv"
	"strings"

	"sim-base/errors"
)

// FormatInt renders value in base 10. If digits is positive, the magnitude is
// left-padded with zeros to at least that many characters; the sign, if any,
// precedes the padding. A digits of zero or less disables padding.
func FormatInt(value, digits int) string {
	s := strconv.Itoa(value)
	if digits <= 0 {
		return s
	}
	mag, neg := strings.CutPrefix(s, "-")
	if len(mag) < digits {
		mag = strings.Repeat("0", digits-len(mag)) + mag
	}
	if neg {
		return "-" + mag
	}
	return mag
}

// NeededDigits returns how many base-10 digits it takes to represent any
// value in [0, max]. NeededDigits(0) is 1.
func NeededDigits(max uint) int {
	digits := 1
	for max >= 10 {
		max /= 10
		digits++
	}
	return digits
}

// ParseInt parses an optionally signed run of decimal digits occupying the
// entire input. Anything else, including an empty string, yields an error
// wrapping ErrMalformedInteger and quoting the offending text.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errors.ErrMalformedInteger, s)
	}
	return v, nil
}

// ParseInts applies ParseInt to every element in input order and stops at the
// first failure, identifying the offending element by position.
func ParseInts(list []string) ([]int, error) {
	out := make([]int, 0, len(list))
	for i, s := range list {
		v, err := ParseInt(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
