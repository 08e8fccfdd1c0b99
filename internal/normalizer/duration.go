package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Duration parsing errors.
var (
	ErrDurationFormat    = errors.New("invalid duration")
	ErrDurationComponent = errors.New("invalid duration component")
)

// durationSegments is the required number of colon-separated segments.
const durationSegments = 3

// outputScale is the number of fractional digits durations carry on output.
const outputScale = 3

var secondsPerHour = decimal.NewFromInt(3600)

var secondsPerMinute = decimal.NewFromInt(60)

// ParseDuration parses an H*:M*:S*[.MMM] duration into an exact decimal
// number of seconds. Empty segments count as zero; the fractional part of
// the seconds segment is milliseconds. Anything other than exactly three
// colon-separated segments is a format error.
func ParseDuration(value string) (decimal.Decimal, error) {
	segments := strings.Split(value, ":")
	if len(segments) != durationSegments {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrDurationFormat, value)
	}

	hours, err := parseWhole(segments[0])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: hours in %q", ErrDurationComponent, value)
	}

	minutes, err := parseWhole(segments[1])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: minutes in %q", ErrDurationComponent, value)
	}

	seconds, err := parseSeconds(segments[2])
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: seconds in %q", ErrDurationComponent, value)
	}

	total := hours.Mul(secondsPerHour).
		Add(minutes.Mul(secondsPerMinute)).
		Add(seconds)

	return total, nil
}

// SumDurations adds two exact decimal durations and quantizes the result to
// millisecond precision using standard decimal (banker's) rounding.
func SumDurations(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).RoundBank(outputScale)
}

// FormatDuration renders a duration as its canonical decimal string at
// millisecond precision, trailing zeros preserved.
func FormatDuration(d decimal.Decimal) string {
	return d.StringFixed(outputScale)
}

// parseWhole parses a digits-only hours or minutes segment; empty is zero.
func parseWhole(segment string) (decimal.Decimal, error) {
	if segment == "" {
		return decimal.Zero, nil
	}

	if !isDigits(segment) {
		return decimal.Zero, errors.New("not a whole number")
	}

	return decimal.NewFromString(segment)
}

// parseSeconds parses the seconds segment, allowing one decimal point
// separating whole seconds from milliseconds. Both sides may be empty.
func parseSeconds(segment string) (decimal.Decimal, error) {
	whole, fraction, hasFraction := strings.Cut(segment, ".")

	if !isDigits(whole) && whole != "" {
		return decimal.Zero, errors.New("not a number")
	}

	if hasFraction && !isDigits(fraction) && fraction != "" {
		return decimal.Zero, errors.New("not a number")
	}

	if whole == "" {
		whole = "0"
	}

	if !hasFraction || fraction == "" {
		return decimal.NewFromString(whole)
	}

	return decimal.NewFromString(whole + "." + fraction)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
