// Package normalizer provides functionality for validating and rewriting CSV
// record fields into standard formats.
package normalizer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field validation errors.
var (
	ErrTimestampFormat = errors.New("invalid timestamp")
	ErrZipFormat       = errors.New("invalid zipcode")
)

// timestampLayout matches M/D/YY H:MM:SS AM/PM with a 12-hour clock.
const timestampLayout = "1/2/06 3:04:05 PM"

// Source and destination zones are fixed UTC offsets. No daylight-saving
// rules apply to either; the conversion is always a flat +3h of wall clock.
var (
	sourceZone      = time.FixedZone("-08:00", -8*60*60)
	destinationZone = time.FixedZone("-05:00", -5*60*60)
)

var zipPattern = regexp.MustCompile(`^[0-9]+$`)

var upper = cases.Upper(language.Und)

// NormalizeTimestamp parses a US-style 12-hour timestamp in the fixed
// source zone and renders it as RFC 3339 in the fixed destination zone.
func NormalizeTimestamp(value string) (string, error) {
	t, err := time.ParseInLocation(timestampLayout, value, sourceZone)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTimestampFormat, value)
	}

	// The stdlib accepts hour 0 on a 12-hour clock; valid hours are 1-12.
	clock := value[strings.IndexByte(value, ' ')+1:]

	hour, _, _ := strings.Cut(clock, ":")
	if strings.TrimLeft(hour, "0") == "" {
		return "", fmt.Errorf("%w: %q", ErrTimestampFormat, value)
	}

	return t.In(destinationZone).Format(time.RFC3339), nil
}

// NormalizeZip validates that a zipcode consists only of ASCII digits and
// left-pads it with zeros to 5 characters. Longer zipcodes pass through
// unchanged; padding is applied, truncation never is.
func NormalizeZip(value string) (string, error) {
	if !zipPattern.MatchString(value) {
		return "", fmt.Errorf("%w: %q", ErrZipFormat, value)
	}

	if len(value) < 5 {
		return strings.Repeat("0", 5-len(value)) + value, nil
	}

	return value, nil
}

// NormalizeName uppercases a name using full Unicode case mapping.
func NormalizeName(value string) string {
	return upper.String(value)
}
