// Package validate parses raw form text into typed values. The mobile client
// submits every numeric field as free text (with either comma or period as
// the decimal separator), so all parsing and range checks live here instead
// of in struct tags.
package validate

import (
	"strconv"
	"strings"
	"time"

	"lavkapos/internal/apierror"
)

// DateLayout is the strict calendar-date format used across the document
// (order dates, daily stats keys, report filters).
const DateLayout = "2006-01-02"

// Float parses text as a number, accepting comma or period as the decimal
// separator and ignoring surrounding whitespace.
func Float(text, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(text), ",", "."), 64)
	if err != nil {
		return 0, apierror.E(apierror.InvalidInput, "%s: enter a valid number", field)
	}
	return v, nil
}

// PositiveFloat parses text like Float and additionally rejects values <= 0.
func PositiveFloat(text, field string) (float64, error) {
	v, err := Float(text, field)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, apierror.E(apierror.InvalidInput, "%s must be positive", field)
	}
	return v, nil
}

// NonEmpty trims text and rejects empty results.
func NonEmpty(text, field string) (string, error) {
	v := strings.TrimSpace(text)
	if v == "" {
		return "", apierror.E(apierror.InvalidInput, "%s cannot be empty", field)
	}
	return v, nil
}

// ISODate parses a strict YYYY-MM-DD date.
func ISODate(text string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, apierror.E(apierror.InvalidInput, "invalid date format (expected YYYY-MM-DD)")
	}
	return t, nil
}
