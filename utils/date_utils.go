package utils

import "time"

// dateFormats are tried in order when parsing dates from query parameters or
// source rows. Spreadsheet exports are inconsistent about this, so be lenient.
var dateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
}

// ParseFlexibleDate parses a date string in any of the accepted formats.
func ParseFlexibleDate(value string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
