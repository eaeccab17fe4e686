package utils

import (
	"fmt"
	"strings"
	"time"
)

const transactionDateLayout = "2006-01-02T15:04:05"

// maximum fractional-second digits kept when normalizing (microseconds)
const maxFractionDigits = 6

// NormalizeTransactionDate parses a Pesapal transaction_date string of the
// form YYYY-MM-DDTHH:MM:SS[.ffffff...][Z] into a naive timestamp. A trailing
// Z is stripped without converting the wall-clock digits, and fractional
// seconds are truncated (not rounded) to microsecond precision.
func NormalizeTransactionDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("transaction_date is empty")
	}

	trimmed := strings.TrimSuffix(raw, "Z")

	if idx := strings.Index(trimmed, "."); idx >= 0 {
		whole := trimmed[:idx]
		fraction := trimmed[idx+1:]
		if len(fraction) > maxFractionDigits {
			fraction = fraction[:maxFractionDigits]
		}
		trimmed = whole + "." + fraction
	}

	parsed, err := time.Parse(transactionDateLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparsable transaction_date %q: %w", raw, err)
	}

	return parsed, nil
}
