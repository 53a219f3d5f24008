package currency

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice derives a numeric value from a currency-symbol-prefixed price
// string such as "₹49,999". The second return value reports whether the
// string was parseable; callers are expected to drop records for which it
// is false rather than treat them as zero-priced.
func ParsePrice(price string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(price)
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}

	return value, true
}

// ParseRating parses a rating string like "4.7". Sentinel values such as
// "N/A" are not parseable.
func ParseRating(rating string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
