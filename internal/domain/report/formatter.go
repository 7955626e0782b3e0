package report

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/matteusmoreno/generate-pdf-moto-manager-service/internal/domain/entities"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Placeholder replaces missing or empty text fields.
	Placeholder = "N/A"
	// DatePlaceholder replaces missing or unparsable timestamps.
	DatePlaceholder = "-"

	dateLayout     = "02/01/2006"
	dateTimeLayout = "02/01/2006 15:04"
)

// Layouts accepted for upstream timestamps, tried in order. The Java backend serializes
// LocalDateTime without zone and with microseconds ("2025-04-03T12:13:42.518959").
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatCurrency renders amount with two decimal places; absent amounts render as "0.00".
func FormatCurrency(amount decimal.NullDecimal) string {
	if !amount.Valid {
		return decimal.Zero.StringFixed(2)
	}
	return amount.Decimal.StringFixed(2)
}

// FormatQuantity renders a quantity without trailing zeros; absent quantities render as "0".
func FormatQuantity(q decimal.NullDecimal) string {
	if !q.Valid {
		return "0"
	}
	return q.Decimal.String()
}

// FormatDate renders an ISO-8601 timestamp as dd/mm/yyyy, or DatePlaceholder.
func FormatDate(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return DatePlaceholder
	}
	return t.Format(dateLayout)
}

// FormatDateTime renders an ISO-8601 timestamp as dd/mm/yyyy HH:MM, or DatePlaceholder.
func FormatDateTime(iso string) string {
	t, ok := parseTimestamp(iso)
	if !ok {
		return DatePlaceholder
	}
	return t.Format(dateTimeLayout)
}

func parseTimestamp(iso string) (time.Time, bool) {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SafeGet returns the string form of record[key], or def when the value is missing,
// null or empty.
func SafeGet(record entities.Record, key, def string) string {
	return orDefault(record.Text(key), def)
}

// Capitalize upper-cases the first letter and lower-cases the rest ("HONDA" -> "Honda").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	lower := cases.Lower(language.BrazilianPortuguese).String(s)
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToTitle(r)) + lower[size:]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// capitalizeValue leaves placeholders untouched.
func capitalizeValue(s string) string {
	if s == Placeholder {
		return s
	}
	return Capitalize(s)
}
