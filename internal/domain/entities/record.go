package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is a raw key-value payload as returned by the Moto Manager API.
//
// The upstream schema is loose (years come as strings or numbers, prices as ints or
// floats, any field may be null or missing), so reads go through the lenient
// accessors below instead of a strict struct decode.
type Record map[string]any

// Value returns the raw value stored under key. Null values report ok=false.
func (r Record) Value(key string) (any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Text returns the string form of the value under key, or "" when it is missing or null.
func (r Record) Text(key string) string {
	v, ok := r.Value(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}

// Decimal returns the numeric value under key. Missing, null or non-numeric values
// come back with Valid=false.
func (r Record) Decimal(key string) decimal.NullDecimal {
	v, ok := r.Value(key)
	if !ok {
		return decimal.NullDecimal{}
	}

	switch t := v.(type) {
	case json.Number:
		return parseDecimal(t.String())
	case string:
		return parseDecimal(t)
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(t))
	case float32:
		return decimal.NewNullDecimal(decimal.NewFromFloat32(t))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(t)))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(t))
	case int32:
		return decimal.NewNullDecimal(decimal.NewFromInt32(t))
	case decimal.Decimal:
		return decimal.NewNullDecimal(t)
	default:
		return decimal.NullDecimal{}
	}
}

// Records returns the nested objects stored as a list under key. Entries that are not
// objects are skipped.
func (r Record) Records(key string) []Record {
	v, ok := r.Value(key)
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]Record, 0, len(list))
	for _, item := range list {
		switch m := item.(type) {
		case map[string]any:
			out = append(out, Record(m))
		case Record:
			out = append(out, m)
		}
	}
	return out
}

func parseDecimal(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
