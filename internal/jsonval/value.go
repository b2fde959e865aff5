// Package jsonval reads typed values out of a decoded JSON document.
//
// Alpha Vantage encodes nearly everything as strings ("125.0000", "2025-12-09",
// "08:00"), omits fields freely, and mixes nulls in. Every accessor here takes a
// caller-supplied default and degrades to it on a missing key, a null, or a value
// that will not parse. Nothing in this package panics or returns an error.
package jsonval

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used throughout the API.
const DateLayout = "2006-01-02"

// ClockLayout is the time-of-day format used for market open/close fields.
const ClockLayout = "15:04"

// Object is a decoded JSON object.
type Object map[string]any

// Parse decodes a JSON payload into an Object. The payload root must be an object.
func Parse(data []byte) (Object, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// AsObject converts a raw decoded value to an Object.
func AsObject(v any) (Object, bool) {
	switch o := v.(type) {
	case Object:
		return o, true
	case map[string]any:
		return o, true
	}
	return nil, false
}

// Has reports whether the key is present, regardless of its value.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Object returns the named child object.
func (o Object) Object(key string) (Object, bool) {
	v, ok := o[key]
	if !ok {
		return nil, false
	}
	return AsObject(v)
}

// Array returns the named child array.
func (o Object) Array(key string) ([]any, bool) {
	v, ok := o[key]
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}

// String returns the named string field, or def when absent or not a string.
func (o Object) String(key, def string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return def
}

// Decimal parses the named string-encoded decimal field.
func (o Object) Decimal(key string, def decimal.Decimal) decimal.Decimal {
	s, ok := o[key].(string)
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return d
}

// Float parses the named string-encoded floating-point field.
func (o Object) Float(key string, def float64) float64 {
	s, ok := o[key].(string)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// Long parses the named string-encoded integer field.
func (o Object) Long(key string, def int64) int64 {
	s, ok := o[key].(string)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Int parses the named string-encoded integer field.
func (o Object) Int(key string, def int) int {
	s, ok := o[key].(string)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// NullableInt parses a count field that the API reports either as a
// decimal-formatted string ("21.0000") or as an explicit null.
//
// A missing key or a null value yields nil. An unparsable non-null value yields
// a literal 0, not nil. The asymmetry is inherited upstream behavior; callers
// depend on null meaning "no figure reported" and 0 meaning "present but junk".
func (o Object) NullableInt(key string) *int {
	v, ok := o[key]
	if !ok || v == nil {
		return nil
	}
	n := 0
	if s, ok := v.(string); ok {
		if d, err := decimal.NewFromString(s); err == nil {
			n = int(d.IntPart())
		}
	}
	return &n
}

// Date parses the named calendar-date field. The result is midnight UTC.
func (o Object) Date(key string, def time.Time) time.Time {
	s, ok := o[key].(string)
	if !ok {
		return def
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return def
	}
	return t
}

// Clock parses the named time-of-day field ("08:00").
func (o Object) Clock(key string, def time.Time) time.Time {
	s, ok := o[key].(string)
	if !ok {
		return def
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return def
	}
	return t
}
