package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Number is a numeric field as delivered by the broker API, which sends
// amounts either as JSON strings ("1250.50") or JSON numbers. The raw text
// is kept; Float64 parses it on demand.
type Number string

// Num builds a Number from a float.
func Num(f float64) Number {
	return Number(strconv.FormatFloat(f, 'f', -1, 64))
}

// UnmarshalJSON accepts a string, a number or null.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = Number(str)
		return nil
	}
	*n = Number(s)
	return nil
}

// MarshalJSON writes numeric text as a JSON number and anything else as a string.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	if _, err := strconv.ParseFloat(string(n), 64); err == nil {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// IsSet reports whether the field was present.
func (n Number) IsSet() bool {
	return n != ""
}

// Float64 parses the value. Missing or malformed input yields NaN.
func (n Number) Float64() float64 {
	s := strings.TrimSpace(string(n))
	if s == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// String returns the raw text.
func (n Number) String() string {
	return string(n)
}

// Round2 rounds the exact binary value of f half away from zero to 2
// decimal places, so 1.005 (stored as 1.00499...) becomes 1.00.
// NaN and infinities are returned unchanged.
func Round2(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	r, _ := decimal.NewFromFloatWithExponent(f, -2).Float64()
	return r
}

// Fixed2 formats f with exactly 2 decimal places, rounding as Round2 does.
func Fixed2(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	return decimal.NewFromFloatWithExponent(f, -2).StringFixed(2)
}

// Ratio returns part/whole, or 0 when whole is zero.
func Ratio(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole
}
