package validate

import (
	"math"
	"strconv"
	"strings"
)

// Number parses raw as a decimal number and returns it when it lies inside
// [min, max]. Anything else (empty input, parse failure, NaN, Inf, out of
// range) yields def.
func Number(raw string, def, min, max float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return Value(v, def, min, max)
}

// Value is the already-parsed form of Number.
func Value(v, def, min, max float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	if v < min || v > max {
		return def
	}
	return v
}

// Int parses raw as a base-10 integer. ok is false for empty or
// non-integer input; range checks are left to the caller so it can report
// a precise reason.
func Int(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}

// Float parses raw as a finite decimal. ok is false for empty input,
// parse failures, NaN and Inf.
func Float(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
