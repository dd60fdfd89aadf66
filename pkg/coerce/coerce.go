// Package coerce turns the text of a declared annotation into a typed value.
//
// The precedence is fixed: "true", "false" and "null" literals first, then
// numbers whose canonical rendering reproduces the text exactly, then
// brace or bracket delimited JSON, and finally the raw text.
package coerce

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var ErrMalformedStructure = errors.New("malformed structured annotation")

var structured = regexp.MustCompile(`(?s)^(?:\{.*\}|\[.*\])$`)

// Value coerces text, keeping the raw text when structured decoding fails.
func Value(text string) any {
	v, _ := Decode(text)
	return v
}

// Decode is Value that also reports a swallowed structured decoding error.
// The returned value is always usable: on error it is the raw text.
func Decode(text string) (any, error) {
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}
	if f, ok := Number(text); ok {
		return f, nil
	}
	if Structured(text) {
		var v any
		if err := json.Unmarshal([]byte(text), &v); err != nil {
			return text, fmt.Errorf("%w: %w", ErrMalformedStructure, err)
		}
		return v, nil
	}
	return text, nil
}

// Number parses text as a number only if rendering the number again gives
// back the same text, so "42" is a number and "4.0" or "042" are not.
func Number(text string) (float64, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if FormatNumber(f) != text {
		return 0, false
	}
	return f, true
}

// Structured reports whether text has a whole-object or whole-array shape.
func Structured(text string) bool {
	return structured.MatchString(text)
}

// FormatNumber renders f using the shortest round-trip digits, in plain
// notation for magnitudes in [1e-6, 1e21) and exponent notation otherwise.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	return mant + "e" + sign + digits
}
