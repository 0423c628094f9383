// Package tabular loads delimited text into typed, ordered datasets
// Pipeline order
// 1 Read headers and rows trimming surrounding whitespace
// 2 Normalize each cell to absent int float bool or text
// 3 Infer a semantic tag per column from the normalized values
// 4 Encode records as a JSON array preserving header order
package tabular

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// ValueKind discriminates the normalized forms a cell can take
type ValueKind uint8

const (
	// KindAbsent is an empty or null-like cell
	KindAbsent ValueKind = iota
	// KindInt is a whole number
	KindInt
	// KindFloat is a decimal number
	KindFloat
	// KindBool is a true or false literal
	KindBool
	// KindText is anything else
	KindText
)

// Value is one normalized cell
// Exactly one payload field is meaningful depending on Kind
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
	Text  string
}

var (
	intPat   = regexp.MustCompile(`^-?\d+$`)
	floatPat = regexp.MustCompile(`^-?\d*\.\d+$`)
)

// nullLikes are treated as absent after lowercasing
var nullLikes = map[string]struct{}{
	"":     {},
	"null": {},
	"none": {},
	"n/a":  {},
}

// NormalizeCell maps a raw cell to its typed Value
// Checks run in order: null-likes, integer, decimal, boolean, text
func NormalizeCell(raw string) Value {
	s := strings.TrimSpace(raw)
	if _, ok := nullLikes[strings.ToLower(s)]; ok {
		return Value{Kind: KindAbsent}
	}
	if intPat.MatchString(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Value{Kind: KindInt, Int: n}
		}
		// out of int64 range, keep the digits as text
		return Value{Kind: KindText, Text: s}
	}
	if floatPat.MatchString(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Value{Kind: KindFloat, Float: f}
		}
		return Value{Kind: KindText, Text: s}
	}
	switch strings.ToLower(s) {
	case "true":
		return Value{Kind: KindBool, Bool: true}
	case "false":
		return Value{Kind: KindBool, Bool: false}
	}
	return Value{Kind: KindText, Text: s}
}

// Absent reports whether the cell held no usable value
func (v Value) Absent() bool { return v.Kind == KindAbsent }

// Numeric reports whether the cell is an int or a float
func (v Value) Numeric() bool { return v.Kind == KindInt || v.Kind == KindFloat }

// Any returns the cell as a plain Go value (nil for absent)
func (v Value) Any() any {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindBool:
		return v.Bool
	case KindText:
		return v.Text
	default:
		return nil
	}
}

// String renders the cell for display and pattern checks
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindText:
		return v.Text
	default:
		return ""
	}
}

// MarshalJSON encodes the underlying value, null for absent
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}
