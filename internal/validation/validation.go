// Package validation checks loosely typed payloads against declarative field rules.
//
// A Schema is an ordered list of fields; each field carries predicate/message
// pairs evaluated in order. The first failing rule of a field produces that
// field's message, and every field is checked so callers get all failures at once.
package validation

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldError is the message for a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field failures. A nil Errors means the values are valid.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages returns messages keyed by field name.
func (e Errors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		out[fe.Field] = fe.Message
	}
	return out
}

// Predicate reports whether a value passes. present is false when the key is absent.
type Predicate func(value any, present bool) bool

// Rule pairs a predicate with the message reported when it fails.
type Rule struct {
	Test    Predicate
	Message string
}

// Field is a named value and the rules checked against it, in order.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is the ordered set of fields of one payload.
type Schema struct {
	Fields []Field
}

// Validate runs every field's rules against values.
func (s Schema) Validate(values map[string]any) Errors {
	var errs Errors
	for _, field := range s.Fields {
		value, present := values[field.Name]
		for _, rule := range field.Rules {
			if !rule.Test(value, present) {
				errs = append(errs, FieldError{Field: field.Name, Message: rule.Message})
				break
			}
		}
	}
	return errs
}

// Required fails on absent keys, nulls and blank strings.
func Required(message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		if !present || v == nil {
			return false
		}
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s) != ""
		}
		return true
	}}
}

// String fails when a present, non-null value is not a string.
func String(message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		if !present || v == nil {
			return true
		}
		_, ok := v.(string)
		return ok
	}}
}

// MinLen fails when a string is shorter than n runes after trimming.
func MinLen(n int, message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
	}}
}

// MaxLen fails when a string is longer than n runes after trimming.
func MaxLen(n int, message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		s, ok := v.(string)
		if !ok {
			return true
		}
		return utf8.RuneCountInString(strings.TrimSpace(s)) <= n
	}}
}

// Number fails when a present value cannot be read as a number.
func Number(message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		if !present || v == nil {
			return true
		}
		_, ok := toFloat(v)
		return ok
	}}
}

// Integer fails when a numeric value has a fractional part.
func Integer(message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		f, ok := toFloat(v)
		if !ok {
			return true
		}
		return f == math.Trunc(f)
	}}
}

// MaxSafeInteger is the largest id accepted, so every id is exact as a float64.
const MaxSafeInteger = 1<<53 - 1

// SafeInteger fails when a numeric value is beyond ±MaxSafeInteger.
func SafeInteger(message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		f, ok := toFloat(v)
		if !ok {
			return true
		}
		return math.Abs(f) <= MaxSafeInteger
	}}
}

// Positive fails when a numeric value is zero or negative.
func Positive(message string) Rule {
	return Rule{Message: message, Test: func(v any, present bool) bool {
		f, ok := toFloat(v)
		if !ok {
			return true
		}
		return f > 0
	}}
}

// TrimmedString returns the trimmed string under key, or "" when absent or not a string.
func TrimmedString(values map[string]any, key string) string {
	s, _ := values[key].(string)
	return strings.TrimSpace(s)
}

// Uint returns the positive integer under key. Callers validate first.
func Uint(values map[string]any, key string) uint64 {
	f, ok := toFloat(values[key])
	if !ok || f <= 0 || f > MaxSafeInteger || f != math.Trunc(f) {
		return 0
	}
	return uint64(f)
}

// decimalNumber matches plain decimal notation, so "Inf", "NaN" and hex floats are not numbers.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// toFloat reads a finite decimal number.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(n.String(), 64)
		if err != nil || !decimalNumber.MatchString(n.String()) {
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if !decimalNumber.MatchString(s) {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
