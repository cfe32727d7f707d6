// Package schema type-checks decoded JSON documents against an ordered list
// of field declarations.
package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Type is a JSON type name.
type Type string

const (
	String  Type = "string"
	Number  Type = "number"
	Integer Type = "integer"
	Boolean Type = "boolean"
	Object  Type = "object"
	Array   Type = "array"
)

// Field declares the expected type of one document key.
type Field struct {
	Name string
	Type Type
}

// Schema is an ordered set of field declarations. Fields are checked in
// declaration order so the first violation reported is deterministic.
type Schema []Field

// FieldError describes a field whose value does not match its declared type.
type FieldError struct {
	Field    string
	Expected Type
	Actual   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("$.%s: expected type %q, got %q", e.Field, e.Expected, e.Actual)
}

// Check returns the first type violation in doc, or nil. Keys missing from
// doc and keys not declared in s are not checked.
func Check(s Schema, doc map[string]any) error {
	for _, f := range s {
		v, ok := doc[f.Name]
		if !ok {
			continue
		}
		if !matches(f.Type, v) {
			return &FieldError{Field: f.Name, Expected: f.Type, Actual: jsonType(v)}
		}
	}
	return nil
}

// minInt bounds Integer to values that convert to int without overflow.
const minInt = float64(math.MinInt)

func matches(expected Type, value any) bool {
	actual := jsonType(value)
	switch expected {
	case Integer:
		if f, ok := ToFloat(value); ok {
			return f == math.Trunc(f) && f >= minInt && f < -minInt
		}
		return false
	case Number:
		return actual == string(Number) || actual == string(Integer)
	}
	return actual == string(expected)
}

func jsonType(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case int, int64:
		return "integer"
	default:
		return reflect.TypeOf(v).String()
	}
}

// ToFloat reports the numeric value of a decoded JSON number.
func ToFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
