// Package value defines the canonical, language-neutral value type used for
// test arguments, expected results and parsed execution results.
package value

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is an immutable tagged union over the canonical value space.
// The zero value is Null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
	list []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Int returns an integer value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating-point value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Str returns a string value.
func Str(v string) Value { return Value{kind: KindString, s: v} }

// List returns a list value holding a copy of the supplied elements.
func List(elems ...Value) Value {
	copied := make([]Value, len(elems))
	copy(copied, elems)
	return Value{kind: KindList, list: copied}
}

// Ints is shorthand for a list of integers.
func Ints(vs ...int64) Value {
	elems := make([]Value, len(vs))
	for i, v := range vs {
		elems[i] = Int(v)
	}
	return Value{kind: KindList, list: elems}
}

// Strs is shorthand for a list of strings.
func Strs(vs ...string) Value {
	elems := make([]Value, len(vs))
	for i, v := range vs {
		elems[i] = Str(v)
	}
	return Value{kind: KindList, list: elems}
}

// Kind reports the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt returns the integer payload. Valid only when Kind is KindInt.
func (v Value) AsInt() int64 { return v.i }

// AsFloat returns the numeric payload as a float, accepting both numeric kinds.
func (v Value) AsFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// AsBool returns the boolean payload. Valid only when Kind is KindBool.
func (v Value) AsBool() bool { return v.b }

// AsString returns the string payload. Valid only when Kind is KindString.
func (v Value) AsString() string { return v.s }

// Elems returns the list elements. Valid only when Kind is KindList. The
// returned slice must not be mutated.
func (v Value) Elems() []Value { return v.list }

// IsNumeric reports whether the value is an integer or a float.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Equal compares two values structurally. Integers and floats compare by
// numeric value because textual and JSON encodings cannot preserve the
// distinction between 5 and 5.0 across language boundaries.
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return a.AsFloat() == b.AsFloat()
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// FromAny converts a dynamically-typed value, as produced by encoding/json
// decoding, into canonical form. json.Number inputs keep integers exact.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(v), nil
	case string:
		return Str(v), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case float64:
		if v == float64(int64(v)) {
			return Int(int64(v)), nil
		}
		return Float(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return Null(), fmt.Errorf("value: parse number %q: %w", v.String(), err)
		}
		return Float(f), nil
	case []any:
		elems := make([]Value, len(v))
		for i, e := range v {
			converted, err := FromAny(e)
			if err != nil {
				return Null(), err
			}
			elems[i] = converted
		}
		return Value{kind: KindList, list: elems}, nil
	default:
		return Null(), fmt.Errorf("value: unsupported host type %T", raw)
	}
}

// AsAny returns the value as plain Go data suitable for encoding/json.
func (v Value) AsAny() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	case KindString:
		return v.s
	case KindList:
		out := make([]any, len(v.list))
		for i, e := range v.list {
			out[i] = e.AsAny()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the value as its natural JSON form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.AsAny())
}

// UnmarshalJSON decodes any JSON value into canonical form. Numbers are
// decoded via json.Number so integral values stay integers.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String renders a compact human-readable form, close to the JSON encoding.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return FormatFloat(v.f)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return "?"
	}
}

// Preview returns a single-line rendering truncated to max runes. Truncation
// is marked with a trailing ellipsis and never splits a rune.
func (v Value) Preview(max int) string {
	s := v.String()
	if max <= 0 || len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i] + "…"
		}
		n++
	}
	return s
}

// FormatFloat renders a float literal that always carries a decimal point,
// so it stays distinguishable from an integer literal in generated source.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
