package argparse

import (
	"strconv"
	"time"
)

// Kind is the type tag carried by every Value and used as the expected type of a flag.
type Kind uint8

const (
	// KindNone marks an unbound expected type or the zero Value.
	KindNone Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
	KindDuration
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float64"
	case KindDuration:
		return "duration"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Scalar is the closed set of Go types a flag value can be retrieved as.
type Scalar interface {
	string | bool | int | float64 | time.Duration
}

// Value is a tagged scalar. Only the field selected by kind is meaningful.
type Value struct {
	kind Kind
	s    string
	b    bool
	i    int
	f    float64
	d    time.Duration
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bool returns a bool Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an int Value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Float returns a float64 Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Duration returns a time.Duration Value.
func Duration(d time.Duration) Value { return Value{kind: KindDuration, d: d} }

// ValueOf wraps a Scalar into a Value.
func ValueOf[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case float64:
		return Float(x)
	case time.Duration:
		return Duration(x)
	}
	return Value{}
}

// Kind returns the type tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsZero reports whether v carries no value at all.
func (v Value) IsZero() bool { return v.kind == KindNone }

// String renders the value the way it would be typed on a command line.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.Itoa(v.i)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDuration:
		return v.d.String()
	case KindNone:
	}
	return ""
}

// KindOf returns the Kind that corresponds to T.
func KindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case string:
		return KindString
	case bool:
		return KindBool
	case int:
		return KindInt
	case float64:
		return KindFloat
	case time.Duration:
		return KindDuration
	}
	return KindNone
}

// As extracts v as T. ok is false when the kinds differ.
func As[T Scalar](v Value) (out T, ok bool) {
	if v.kind != KindOf[T]() {
		return out, false
	}
	switch p := any(&out).(type) {
	case *string:
		*p = v.s
	case *bool:
		*p = v.b
	case *int:
		*p = v.i
	case *float64:
		*p = v.f
	case *time.Duration:
		*p = v.d
	}
	return out, true
}
