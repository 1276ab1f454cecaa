package argvopts

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind is the type of Value
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a value of an Option: boolean, integer, floating point number or string
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// ParseValue returns Int or Float if `text` is a Go numeric literal and String otherwise.
// Integer literals out of int64 range stay String
func ParseValue(text string) Value {
	i, err := parseInt(text)
	if err == nil {
		return Int(i)
	}
	if errors.Is(err, strconv.ErrRange) {
		return String(text)
	}
	if f, ok := parseFloat(text); ok {
		return Float(f)
	}
	return String(text)
}

func parseInt(text string) (int64, error) {
	i, err := strconv.ParseInt(text, 10, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return i, err
	}
	// base prefixes only, "017" is not octal
	digits := strings.TrimLeft(text, "+-")
	if len(digits) < 2 || digits[0] != '0' || !strings.ContainsRune("xXoObB", rune(digits[1])) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseInt(text, 0, 64)
}

func parseFloat(text string) (float64, bool) {
	if !strings.ContainsAny(text, "0123456789") {
		// rejects "inf", "nan" and friends
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Bool() (b bool, ok bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Int() (i int64, ok bool) {
	return v.i, v.kind == KindInt
}

// Float returns the value as float64. Int values are converted
func (v Value) Float() (f float64, ok bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

func (v Value) Str() (s string, ok bool) {
	return v.s, v.kind == KindString
}

// IsNumeric reports whether the value is Int or Float
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// Text returns the textual form of the value
func (v Value) Text() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

func (v Value) String() string {
	if v.kind == KindString {
		return strconv.Quote(v.s)
	}
	return v.Text()
}

// Interface returns the value as bool, int64, float64 or string
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return v.s
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML implements the yaml InterfaceMarshaler interface
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
