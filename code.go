package xerror

import (
	"encoding/json"
	"math"
	"strconv"
)

// Code is a stable, machine-readable error identifier.
// A Code holds either a string or a non-negative integer. The zero Code
// means "no code".
type Code struct {
	text    string
	num     int
	numeric bool
}

// StringCode returns a string Code. An empty string yields the zero Code.
func StringCode(s string) Code {
	return Code{text: s}
}

// IntCode returns an integer Code.
// Negative values are not valid codes and yield the zero Code.
func IntCode(n int) Code {
	if n < 0 {
		return Code{}
	}
	return Code{num: n, numeric: true}
}

// IsZero reports whether no code is set.
func (c Code) IsZero() bool {
	return !c.numeric && c.text == ""
}

// Int returns the integer value and true for integer codes.
func (c Code) Int() (int, bool) {
	return c.num, c.numeric
}

// String returns the code as text. Integer codes are rendered in base 10.
func (c Code) String() string {
	if c.numeric {
		return strconv.Itoa(c.num)
	}
	return c.text
}

// value returns the code as a plain Go value: int, string, or nil.
func (c Code) value() any {
	switch {
	case c.numeric:
		return c.num
	case c.text != "":
		return c.text
	default:
		return nil
	}
}

// MarshalJSON encodes integer codes as JSON numbers and string codes as
// JSON strings. The zero Code encodes as null.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.value())
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (c Code) MarshalYAML() (interface{}, error) {
	return c.value(), nil
}

// parseCode normalises a Config.Code value.
// It accepts strings, Code values, non-negative Go integers and whole
// non-negative floats. The empty string is treated as no code. The boolean
// true is reported through derive so the caller can build a code from the
// error name. Everything else is dropped.
func parseCode(v any) (code Code, derive bool) {
	switch c := v.(type) {
	case nil:
		return Code{}, false
	case bool:
		return Code{}, c
	case Code:
		return c, false
	case string:
		return StringCode(c), false
	case int:
		return IntCode(c), false
	case int8:
		return IntCode(int(c)), false
	case int16:
		return IntCode(int(c)), false
	case int32:
		return IntCode(int(c)), false
	case int64:
		if c < 0 || int64(int(c)) != c {
			return Code{}, false
		}
		return IntCode(int(c)), false
	case uint:
		return fromUnsigned(uint64(c)), false
	case uint8:
		return fromUnsigned(uint64(c)), false
	case uint16:
		return fromUnsigned(uint64(c)), false
	case uint32:
		return fromUnsigned(uint64(c)), false
	case uint64:
		return fromUnsigned(c), false
	case float32:
		return fromFloat(float64(c)), false
	case float64:
		return fromFloat(c), false
	default:
		return Code{}, false
	}
}

// fromFloat converts a whole, non-negative float such as a decoded JSON
// number to a Code. Fractions and out-of-range values are dropped.
func fromFloat(f float64) Code {
	if f < 0 || f != math.Trunc(f) || f >= float64(math.MaxInt64) {
		return Code{}
	}
	return fromUnsigned(uint64(f))
}

// fromUnsigned converts u to a Code, dropping values that overflow int.
func fromUnsigned(u uint64) Code {
	if u > uint64(int(^uint(0)>>1)) {
		return Code{}
	}
	return IntCode(int(u))
}
