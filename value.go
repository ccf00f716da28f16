package wasmcapture

import (
	"encoding/json"
	"strconv"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	ValueAbsent ValueKind = iota
	ValueNumber
	ValueString
	ValueBool
)

var valueKindNames = [...]string{
	ValueAbsent: "absent",
	ValueNumber: "number",
	ValueString: "string",
	ValueBool:   "bool",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "unknown"
}

// Value is a closed union over the scalar shapes a capture field can take:
// number, string, boolean, or absent. JSON null, arrays, and objects all
// decode to the absent variant; each consumer states its own fallback for it.
// The zero Value is absent.
type Value struct {
	str  string
	num  float64
	kind ValueKind
	b    bool
}

// NumberValue returns a Value holding a number.
func NumberValue(v float64) Value { return Value{kind: ValueNumber, num: v} }

// StringValue returns a Value holding a string.
func StringValue(s string) Value { return Value{kind: ValueString, str: s} }

// BoolValue returns a Value holding a boolean.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// Kind returns which variant the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Present reports whether the value holds any variant other than absent.
func (v Value) Present() bool { return v.kind != ValueAbsent }

// Number returns the numeric variant, or 0 for any other kind.
func (v Value) Number() float64 { return v.num }

// Text returns the string variant, or "" for any other kind.
func (v Value) Text() string { return v.str }

// Bool returns the boolean variant, or false for any other kind.
func (v Value) Bool() bool { return v.b }

// Format renders the value for display. Numbers use the shortest
// representation that round-trips; the absent variant renders as an ellipsis.
func (v Value) Format() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case ValueString:
		return v.str
	case ValueBool:
		return strconv.FormatBool(v.b)
	default:
		return "..."
	}
}

// UnmarshalJSON decodes any scalar JSON token into the matching variant.
// Non-scalar tokens (null, arrays, objects) decode to absent.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case float64:
		*v = Value{kind: ValueNumber, num: t}
	case string:
		*v = Value{kind: ValueString, str: t}
	case bool:
		*v = Value{kind: ValueBool, b: t}
	default:
		*v = Value{}
	}
	return nil
}
