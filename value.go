package datalist

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValueType is the declared type of a column's values.
type ValueType int

const (
	TypeBool ValueType = iota
	TypeString
	TypeColor
	TypeObject
	TypeShort
	TypeLong
	TypeDateTime
	TypeInt
	TypeDouble
	TypeFloat
)

var valueTypeNames = [...]string{
	TypeBool:     "bool",
	TypeString:   "string",
	TypeColor:    "color",
	TypeObject:   "object",
	TypeShort:    "short",
	TypeLong:     "long",
	TypeDateTime: "datetime",
	TypeInt:      "int",
	TypeDouble:   "double",
	TypeFloat:    "float",
}

func (t ValueType) String() string {
	if t < 0 || int(t) >= len(valueTypeNames) {
		return fmt.Sprintf("ValueType(%d)", int(t))
	}
	return valueTypeNames[t]
}

// ParseValueType maps a type name ("int", "string", ...) to a ValueType.
func ParseValueType(name string) (ValueType, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range valueTypeNames {
		if n == name {
			return ValueType(i), true
		}
	}
	return 0, false
}

// Sortable reports whether values of this type have an ordering.
// Object and color values never do.
func (t ValueType) Sortable() bool {
	return t != TypeObject && t != TypeColor
}

// Editable reports whether values of this type can be typed in by a user.
func (t ValueType) Editable() bool {
	return t != TypeObject && t != TypeColor
}

// Numeric reports whether the type holds an integer or floating point number.
func (t ValueType) Numeric() bool {
	switch t {
	case TypeShort, TypeInt, TypeLong, TypeFloat, TypeDouble:
		return true
	}
	return false
}

// Value is a single cell value: either null or a payload of one ValueType.
// The zero Value is null.
type Value struct {
	kind  ValueType
	valid bool
	num   int64 // bool, short, int, long, color
	flt   float64
	str   string
	tm    time.Time
	obj   any
}

// Null returns the null value.
func Null() Value { return Value{} }

func Bool(b bool) Value {
	v := Value{kind: TypeBool, valid: true}
	if b {
		v.num = 1
	}
	return v
}

// Constructors for non-null payloads of each value type.

func String(s string) Value      { return Value{kind: TypeString, valid: true, str: s} }
func Short(n int16) Value        { return Value{kind: TypeShort, valid: true, num: int64(n)} }
func Int(n int32) Value          { return Value{kind: TypeInt, valid: true, num: int64(n)} }
func Long(n int64) Value         { return Value{kind: TypeLong, valid: true, num: n} }
func Float(f float32) Value      { return Value{kind: TypeFloat, valid: true, flt: float64(f)} }
func Double(f float64) Value     { return Value{kind: TypeDouble, valid: true, flt: f} }
func DateTime(t time.Time) Value { return Value{kind: TypeDateTime, valid: true, tm: t} }
func ColorValue(c Color) Value   { return Value{kind: TypeColor, valid: true, num: int64(c)} }
func Object(o any) Value         { return Value{kind: TypeObject, valid: o != nil, obj: o} }

func (v Value) IsNull() bool              { return !v.valid }
func (v Value) Type() ValueType           { return v.kind }
func (v Value) AsBool() bool              { return v.valid && v.kind == TypeBool && v.num != 0 }
func (v Value) AsString() string          { return v.str }
func (v Value) AsTime() time.Time         { return v.tm }
func (v Value) AsColor() Color            { return Color(v.num) }
func (v Value) AsObject() any             { return v.obj }
func (v Value) String() string            { return v.Format() }
func (v Value) conforms(t ValueType) bool { return !v.valid || v.kind == t }

// AsInt returns integer payloads as int64 and truncates floating point ones.
func (v Value) AsInt() int64 {
	switch v.kind {
	case TypeFloat, TypeDouble:
		return int64(v.flt)
	}
	return v.num
}

// AsFloat returns numeric payloads as float64.
func (v Value) AsFloat() float64 {
	switch v.kind {
	case TypeFloat, TypeDouble:
		return v.flt
	}
	return float64(v.num)
}

// Format renders the payload as display text. Null formats as "".
func (v Value) Format() string {
	if !v.valid {
		return ""
	}
	switch v.kind {
	case TypeBool:
		if v.num != 0 {
			return "True"
		}
		return "False"
	case TypeString:
		return v.str
	case TypeShort, TypeInt, TypeLong:
		return strconv.FormatInt(v.num, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 32)
	case TypeDouble:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case TypeDateTime:
		return v.tm.Format(time.DateTime)
	case TypeColor:
		r, g, b, a := Color(v.num).RGBA()
		return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
	case TypeObject:
		return fmt.Sprint(v.obj)
	}
	return ""
}

// Compare orders two values of the same type. Null sorts before any
// non-null value. Mixed or unordered types are an error.
func Compare(a, b Value) (int, error) {
	switch {
	case !a.valid && !b.valid:
		return 0, nil
	case !a.valid:
		return -1, nil
	case !b.valid:
		return 1, nil
	}
	if a.kind != b.kind {
		return 0, fmt.Errorf("%w: %s vs %s", ErrTypeMismatch, a.kind, b.kind)
	}
	switch a.kind {
	case TypeBool, TypeShort, TypeInt, TypeLong:
		return cmp.Compare(a.num, b.num), nil
	case TypeFloat, TypeDouble:
		return cmp.Compare(a.flt, b.flt), nil
	case TypeString:
		return strings.Compare(a.str, b.str), nil
	case TypeDateTime:
		return a.tm.Compare(b.tm), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsortable, a.kind)
}

var dateLayouts = []string{
	time.DateTime,
	time.DateOnly,
	time.RFC3339,
	"2006-01-02 15:04",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseValue converts user text into a value of type t. Empty text is null.
func ParseValue(t ValueType, text string) (Value, error) {
	if text == "" {
		return Null(), nil
	}
	s := strings.TrimSpace(text)
	var (
		n   int64
		f   float64
		err error
	)
	switch t {
	case TypeString:
		return String(text), nil
	case TypeBool:
		var b bool
		if b, err = strconv.ParseBool(s); err == nil {
			return Bool(b), nil
		}
	case TypeShort:
		if n, err = strconv.ParseInt(s, 10, 16); err == nil {
			return Short(int16(n)), nil
		}
	case TypeInt:
		if n, err = strconv.ParseInt(s, 10, 32); err == nil {
			return Int(int32(n)), nil
		}
	case TypeLong:
		if n, err = strconv.ParseInt(s, 10, 64); err == nil {
			return Long(n), nil
		}
	case TypeFloat:
		if f, err = strconv.ParseFloat(s, 32); err == nil {
			return Float(float32(f)), nil
		}
	case TypeDouble:
		if f, err = strconv.ParseFloat(s, 64); err == nil {
			return Double(f), nil
		}
	case TypeDateTime:
		for _, layout := range dateLayouts {
			if tm, perr := time.ParseInLocation(layout, s, time.Local); perr == nil {
				return DateTime(tm), nil
			}
		}
		err = fmt.Errorf("no matching layout")
	default:
		return Null(), fmt.Errorf("%w: %s", ErrNotEditable, t)
	}
	return Null(), fmt.Errorf("%w: %q as %s: %v", ErrParse, text, t, err)
}

// percent clamps a numeric value into 0..100 for progress bar columns,
// preserving its type. Non-numeric values become null.
func percent(v Value) Value {
	if !v.valid || !v.kind.Numeric() {
		return Null()
	}
	switch v.kind {
	case TypeFloat, TypeDouble:
		v.flt = min(max(v.flt, 0), 100)
	default:
		v.num = min(max(v.num, 0), 100)
	}
	return v
}
