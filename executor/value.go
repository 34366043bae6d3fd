package executor

import "strconv"

// Value is a runtime value. String returns its display form.
type Value interface {
	String() string
	Type() string
}

type StringValue struct {
	Value string
}

func (v StringValue) String() string { return v.Value }
func (StringValue) Type() string     { return "string" }

type NumberValue struct {
	Value float64
}

// String formats the number in plain decimal, without exponent and without
// a trailing ".0" for integral values.
func (v NumberValue) String() string { return strconv.FormatFloat(v.Value, 'f', -1, 64) }
func (NumberValue) Type() string     { return "number" }

type BooleanValue struct {
	Value bool
}

func (v BooleanValue) String() string { return strconv.FormatBool(v.Value) }
func (BooleanValue) Type() string     { return "boolean" }

type NullValue struct{}

func (NullValue) String() string { return "null" }
func (NullValue) Type() string   { return "null" }

// Null is the value of calls that produce nothing.
var Null Value = NullValue{}
