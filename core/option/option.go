package option

import (
	"errors"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

//type expr func(interface{}) func(interface{}, MaybeOption) interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
	//Expr(interface{}) expr
}

// Match will do a standard matching of o against choices.
// It may be used to create a new type of interface OptionT.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
//
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	tracer().Debugf("Match(Type=%T) for %T", of, o)
	if o.IsNone() {
		tracer().Debugf("o is None")
		if expr, ok := of[None]; ok {
			tracer().Debugf("matched nil expr=%T %v", expr, expr)
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		err = ErrCannotMatchValue
		matched := false
		for k, expr := range of {
			if o.Equals(k) {
				matched = true
				tracer().Debugf("matched expr=%T %v", expr, expr)
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if !matched {
			if expr, ok := of[Some]; ok {
				tracer().Debugf("matched some expr=%T %v", expr, expr)
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if err != nil {
			tracer().Errorf(err.Error())
			if expr, ok := of[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	tracer().Debugf("===> return %v (%T) with error=%v", value, value, err)
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	tracer().Debugf("Match(Type=%T) for %T", maybe, o)
	if o.IsNone() {
		tracer().Debugf("o is None")
		if expr, ok := maybe[None]; ok {
			tracer().Debugf("matched nil expr=%T %v", expr, expr)
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		if expr, ok := maybe[Some]; ok {
			tracer().Debugf("matched some expr=%T %v", expr, expr)
			value, err = valueOrExpr(expr, o, Some)
		}
		if err != nil {
			tracer().Errorf(err.Error())
			if expr, ok := maybe[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	tracer().Debugf("===> return %v (%T) with error=%v", value, value, err)
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	tracer().Debugf("value or expr %v(%v), t=%v", op, value, t)
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		tracer().Debugf("calling func(value, type)")
		return x(value, t)
	case func(interface{}) (interface{}, error):
		tracer().Debugf("calling func(value)")
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None:  …,
//          "sepia":      option.Fail(errors.New("sepia is not a theme")),
//          option.Some:  …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- StringT ----------------------------------------------------------------

// StringT is an option type for strings. The empty string is a legal
// value, therefore unset-ness is tracked separately.
type StringT struct {
	s   string
	set bool
}

// SomeString creates an optional string with an initial value of s.
func SomeString(s string) StringT {
	return StringT{s: s, set: true}
}

// String creates an optional string without an initial value.
func String() StringT {
	return StringT{}
}

func (o StringT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o StringT) Equals(other interface{}) bool {
	tracer().Debugf("EQUALS %v ? %v", o, other)
	if s, ok := other.(string); ok {
		return o.set && o.s == s
	}
	return false
}

func (o StringT) Unwrap() string {
	return o.s
}

// IsNone returns true if o is unset.
func (o StringT) IsNone() bool {
	return !o.set
}

func (o StringT) String() string {
	if o.IsNone() {
		return "String.None"
	}
	return strconv.Quote(o.s)
}

var _ Type = StringT{}

// --- BoolT ------------------------------------------------------------------

// BoolT is an option type for booleans.
type BoolT int8

const (
	boolNone BoolT = iota
	boolFalse
	boolTrue
)

// SomeBool creates an optional bool with an initial value of b.
func SomeBool(b bool) BoolT {
	if b {
		return boolTrue
	}
	return boolFalse
}

// Bool creates an optional bool without an initial value.
func Bool() BoolT {
	return boolNone
}

func (o BoolT) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o BoolT) Equals(other interface{}) bool {
	if b, ok := other.(bool); ok {
		return !o.IsNone() && o.Unwrap() == b
	}
	return false
}

// Unwrap returns the boolean value of o; unset options unwrap to false.
func (o BoolT) Unwrap() bool {
	return o == boolTrue
}

// OrElse returns the value of o, or dflt if o is unset.
func (o BoolT) OrElse(dflt bool) bool {
	if o.IsNone() {
		return dflt
	}
	return o.Unwrap()
}

// IsNone returns true if o is unset.
func (o BoolT) IsNone() bool {
	return o == boolNone
}

func (o BoolT) String() string {
	if o.IsNone() {
		return "Bool.None"
	}
	return strconv.FormatBool(o.Unwrap())
}

var _ Type = BoolT(0)
