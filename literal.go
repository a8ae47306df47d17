package typedsql

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// StringLit is a single-quoted character string literal.
//
//sqlgen:symbol CharacterStringLiteral
type StringLit struct {
	value string
}

// Str builds a string literal. Embedded quotes are doubled.
func Str(s string) StringLit {
	return StringLit{value: s}
}

func (n StringLit) WriteSQL(ctx *Context) {
	ctx.WriteString("'")
	ctx.WriteString(strings.ReplaceAll(n.value, "'", "''"))
	ctx.WriteString("'")
}

// SignedNumericLit is a numeric literal that may carry a sign.
//
//sqlgen:symbol SignedNumericLiteral
type SignedNumericLit struct {
	text string
}

// TryLit builds a numeric literal. Floats use the shortest exact decimal
// form. NaN and infinities have no SQL literal and return ErrInvalidNumber.
func TryLit[T constraints.Integer | constraints.Float](v T) (SignedNumericLit, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return SignedNumericLit{}, fmt.Errorf("%v: %w", f, ErrInvalidNumber)
	}
	return SignedNumericLit{text: formatNumber(v)}, nil
}

// Lit is TryLit for values known to be finite. It panics on NaN and
// infinities.
func Lit[T constraints.Integer | constraints.Float](v T) SignedNumericLit {
	lit, err := TryLit(v)
	if err != nil {
		panic(err)
	}
	return lit
}

func (n SignedNumericLit) WriteSQL(ctx *Context) {
	ctx.WriteString(n.text)
}

// UnsignedNumericLit is a numeric literal without a sign.
//
//sqlgen:symbol UnsignedNumericLiteral
type UnsignedNumericLit struct {
	text string
}

// Unsigned builds an unsigned numeric literal.
func Unsigned[T constraints.Unsigned](v T) UnsignedNumericLit {
	return UnsignedNumericLit{text: strconv.FormatUint(uint64(v), 10)}
}

func (n UnsignedNumericLit) WriteSQL(ctx *Context) {
	ctx.WriteString(n.text)
}

func formatNumber[T constraints.Integer | constraints.Float](v T) string {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.Kind() == reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	default:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	}
}

// BoundParam is a value passed to the driver through a placeholder.
//
//sqlgen:symbol DynamicParameterSpecification
type BoundParam struct {
	name  string
	value any
}

// Bind passes v as a positional parameter.
func Bind(v any) BoundParam {
	return BoundParam{value: v}
}

// TryBindNamed passes v as a named parameter where the dialect supports it.
// The name must satisfy the identifier rule, since it is written into the
// SQL text.
func TryBindNamed(name string, v any) (BoundParam, error) {
	if !identPattern.MatchString(name) {
		return BoundParam{}, NewIdentifierError(name)
	}
	return BoundParam{name: name, value: v}, nil
}

// BindNamed is TryBindNamed for literal names. It panics on an invalid name.
func BindNamed(name string, v any) BoundParam {
	p, err := TryBindNamed(name, v)
	if err != nil {
		panic(err)
	}
	return p
}

func (n BoundParam) WriteSQL(ctx *Context) {
	if n.name != "" {
		ctx.BindNamed(n.name, n.value)
		return
	}
	ctx.Bind(n.value)
}

// Star is the select-list asterisk.
//
//sqlgen:symbol Asterisk
type Star struct{}

func (Star) WriteSQL(ctx *Context) {
	ctx.WriteString("*")
}

// Truth is a boolean truth value.
//
//sqlgen:symbol TruthValue
type Truth string

const (
	True    Truth = "TRUE"
	False   Truth = "FALSE"
	Unknown Truth = "UNKNOWN"
)

func (n Truth) WriteSQL(ctx *Context) {
	ctx.WriteString(string(n))
}
