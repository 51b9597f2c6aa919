package ast

import (
	"github.com/xiam/lishp/lexer"
)

// Value is a node of the AST. Lists are the only values with children, and
// every child belongs to exactly one list.
type Value struct {
	vt   ValueType
	v    interface{}
	span lexer.Span
}

func newValue(vt ValueType, v interface{}) *Value {
	return &Value{
		vt: vt,
		v:  v,
	}
}

// NewNil creates a value of type nil
func NewNil() *Value {
	return newValue(ValueTypeNil, nil)
}

// NewBoolean creates a value of type boolean
func NewBoolean(b bool) *Value {
	return newValue(ValueTypeBoolean, b)
}

// NewInteger creates a value of type integer
func NewInteger(i int64) *Value {
	return newValue(ValueTypeInteger, i)
}

// NewFloat creates a value of type float
func NewFloat(f float64) *Value {
	return newValue(ValueTypeFloat, f)
}

// NewString creates a value of type string, s must be already unescaped
func NewString(s string) *Value {
	return newValue(ValueTypeString, s)
}

// NewSymbol creates a value of type symbol
func NewSymbol(s string) *Value {
	return newValue(ValueTypeSymbol, s)
}

// NewList creates a value of type list holding the given items
func NewList(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return newValue(ValueTypeList, items)
}

// WithSpan sets the source location of the value and returns it
func (n *Value) WithSpan(span lexer.Span) *Value {
	n.span = span
	return n
}

// Span returns the source location the value was parsed from
func (n *Value) Span() lexer.Span {
	return n.span
}

// Type returns the type of the value
func (n *Value) Type() ValueType {
	return n.vt
}

// Value returns the raw payload: nil, bool, int64, float64, string or
// []*Value.
func (n *Value) Value() interface{} {
	return n.v
}

// IsNil returns true if the value is of type nil
func (n *Value) IsNil() bool {
	return n.vt == ValueTypeNil
}

// IsList returns true if the value is of type list
func (n *Value) IsList() bool {
	return n.vt == ValueTypeList
}

// IsAtom returns true for every value that is not a list
func (n *Value) IsAtom() bool {
	return n.vt != ValueTypeList
}

// Bool returns the payload of a boolean, false for any other type
func (n *Value) Bool() bool {
	b, _ := n.v.(bool)
	return b
}

// Int returns the payload of an integer, 0 for any other type
func (n *Value) Int() int64 {
	i, _ := n.v.(int64)
	return i
}

// Float returns the payload of a float, 0 for any other type
func (n *Value) Float() float64 {
	f, _ := n.v.(float64)
	return f
}

// Text returns the payload of a string or a symbol, "" for any other type
func (n *Value) Text() string {
	s, _ := n.v.(string)
	return s
}

// List returns the children of a list, nil for any other type
func (n *Value) List() []*Value {
	l, _ := n.v.([]*Value)
	return l
}

// Len returns the number of children of a list
func (n *Value) Len() int {
	return len(n.List())
}

func (n *Value) set(vt ValueType, v interface{}) {
	n.vt, n.v = vt, v
}

// SetNil turns the value into nil in place
func (n *Value) SetNil() {
	n.set(ValueTypeNil, nil)
}

// SetBoolean turns the value into a boolean in place
func (n *Value) SetBoolean(b bool) {
	n.set(ValueTypeBoolean, b)
}

// SetInteger turns the value into an integer in place
func (n *Value) SetInteger(i int64) {
	n.set(ValueTypeInteger, i)
}

// SetFloat turns the value into a float in place
func (n *Value) SetFloat(f float64) {
	n.set(ValueTypeFloat, f)
}

// SetString turns the value into a string in place
func (n *Value) SetString(s string) {
	n.set(ValueTypeString, s)
}

// SetSymbol turns the value into a symbol in place
func (n *Value) SetSymbol(s string) {
	n.set(ValueTypeSymbol, s)
}

// SetList turns the value into a list in place
func (n *Value) SetList(items ...*Value) {
	if items == nil {
		items = []*Value{}
	}
	n.set(ValueTypeList, items)
}

// Replace overwrites the value's type and payload with the ones of other,
// keeping the original span. other must not be used afterwards.
func (n *Value) Replace(other *Value) {
	n.set(other.vt, other.v)
}

func (n *Value) String() string {
	return string(Encode(n))
}

// Equal reports whether a and b have the same type and payload, recursing
// into lists. Spans are ignored.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.vt != b.vt {
		return false
	}
	if a.vt != ValueTypeList {
		return a.v == b.v
	}
	la, lb := a.List(), b.List()
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if !Equal(la[i], lb[i]) {
			return false
		}
	}
	return true
}
