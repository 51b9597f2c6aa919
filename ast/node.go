package ast

import (
	"errors"
)

// ErrNotList is returned when a list operation is applied to an atom.
var ErrNotList = errors.New("values of type atom can't accept children")

// Push appends child values to a list.
func (n *Value) Push(items ...*Value) error {
	if !n.IsList() {
		return ErrNotList
	}
	n.v = append(n.List(), items...)
	return nil
}

// Get returns the i-th child of a list, or nil if there is no such child.
func (n *Value) Get(i int) *Value {
	l := n.List()
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

// Head returns the first child of a list, the callee position of a form.
func (n *Value) Head() *Value {
	return n.Get(0)
}
