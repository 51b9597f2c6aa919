package ast

import "slices"

// Visitor walks a tree with read-only access. Embed BaseVisitor and override
// only the hooks you need; Walk drives the traversal.
type Visitor interface {
	// VisitList is called for every list. Returning true descends into the
	// children. items is a copy of the list's slice; the nodes it points to
	// are shared with the tree and must not be changed, use MutVisitor for
	// rewrites.
	VisitList(items []*Value) bool
	// VisitAtom is called for every non-list value with a copy of it.
	// Returning true dispatches to the hook for the concrete type. Nil
	// values have no hook.
	VisitAtom(atom Value) bool

	VisitBoolean(b bool)
	VisitInteger(i int64)
	VisitFloat(f float64)
	VisitString(s string)
	VisitSymbol(s string)
}

// MutVisitor is like Visitor but every hook receives the node itself, so it
// can be rewritten in place with the Set* methods.
type MutVisitor interface {
	VisitList(list *Value) bool
	VisitAtom(atom *Value) bool

	VisitBoolean(node *Value)
	VisitInteger(node *Value)
	VisitFloat(node *Value)
	VisitString(node *Value)
	VisitSymbol(node *Value)
}

// BaseVisitor provides the default Visitor behaviour: descend into every
// list, dispatch every atom and do nothing else.
type BaseVisitor struct{}

func (BaseVisitor) VisitList([]*Value) bool { return true }
func (BaseVisitor) VisitAtom(Value) bool    { return true }
func (BaseVisitor) VisitBoolean(bool)       {}
func (BaseVisitor) VisitInteger(int64)      {}
func (BaseVisitor) VisitFloat(float64)      {}
func (BaseVisitor) VisitString(string)      {}
func (BaseVisitor) VisitSymbol(string)      {}

// BaseMutVisitor is the MutVisitor counterpart of BaseVisitor.
type BaseMutVisitor struct{}

func (BaseMutVisitor) VisitList(*Value) bool { return true }
func (BaseMutVisitor) VisitAtom(*Value) bool { return true }
func (BaseMutVisitor) VisitBoolean(*Value)   {}
func (BaseMutVisitor) VisitInteger(*Value)   {}
func (BaseMutVisitor) VisitFloat(*Value)     {}
func (BaseMutVisitor) VisitString(*Value)    {}
func (BaseMutVisitor) VisitSymbol(*Value)    {}

var (
	_ = Visitor(BaseVisitor{})
	_ = MutVisitor(BaseMutVisitor{})
)

// Walk traverses node depth-first, in source order.
func Walk(v Visitor, node *Value) {
	WalkMut(readOnly{v}, node)
}

// WalkMut traverses node like Walk. Children are read after VisitList
// returns, and the concrete type after VisitAtom returns, so rewrites made by
// those hooks are honored.
func WalkMut(v MutVisitor, node *Value) {
	if node == nil {
		return
	}
	if node.IsList() {
		if v.VisitList(node) {
			for _, item := range node.List() {
				WalkMut(v, item)
			}
		}
		return
	}
	if !v.VisitAtom(node) {
		return
	}
	switch node.Type() {
	case ValueTypeBoolean:
		v.VisitBoolean(node)
	case ValueTypeInteger:
		v.VisitInteger(node)
	case ValueTypeFloat:
		v.VisitFloat(node)
	case ValueTypeString:
		v.VisitString(node)
	case ValueTypeSymbol:
		v.VisitSymbol(node)
	case ValueTypeNil:
		// no-op
	}
}

// readOnly hands payloads, never nodes, to a Visitor.
type readOnly struct {
	v Visitor
}

func (r readOnly) VisitList(list *Value) bool { return r.v.VisitList(slices.Clone(list.List())) }
func (r readOnly) VisitAtom(atom *Value) bool { return r.v.VisitAtom(*atom) }
func (r readOnly) VisitBoolean(n *Value)      { r.v.VisitBoolean(n.Bool()) }
func (r readOnly) VisitInteger(n *Value)      { r.v.VisitInteger(n.Int()) }
func (r readOnly) VisitFloat(n *Value)        { r.v.VisitFloat(n.Float()) }
func (r readOnly) VisitString(n *Value)       { r.v.VisitString(n.Text()) }
func (r readOnly) VisitSymbol(n *Value)       { r.v.VisitSymbol(n.Text()) }
