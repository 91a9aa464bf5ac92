package tree

import (
	"sync/atomic"
)

const RootLabel = "root"

// sequence hands out node ids for the lifetime of the process, so an id is
// never reused even after its node is deleted.
var sequence atomic.Uint64

// Node is a single folder in the hierarchy. The parent reference is
// non-owning; children are owned and ordered.
type Node struct {
	id       uint64
	label    string
	children []*Node
	parent   *Node
}

func NewNode(label string) *Node {
	return &Node{
		id:       sequence.Add(1),
		label:    label,
		children: make([]*Node, 0),
		parent:   nil,
	}
}

func NewRoot() *Node {
	return NewNode(RootLabel)
}

func (r *Node) Id() uint64 {
	return r.id
}

func (r *Node) Label() string {
	return r.label
}

func (r *Node) SetLabel(label string) {
	r.label = label
}

// Parent returns nil for a root or a detached node.
func (r *Node) Parent() *Node {
	return r.parent
}

func (r *Node) IsRoot() bool {
	return r.parent == nil
}

// Children returns a copy of the ordered child list.
func (r *Node) Children() []*Node {
	children := make([]*Node, len(r.children))
	copy(children, r.children)
	return children
}

func (r *Node) ChildCount() int {
	return len(r.children)
}
