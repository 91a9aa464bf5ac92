package tree

// AddChild appends node as the last child. A node that still hangs under
// another parent is detached from it first.
func (r *Node) AddChild(node *Node) {
	r.InsertChild(len(r.children), node)
}

// InsertChild places node at index, clamped to the valid range.
func (r *Node) InsertChild(index int, node *Node) {
	if node.parent != nil {
		node.parent.RemoveChild(node)
	}

	// * clamp index
	if index < 0 {
		index = 0
	}
	if index > len(r.children) {
		index = len(r.children)
	}

	r.children = append(r.children, nil)
	copy(r.children[index+1:], r.children[index:])
	r.children[index] = node
	node.parent = r
}

// RemoveChild detaches node by identity and clears its parent reference.
// It reports whether node was a child of r.
func (r *Node) RemoveChild(node *Node) bool {
	index := r.IndexOf(node)
	if index < 0 {
		return false
	}

	r.children = append(r.children[:index], r.children[index+1:]...)
	node.parent = nil
	return true
}

// IndexOf returns the position of child in r's children, or -1.
func (r *Node) IndexOf(child *Node) int {
	for i, c := range r.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Clone deep-copies the subtree. Every copied node gets a fresh id and the
// returned clone has no parent.
func (r *Node) Clone() *Node {
	clone := NewNode(r.label)
	for _, child := range r.children {
		clone.AddChild(child.Clone())
	}
	return clone
}

// IsAncestorOf reports whether r is node itself or one of node's ancestors.
func (r *Node) IsAncestorOf(node *Node) bool {
	for n := node; n != nil; n = n.parent {
		if n == r {
			return true
		}
	}
	return false
}

// Top returns the root of the tree r currently belongs to.
func (r *Node) Top() *Node {
	n := r
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Depth is 0 for the root, 1 for its children and so on.
func (r *Node) Depth() int {
	depth := 0
	for n := r.parent; n != nil; n = n.parent {
		depth++
	}
	return depth
}

// Walk visits the subtree in pre-order. The depth passed to fn is relative
// to r. Returning false from fn skips that node's children.
func (r *Node) Walk(fn func(node *Node, depth int) bool) {
	r.walk(fn, 0)
}

func (r *Node) walk(fn func(node *Node, depth int) bool, depth int) {
	if !fn(r, depth) {
		return
	}
	for _, child := range r.children {
		child.walk(fn, depth+1)
	}
}

// Find looks up a node by id within the subtree.
func (r *Node) Find(id uint64) *Node {
	var found *Node
	r.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.id == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes in the subtree, r included.
func (r *Node) Count() int {
	count := 0
	r.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Path lists the labels from the topmost non-root ancestor down to r.
func (r *Node) Path() []string {
	var path []string
	for n := r; n != nil && n.parent != nil; n = n.parent {
		path = append([]string{n.label}, path...)
	}
	return path
}
