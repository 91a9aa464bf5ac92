package view

import (
	"errors"
	"strconv"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

var ErrUnknownElement = errors.New("unknown element")

// Element is one rendered row. Id is the element identity handed to UI
// layers; NodeId is the tree node it stands for.
type Element struct {
	Id       string `json:"id"`
	NodeId   uint64 `json:"nodeId"`
	Label    string `json:"label"`
	Depth    int    `json:"depth"`
	Children int    `json:"children"`
}

// View is a pure rendering of a tree plus the side table mapping element
// ids back to nodes. It is rebuilt from scratch on every render.
type View struct {
	Root     *tree.Node `json:"-"`
	Elements []*Element `json:"elements"`
	nodes    map[string]*tree.Node
	elements map[uint64]*Element
}

func Render(root *tree.Node) *View {
	v := &View{
		Root:     root,
		Elements: make([]*Element, 0),
		nodes:    make(map[string]*tree.Node),
		elements: make(map[uint64]*Element),
	}

	root.Walk(func(node *tree.Node, depth int) bool {
		element := &Element{
			Id:       ElementId(node),
			NodeId:   node.Id(),
			Label:    node.Label(),
			Depth:    depth,
			Children: node.ChildCount(),
		}
		v.Elements = append(v.Elements, element)
		v.nodes[element.Id] = node
		v.elements[node.Id()] = element
		return true
	})

	return v
}

// ElementPrefix marks element ids so they never collide with other
// identifiers carried in the same UI payload.
const ElementPrefix = "e"

// ElementId is stable for the lifetime of the node.
func ElementId(node *tree.Node) string {
	return ElementPrefix + strconv.FormatUint(node.Id(), 36)
}

// Resolve maps an element id from a UI event back to its node.
func (r *View) Resolve(id string) (*tree.Node, error) {
	node, ok := r.nodes[id]
	if !ok {
		return nil, ErrUnknownElement
	}
	return node, nil
}

func (r *View) ElementOf(node *tree.Node) (*Element, bool) {
	if node == nil {
		return nil, false
	}
	element, ok := r.elements[node.Id()]
	return element, ok
}

// IndexOf returns the row of node, or -1.
func (r *View) IndexOf(node *tree.Node) int {
	element, ok := r.ElementOf(node)
	if !ok {
		return -1
	}
	for i, e := range r.Elements {
		if e == element {
			return i
		}
	}
	return -1
}
