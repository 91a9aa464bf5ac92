package session

import (
	"errors"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

var ErrNodeNotFound = errors.New("node not found in session tree")

// Session owns one editable tree together with the text it was built from
// and the node the user currently has selected.
type Session struct {
	Parser    *parser.Parser
	Input     string
	Root      *tree.Node
	Selection *tree.Node
	Version   uint64
}

func New(p *parser.Parser, input string) *Session {
	if p == nil {
		p = parser.New(parser.DefaultIndentWidth)
	}
	s := &Session{
		Parser:    p,
		Input:     "",
		Root:      nil,
		Selection: nil,
		Version:   0,
	}
	s.Load(input)
	return s
}

// Load replaces the whole tree. Nothing from the previous tree survives.
func (r *Session) Load(input string) {
	r.Input = input
	r.Root = r.Parser.Parse(input)
	r.Selection = nil
	r.Version++
}

// Adopt installs an already parsed tree, e.g. one read through ParseReader.
func (r *Session) Adopt(input string, root *tree.Node) {
	r.Input = input
	r.Root = root
	r.Selection = nil
	r.Version++
}

// Contains reports whether node is reachable from the session root.
func (r *Session) Contains(node *tree.Node) bool {
	return node != nil && r.Root != nil && node.Top() == r.Root
}

func (r *Session) Select(node *tree.Node) error {
	if node == nil {
		r.Selection = nil
		return nil
	}
	if !r.Contains(node) {
		return ErrNodeNotFound
	}
	r.Selection = node
	return nil
}

func (r *Session) SelectId(id uint64) error {
	node := r.Root.Find(id)
	if node == nil {
		return ErrNodeNotFound
	}
	r.Selection = node
	return nil
}

// Touch marks the tree as changed.
func (r *Session) Touch() {
	r.Version++
}
