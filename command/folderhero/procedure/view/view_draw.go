package view

import (
	"github.com/charmbracelet/lipgloss"
	ltree "github.com/charmbracelet/lipgloss/tree"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

type Style struct {
	Root      lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Empty     lipgloss.Style
	Enumerate lipgloss.Style
}

var DefaultStyle = &Style{
	Root:      lipgloss.NewStyle().Bold(true),
	Item:      lipgloss.NewStyle(),
	Selected:  lipgloss.NewStyle().Reverse(true).Bold(true),
	Empty:     lipgloss.NewStyle().Faint(true),
	Enumerate: lipgloss.NewStyle().Faint(true),
}

// PlainStyle draws without any terminal escapes.
var PlainStyle = &Style{
	Root:      lipgloss.NewStyle(),
	Item:      lipgloss.NewStyle(),
	Selected:  lipgloss.NewStyle(),
	Empty:     lipgloss.NewStyle(),
	Enumerate: lipgloss.NewStyle(),
}

// Draw renders the tree with box-drawing branches. selected may be nil.
func (r *View) Draw(style *Style, selected *tree.Node) string {
	if style == nil {
		style = DefaultStyle
	}
	return r.draw(r.Root, style, selected).String()
}

func (r *View) String() string {
	return r.Draw(PlainStyle, nil)
}

func (r *View) draw(node *tree.Node, style *Style, selected *tree.Node) *ltree.Tree {
	t := ltree.Root(r.label(node, style, selected)).
		Enumerator(ltree.RoundedEnumerator).
		EnumeratorStyle(style.Enumerate)

	for _, child := range node.Children() {
		if child.ChildCount() == 0 {
			t.Child(r.label(child, style, selected))
			continue
		}
		t.Child(r.draw(child, style, selected))
	}
	return t
}

func (r *View) label(node *tree.Node, style *Style, selected *tree.Node) string {
	label := node.Label()
	s := style.Item
	if label == "" {
		label = "(empty)"
		s = style.Empty
	}
	switch {
	case node == selected:
		s = style.Selected
	case node.IsRoot():
		s = style.Root
	}
	return s.Render(label)
}
