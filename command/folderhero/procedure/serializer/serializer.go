package serializer

import (
	"strings"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

// Text flattens a tree back into indentation-formatted text, one line per
// node below the root, indentWidth spaces per level.
func Text(root *tree.Node, indentWidth int) string {
	if indentWidth <= 0 {
		indentWidth = 4
	}

	lines := make([]string, 0)
	root.Walk(func(node *tree.Node, depth int) bool {
		if node == root {
			return true
		}
		lines = append(lines, strings.Repeat(" ", (depth-1)*indentWidth)+node.Label())
		return true
	})

	return strings.Join(lines, "\n")
}

// Input is the text export: the session's input, verbatim.
func Input(s *session.Session) string {
	return s.Input
}

// Paths joins every labelled node with its ancestors, one path per line.
// Feed the result to Script to get nested directory commands.
func Paths(root *tree.Node, separator string) string {
	lines := make([]string, 0)
	root.Walk(func(node *tree.Node, _ int) bool {
		if node == root {
			return true
		}

		// * an unnamed folder cannot carry a path
		if strings.TrimSpace(node.Label()) == "" {
			return false
		}
		lines = append(lines, strings.Join(node.Path(), separator))
		return true
	})

	return strings.Join(lines, "\n")
}
