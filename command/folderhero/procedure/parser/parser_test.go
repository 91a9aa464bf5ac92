package parser

import (
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func child(t *testing.T, node *tree.Node, index int) *tree.Node {
	t.Helper()
	children := node.Children()
	require.Greater(t, len(children), index, "node %q has %d children", node.Label(), len(children))
	return children[index]
}

func TestParseNestedDocument(t *testing.T) {
	input := strings.TrimPrefix(dedent.Dedent(`
		project
		    src
		        main
		    docs
		assets`), "\n")

	root := Parse(input)
	assert.Equal(t, tree.RootLabel, root.Label())
	require.Equal(t, 2, root.ChildCount())

	project := child(t, root, 0)
	assert.Equal(t, "project", project.Label())
	assert.Equal(t, "src", child(t, project, 0).Label())
	assert.Equal(t, "main", child(t, child(t, project, 0), 0).Label())
	assert.Equal(t, "docs", child(t, project, 1).Label())
	assert.Equal(t, "assets", child(t, root, 1).Label())
}

func TestParseDepthTruncates(t *testing.T) {
	p := New(4)
	assert.Equal(t, 0, p.Depth("abc"))
	assert.Equal(t, 0, p.Depth("   abc"))
	assert.Equal(t, 1, p.Depth("    abc"))
	assert.Equal(t, 1, p.Depth("       abc"))
	assert.Equal(t, 2, p.Depth("        abc"))
	assert.Equal(t, 0, p.Depth("\tabc"))
}

func TestParseThreeSpacesStayAtTopLevel(t *testing.T) {
	root := Parse("a\n   b")
	require.Equal(t, 2, root.ChildCount())
	assert.Equal(t, "b", child(t, root, 1).Label())
}

func TestParseDepthJumpCollapses(t *testing.T) {
	root := Parse("a\n    b\n            c")

	a := child(t, root, 0)
	b := child(t, a, 0)
	c := child(t, b, 0)
	assert.Equal(t, "c", c.Label())
	assert.Same(t, b, c.Parent())
	assert.Equal(t, 3, c.Depth())
}

func TestParseOvershootOnFirstLine(t *testing.T) {
	root := Parse("        deep\nflat")
	require.Equal(t, 2, root.ChildCount())
	assert.Equal(t, "deep", child(t, root, 0).Label())
	assert.Equal(t, "flat", child(t, root, 1).Label())
}

func TestParseBlankLinesBecomeEmptyNodes(t *testing.T) {
	root := Parse("a\n\n    b")

	require.Equal(t, 2, root.ChildCount())
	blank := child(t, root, 1)
	assert.Equal(t, "", blank.Label())
	assert.Equal(t, "b", child(t, blank, 0).Label())
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", " \t \n "} {
		root := Parse(input)
		assert.Equal(t, 0, root.ChildCount(), "input %q", input)
		assert.Nil(t, root.Parent())
	}
}

func TestParseTrimsLabelsAndCarriageReturns(t *testing.T) {
	root := Parse("a  \r\n    b\r")
	a := child(t, root, 0)
	assert.Equal(t, "a", a.Label())
	assert.Equal(t, "b", child(t, a, 0).Label())
}

func TestParseCustomIndentWidth(t *testing.T) {
	root := New(2).Parse("a\n  b\n    c")
	c := child(t, child(t, child(t, root, 0), 0), 0)
	assert.Equal(t, "c", c.Label())
}

func TestParseReaderDropsFinalNewline(t *testing.T) {
	input := "a\n    b\n"
	root, text, err := New(4).ParseReader(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, input, text)
	require.Equal(t, 1, root.ChildCount())
	assert.Equal(t, 1, child(t, root, 0).ChildCount())
}
