package session

import (
	"testing"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReplacesTree(t *testing.T) {
	s := New(nil, "a\n    b")
	old := s.Root
	a := old.Children()[0]
	require.NoError(t, s.Select(a))

	s.Load("c")

	assert.NotSame(t, old, s.Root)
	assert.Nil(t, s.Selection)
	assert.False(t, s.Contains(a))
	assert.Equal(t, "c", s.Root.Children()[0].Label())
	assert.Equal(t, uint64(2), s.Version)
}

func TestSelectRejectsForeignNodes(t *testing.T) {
	s := New(nil, "a")
	assert.ErrorIs(t, s.Select(tree.NewNode("stray")), ErrNodeNotFound)
	assert.ErrorIs(t, s.SelectId(0), ErrNodeNotFound)

	a := s.Root.Children()[0]
	require.NoError(t, s.SelectId(a.Id()))
	assert.Same(t, a, s.Selection)

	require.NoError(t, s.Select(nil))
	assert.Nil(t, s.Selection)
}
