package printer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputTree(t *testing.T) {
	root := parser.Parse("docs\n    images\n    notes\nsrc")

	var buffer bytes.Buffer
	require.NoError(t, Output(&buffer, root, FormatTree))

	out := buffer.String()
	assert.Contains(t, out, "docs")
	assert.Contains(t, out, "├── images")
	assert.Contains(t, out, "└── notes")
	assert.Contains(t, out, "src")
}

func TestOutputSkipsUnnamedNodes(t *testing.T) {
	root := parser.Parse("docs\n\n    hidden")

	var buffer bytes.Buffer
	require.NoError(t, Output(&buffer, root, FormatTree))
	assert.NotContains(t, buffer.String(), "hidden")
}

func TestOutputUnknownFormat(t *testing.T) {
	var buffer bytes.Buffer
	assert.Error(t, Output(&buffer, parser.Parse("a"), Format("xml")))
}

func TestParseFormat(t *testing.T) {
	format, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYaml, format)

	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestMkdirCreatesNestedFolders(t *testing.T) {
	dir := t.TempDir()
	root := parser.Parse("project\n    src\n        handler\n    docs\nassets")

	require.NoError(t, Mkdir(root, dir, false))

	for _, path := range []string{
		"project",
		filepath.Join("project", "src"),
		filepath.Join("project", "src", "handler"),
		filepath.Join("project", "docs"),
		"assets",
	} {
		info, err := os.Stat(filepath.Join(dir, path))
		require.NoError(t, err, path)
		assert.True(t, info.IsDir(), path)
	}
}

func TestMkdirDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Mkdir(parser.Parse("project\n    src"), dir, true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
