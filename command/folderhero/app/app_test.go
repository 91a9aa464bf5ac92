package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReadsConfigFile(t *testing.T) {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "folderhero.yml"), []byte(dedent.Dedent(`
		indentWidth: 2
		defaultLabel: Untitled
		webListen: [tcp, ":8080"]
	`)), 0o644))

	a, err := New(true, directory)
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, *a.Verbose())
	assert.Equal(t, directory, *a.Directory())
	assert.Equal(t, 2, a.Parser().IndentWidth)
	assert.Equal(t, "Untitled", *a.Config().DefaultLabel)
	assert.Equal(t, ":8080", *a.Config().GetWebListen()[1])
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "folderhero.yml"), []byte("indentWidth: 0\n"), 0o644))

	_, err := New(false, directory)
	assert.Error(t, err)
}

func TestOpenResolvesAgainstDirectory(t *testing.T) {
	directory := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(directory, "outline.txt"), []byte("docs\n"), 0o644))

	a, err := New(false, directory)
	require.NoError(t, err)
	defer a.Close()

	reader, err := a.Open("outline.txt")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "docs\n", string(content))
}
