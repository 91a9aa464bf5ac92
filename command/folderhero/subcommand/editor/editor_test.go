package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/dedent"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/serializer"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var document = dedent.Dedent(`
	docs
	    images
	src
`)[1:]

func newModel(t *testing.T, path string) *Model {
	t.Helper()
	s := session.New(nil, document[:len(document)-1])
	return New(context.Background(), s, edit.New(zap.NewNop(), ""), path, 4)
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func send(m *Model, messages ...tea.Msg) {
	for _, msg := range messages {
		m.Update(msg)
	}
}

func text(m *Model) string {
	return serializer.Text(m.Session().Root, 4)
}

func TestStartsOnFirstFolder(t *testing.T) {
	m := newModel(t, "")
	assert.Equal(t, "docs", m.Session().Selection.Label())
}

func TestStepStopsAtEnds(t *testing.T) {
	m := newModel(t, "")

	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "src", m.Session().Selection.Label())

	send(m, runes("k"), runes("k"), runes("k"), runes("k"))
	assert.True(t, m.Session().Selection.IsRoot())
}

func TestRenameThroughPrompt(t *testing.T) {
	m := newModel(t, "")

	send(m, runes("r"))
	require.Equal(t, ModeLabel, m.Mode())

	m.input.SetValue("documents")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeBrowse, m.Mode())
	assert.Equal(t, "documents\n    images\nsrc", text(m))
	assert.Equal(t, "rename applied", m.Status())
}

func TestEmptyLabelCancels(t *testing.T) {
	m := newModel(t, "")

	send(m, runes("w"))
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "cancelled", m.Status())
	assert.Equal(t, "docs\n    images\nsrc", text(m))
}

func TestEscapeLeavesPrompt(t *testing.T) {
	m := newModel(t, "")

	send(m, runes("r"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeBrowse, m.Mode())
	assert.Equal(t, "docs\n    images\nsrc", text(m))
}

func TestCreateSelectsNewNode(t *testing.T) {
	m := newModel(t, "")

	send(m, runes("n"))

	assert.Equal(t, edit.DefaultLabel, m.Session().Selection.Label())
	assert.Equal(t, "docs\n    images\n    New Node\nsrc", text(m))
}

func TestCloneAndDelete(t *testing.T) {
	m := newModel(t, "")

	send(m, runes("c"))
	assert.Equal(t, "docs\n    images\nsrc\ndocs\n    images", text(m))

	send(m, runes("d"))
	assert.Equal(t, "docs\n    images\nsrc", text(m))
	assert.True(t, m.Session().Selection.IsRoot())
}

func TestMoveIntoDestination(t *testing.T) {
	m := newModel(t, "")

	// * mark src, then choose docs
	send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, runes("m"))
	require.Equal(t, ModeDestination, m.Mode())
	send(m, runes("k"), runes("k"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "docs\n    images\n    src", text(m))
	assert.Equal(t, "src", m.Session().Selection.Label())
}

func TestMoveIntoDescendantIsRejected(t *testing.T) {
	m := newModel(t, "")

	// * mark docs, then choose images
	send(m, runes("m"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.Status(), "invalid operation")
	assert.Equal(t, "docs\n    images\nsrc", text(m))
}

func TestRootRenameIsRejected(t *testing.T) {
	m := newModel(t, "")

	send(m, runes("k"), runes("r"))
	m.input.SetValue("top")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.Status(), "invalid operation")
}

func TestSaveWritesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	m := newModel(t, path)

	send(m, runes("n"), runes("s"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "docs\n    images\n    New Node\nsrc\n", string(content))
}

func TestSaveWithoutPath(t *testing.T) {
	m := newModel(t, "")

	send(m, runes("s"))

	assert.Equal(t, ErrNoSavePath.Error(), m.Status())
}

func TestViewShowsStatusAndHelp(t *testing.T) {
	m := newModel(t, "")
	send(m, runes("n"))

	output := m.View()
	assert.Contains(t, output, "New Node")
	assert.Contains(t, output, "create applied")
	assert.Contains(t, output, "q quit")
}
