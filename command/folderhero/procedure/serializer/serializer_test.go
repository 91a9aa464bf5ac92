package serializer

import (
	"strings"
	"testing"

	"github.com/lithammer/dedent"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	documents := []string{
		"a",
		"a\n    b\n        c\n    d\ne",
		"a\n\n    b",
		strings.TrimPrefix(dedent.Dedent(`
			service
			    cmd
			        server
			    internal
			        handler
			        store
			    docs`), "\n"),
	}

	for _, document := range documents {
		assert.Equal(t, document, Text(parser.Parse(document), 4))
	}
}

func TestTextNormalizesIndentWidth(t *testing.T) {
	root := parser.Parse("a\n     b\n          c")
	assert.Equal(t, "a\n    b\n        c", Text(root, 4))
	assert.Equal(t, "a\n  b\n    c", Text(root, 2))
}

func TestTextOfEmptyTree(t *testing.T) {
	assert.Equal(t, "", Text(parser.Parse(""), 4))
}

func TestInputIsVerbatim(t *testing.T) {
	input := "a\n   weird  \n\n"
	assert.Equal(t, input, Input(session.New(nil, input)))
}

func TestScriptLinuxIsLineBased(t *testing.T) {
	script, err := Script(FlavorLinux, "docs\n  images")
	require.NoError(t, err)
	assert.Equal(t, "mkdir -p docs\nmkdir -p images", script)
}

func TestScriptFlavors(t *testing.T) {
	input := "docs\n    images\n\nsrc"

	windows, err := Script(FlavorWindows, input)
	require.NoError(t, err)
	assert.Equal(t, "mkdir docs\nmkdir images\nmkdir src", windows)

	mac, err := Script(FlavorMac, input)
	require.NoError(t, err)
	linux, err := Script(FlavorLinux, input)
	require.NoError(t, err)
	assert.Equal(t, linux, mac)

	_, err = Script(Flavor("amiga"), input)
	assert.Error(t, err)
}

func TestScriptsBlocks(t *testing.T) {
	blocks := Scripts("a")
	require.Len(t, blocks, 3)
	assert.Equal(t, "Windows Script", blocks[0].Title)
	assert.Equal(t, "Linux Script", blocks[1].Title)
	assert.Equal(t, "Mac Script", blocks[2].Title)
	assert.Equal(t, "mkdir a", blocks[0].Content)
	assert.Equal(t, "mkdir -p a", blocks[2].Content)
}

func TestPathsFeedNestedScripts(t *testing.T) {
	root := parser.Parse("docs\n    images\n        raw\n\nsrc")
	paths := Paths(root, "/")
	assert.Equal(t, "docs\ndocs/images\ndocs/images/raw\nsrc", paths)

	script, err := Script(FlavorLinux, paths)
	require.NoError(t, err)
	assert.Equal(t, "mkdir -p docs\nmkdir -p docs/images\nmkdir -p docs/images/raw\nmkdir -p src", script)
}

func TestParseFlavor(t *testing.T) {
	flavor, err := ParseFlavor("Windows")
	require.NoError(t, err)
	assert.Equal(t, FlavorWindows, flavor)

	_, err = ParseFlavor("dos")
	assert.Error(t, err)
}
