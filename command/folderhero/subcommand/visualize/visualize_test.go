package visualize

import (
	"testing"

	"github.com/nickmackenzie/folder-hero/command/folderhero/common/apptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlainView(t *testing.T) {
	app := apptest.New(t.TempDir())
	app.Inputs["in.txt"] = "docs\n    images\nsrc\n"

	require.NoError(t, Run(app, &Command{Input: "in.txt", Format: FormatView, Plain: true}))

	out := app.Buffer.String()
	assert.Contains(t, out, "root")
	assert.Contains(t, out, "images")
	assert.Contains(t, out, "src")
}

func TestRunJson(t *testing.T) {
	app := apptest.New(t.TempDir())
	app.Inputs["in.txt"] = "docs\n    images"

	require.NoError(t, Run(app, &Command{Input: "in.txt", Format: "json"}))
	assert.Contains(t, app.Buffer.String(), `"images"`)
}

func TestRunMissingInput(t *testing.T) {
	app := apptest.New(t.TempDir())

	assert.Error(t, Run(app, &Command{Input: "missing.txt", Format: FormatView}))
}
