// Package apptest provides an in-memory index.App for subcommand tests.
package apptest

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickmackenzie/folder-hero/command/folderhero/common/config"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"go.uber.org/zap"
)

type App struct {
	Inputs    map[string]string
	Buffer    *bytes.Buffer
	Settings  *config.Config
	Workspace string
}

func New(workspace string) *App {
	return &App{
		Inputs:    make(map[string]string),
		Buffer:    new(bytes.Buffer),
		Settings:  config.Default(),
		Workspace: workspace,
	}
}

func (r *App) Verbose() *bool {
	verbose := true
	return &verbose
}

func (r *App) Directory() *string {
	return &r.Workspace
}

func (r *App) Config() *config.Config {
	return r.Settings
}

func (r *App) Logger() *zap.Logger {
	return zap.NewNop()
}

func (r *App) Parser() *parser.Parser {
	return parser.New(*r.Settings.IndentWidth)
}

// Open serves registered inputs first and falls back to the workspace.
func (r *App) Open(name string) (io.ReadCloser, error) {
	if content, ok := r.Inputs[name]; ok {
		return io.NopCloser(strings.NewReader(content)), nil
	}
	return os.Open(filepath.Join(r.Workspace, name))
}

func (r *App) Out() io.Writer {
	return r.Buffer
}
