package editor

import (
	"context"
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nickmackenzie/folder-hero/command/folderhero/app"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/source"
	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
)

var ErrNoSavePath = errors.New("input came from stdin, pass --save to choose a file")

type Command struct {
	Input string `arg:"" default:"-" help:"Folder structure text, - for stdin."`
	Save  string `type:"path" help:"File written on save, defaults to the input file."`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r, tea.WithAltScreen())
}

func Run(ctx context.Context, app index.App, command *Command, options ...tea.ProgramOption) error {
	// * load session
	s, err := source.Load(app, command.Input)
	if err != nil {
		return err
	}

	// * resolve save path
	path := command.Save
	if path == "" && command.Input != index.Stdin {
		path = command.Input
		if !filepath.IsAbs(path) {
			path = filepath.Join(*app.Directory(), path)
		}
	}

	// * keyboard comes from the terminal when stdin carried the input
	if command.Input == index.Stdin {
		options = append(options, tea.WithInputTTY())
	}

	// * run program
	engine := edit.New(app.Logger(), *app.Config().DefaultLabel)
	model := New(ctx, s, engine, path, *app.Config().IndentWidth)
	_, err = tea.NewProgram(model, options...).Run()
	return err
}
