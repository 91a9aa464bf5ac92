package visualize

import (
	"fmt"

	"github.com/nickmackenzie/folder-hero/command/folderhero/app"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/source"
	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/printer"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/view"
)

const FormatView = "view"

type Command struct {
	Input  string `arg:"" default:"-" help:"Folder structure text, - for stdin."`
	Format string `short:"f" default:"view" enum:"view,tree,json,yaml,toml" help:"Output format (view, tree, json, yaml, toml)."`
	Plain  bool   `help:"Draw the view without colors."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	// * load session
	s, err := source.Load(app, command.Input)
	if err != nil {
		return err
	}

	// * render view
	if command.Format == FormatView {
		binder := view.Bind(s)
		style := view.DefaultStyle
		if command.Plain {
			style = view.PlainStyle
		}
		_, err := fmt.Fprintln(app.Out(), binder.View.Draw(style, nil))
		return err
	}

	// * render encoding
	format, err := printer.ParseFormat(command.Format)
	if err != nil {
		return err
	}
	return printer.Output(app.Out(), s.Root, format)
}
