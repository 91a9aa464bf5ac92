package mkdir

import (
	"github.com/nickmackenzie/folder-hero/command/folderhero/app"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/source"
	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/printer"
	"go.uber.org/zap"
)

type Command struct {
	Input  string `arg:"" default:"-" help:"Folder structure text, - for stdin."`
	Target string `short:"t" type:"path" default:"." help:"Directory the folders are created in."`
	DryRun bool   `help:"Check the structure without touching the disk."`
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

	// * create folders
	if err := printer.Mkdir(s.Root, command.Target, command.DryRun); err != nil {
		return err
	}

	app.Logger().Info("folders created", zap.String("target", command.Target), zap.Bool("dryRun", command.DryRun))
	return nil
}
