package script

import (
	"fmt"

	"github.com/nickmackenzie/folder-hero/command/folderhero/app"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/source"
	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/artifact"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/serializer"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
)

const FlavorAll = "all"

type Command struct {
	Input  string `arg:"" default:"-" help:"Folder structure text, - for stdin."`
	Flavor string `short:"f" default:"all" enum:"all,windows,linux,mac" help:"Script flavor (all, windows, linux, mac)."`
	Nested bool   `help:"Join every folder onto its ancestors' path instead of creating it at the top level."`
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

	// * single flavor
	if command.Flavor != FlavorAll {
		flavor, err := serializer.ParseFlavor(command.Flavor)
		if err != nil {
			return err
		}
		content, err := serializer.Script(flavor, Source(s, flavor, command.Nested))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(app.Out(), content)
		return err
	}

	// * every flavor
	blocks := serializer.Scripts(s.Input)
	if command.Nested {
		for _, block := range blocks {
			block.Content, _ = serializer.Script(block.Flavor, Source(s, block.Flavor, true))
		}
	}
	_, err = app.Out().Write(artifact.Scripts(blocks).Content)
	return err
}

// Source is the text the script is generated from: the verbatim input, or
// one pre-joined path per folder when nested.
func Source(s *session.Session, flavor serializer.Flavor, nested bool) string {
	if !nested {
		return serializer.Input(s)
	}
	return serializer.Paths(s.Root, flavor.Separator())
}
