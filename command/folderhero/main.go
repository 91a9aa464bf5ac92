package main

import (
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lithammer/dedent"
	"github.com/nickmackenzie/folder-hero/command/folderhero/app"
	"github.com/nickmackenzie/folder-hero/command/folderhero/subcommand/editor"
	"github.com/nickmackenzie/folder-hero/command/folderhero/subcommand/export"
	"github.com/nickmackenzie/folder-hero/command/folderhero/subcommand/mkdir"
	"github.com/nickmackenzie/folder-hero/command/folderhero/subcommand/script"
	"github.com/nickmackenzie/folder-hero/command/folderhero/subcommand/serve"
	"github.com/nickmackenzie/folder-hero/command/folderhero/subcommand/visualize"
)

var description = strings.TrimSpace(dedent.Dedent(`
	Folder Hero turns an indented outline into a folder tree.

	Every line is a folder; four spaces of indentation make it a child of
	the line above. The tree can be drawn, edited, exported as text or as
	mkdir scripts, and created on disk.
`))

type Command struct {
	Verbose   bool               `help:"Enable verbose output." short:"v"`
	Directory string             `help:"Directory holding folderhero.yml." short:"d" type:"existingdir" default:"."`
	Visualize *visualize.Command `cmd:"visualize" help:"Draw the folder tree."`
	Script    *script.Command    `cmd:"script" help:"Print mkdir scripts for Windows, Linux and Mac."`
	Export    *export.Command    `cmd:"export" help:"Export the text to a directory or a MinIO bucket."`
	Mkdir     *mkdir.Command     `cmd:"mkdir" help:"Create the folder tree on disk."`
	Edit      *editor.Command    `cmd:"edit" help:"Edit the folder tree interactively."`
	Serve     *serve.Command     `cmd:"serve" help:"Serve editing sessions over HTTP."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("folderhero"),
		kong.Description(description),
		kong.UsageOnError(),
	)

	a, err := app.New(command.Verbose, command.Directory)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(a)
	a.Close()
	ctx.FatalIfErrorf(err)
}
