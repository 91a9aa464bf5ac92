package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/nickmackenzie/folder-hero/command/folderhero/app"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/source"
	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/artifact"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/serializer"
	"github.com/nickmackenzie/folder-hero/compat/common"
	"go.uber.org/zap"
)

var ErrRemoteDisabled = errors.New("remote export needs minioEndpoint and minioBucket in the configuration")

type Command struct {
	Input   string `arg:"" default:"-" help:"Folder structure text, - for stdin."`
	Out     string `short:"o" type:"path" help:"Directory to write into, defaults to exportDirectory from the configuration."`
	Remote  bool   `short:"r" help:"Upload to the configured MinIO bucket instead of a directory."`
	Scripts bool   `short:"s" help:"Also export the mkdir scripts."`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r)
}

func Run(ctx context.Context, app index.App, command *Command) error {
	// * load session
	s, err := source.Load(app, command.Input)
	if err != nil {
		return err
	}

	// * construct sink
	sink, err := Sink(app, command)
	if err != nil {
		return err
	}

	// * collect artifacts
	artifacts := []*artifact.Artifact{artifact.Text(serializer.Input(s))}
	if command.Scripts {
		artifacts = append(artifacts, artifact.Scripts(serializer.Scripts(s.Input)))
	}

	// * store artifacts
	for _, item := range artifacts {
		location, err := sink.Put(ctx, item)
		if err != nil {
			return err
		}
		app.Logger().Debug("artifact exported", zap.String("name", item.Name), zap.String("location", location))
		if _, err := fmt.Fprintln(app.Out(), location); err != nil {
			return err
		}
	}

	return nil
}

func Sink(app index.App, command *Command) (artifact.Sink, error) {
	config := app.Config()
	if !command.Remote {
		directory := command.Out
		if directory == "" {
			directory = *config.ExportDirectory
		}
		return &artifact.DirectorySink{Directory: directory}, nil
	}

	if !config.MinioEnabled() {
		return nil, ErrRemoteDisabled
	}
	client, err := common.Minio(config)
	if err != nil {
		return nil, fmt.Errorf("unable to construct minio client: %w", err)
	}
	prefix := ""
	if config.MinioPrefix != nil {
		prefix = *config.MinioPrefix
	}
	return &artifact.MinioSink{
		Client: client,
		Bucket: *config.MinioBucket,
		Prefix: prefix,
	}, nil
}
