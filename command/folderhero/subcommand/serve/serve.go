package serve

import (
	"context"

	"github.com/nickmackenzie/folder-hero/command/folderhero/app"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/config"
	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/compat/common"
	"github.com/nickmackenzie/folder-hero/package/telemetry"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

type Command struct {
	Listen string `short:"l" help:"Address to listen on, overrides webListen from the configuration."`
}

func (r *Command) Run(app *app.App) error {
	Run(app, r).Run()
	return nil
}

func Run(app index.App, command *Command) *fx.App {
	return fx.New(Options(app, command))
}

func Options(app index.App, command *Command) fx.Option {
	return fx.Options(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Supply(app.Logger()),
		fx.Provide(
			common.Config(*app.Directory(), func(directory string) (*config.Config, error) {
				cfg, err := config.New(directory)
				if err != nil {
					return nil, err
				}
				if command.Listen != "" {
					cfg.WebListen[1] = &command.Listen
				}
				return cfg, nil
			}),
			func(cfg *config.Config) common.FiberConfig {
				return cfg
			},
			Telemetry,
			Status,
			common.Fiber,
			NewStore,
			NewHandler,
		),
		fx.Invoke(Register),
	)
}

func Telemetry(lc fx.Lifecycle, cfg *config.Config) (*telemetry.Telemetry, error) {
	t, err := telemetry.New(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Shutdown(ctx)
		},
	})
	return t, nil
}
