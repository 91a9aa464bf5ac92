package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/nickmackenzie/folder-hero/command/folderhero/common/config"
	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"go.uber.org/zap"
)

type App struct {
	verbose   bool
	directory string
	config    *config.Config
	logger    *zap.Logger
	out       io.Writer
}

func New(verbose bool, directory string) (*App, error) {
	// * load config
	cfg, err := config.New(directory)
	if err != nil {
		return nil, err
	}

	// * construct logger
	logConfig := zap.NewProductionConfig()
	logConfig.Encoding = "console"
	if verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		return nil, err
	}

	return &App{
		verbose:   verbose,
		directory: directory,
		config:    cfg,
		logger:    logger,
		out:       os.Stdout,
	}, nil
}

func (r *App) Verbose() *bool {
	return &r.verbose
}

func (r *App) Directory() *string {
	return &r.directory
}

func (r *App) Config() *config.Config {
	return r.config
}

func (r *App) Logger() *zap.Logger {
	return r.logger
}

func (r *App) Parser() *parser.Parser {
	return parser.New(*r.config.IndentWidth)
}

// Open resolves name against the working directory; "-" is standard input.
func (r *App) Open(name string) (io.ReadCloser, error) {
	if name == index.Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(r.directory, name)
	}
	return os.Open(name)
}

func (r *App) Out() io.Writer {
	return r.out
}

func (r *App) Close() {
	_ = r.logger.Sync()
}
