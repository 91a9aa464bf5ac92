package index

import (
	"io"

	"github.com/nickmackenzie/folder-hero/command/folderhero/common/config"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/parser"
	"go.uber.org/zap"
)

// Stdin is the input name that reads from standard input.
const Stdin = "-"

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *config.Config
	Logger() *zap.Logger
	Parser() *parser.Parser
	Open(name string) (io.ReadCloser, error)
	Out() io.Writer
}
