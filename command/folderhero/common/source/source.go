package source

import (
	"fmt"

	"github.com/nickmackenzie/folder-hero/command/folderhero/index"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"go.uber.org/zap"
)

// Load reads the named input and opens a session over it.
func Load(app index.App, name string) (*session.Session, error) {
	// * open input
	reader, err := app.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open input: %w", err)
	}
	defer reader.Close()

	// * parse input
	p := app.Parser()
	root, input, err := p.ParseReader(reader)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}

	s := session.New(p, "")
	s.Adopt(input, root)
	app.Logger().Debug("input loaded", zap.String("name", name), zap.Int("nodes", root.Count()-1))
	return s, nil
}
