package printer

import (
	"fmt"

	"github.com/ddddddO/gtree"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

// Mkdir creates the nested directories of the tree below targetDir. Unlike
// the generated scripts, every folder lands under its ancestors' path.
func Mkdir(root *tree.Node, targetDir string, dryRun bool) error {
	options := []gtree.Option{
		gtree.WithTargetDir(targetDir),
	}
	if dryRun {
		options = append(options, gtree.WithDryRun())
	}

	for _, top := range root.Children() {
		g := Root(top)
		if g == nil {
			continue
		}
		if err := gtree.MkdirFromRoot(g, options...); err != nil {
			return fmt.Errorf("unable to create %q: %w", top.Label(), err)
		}
	}
	return nil
}
