package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

type Format string

const (
	FormatTree Format = "tree"
	FormatJson Format = "json"
	FormatYaml Format = "yaml"
	FormatToml Format = "toml"
)

func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatTree, FormatJson, FormatYaml, FormatToml:
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q", value)
}

// Root converts a top-level node into a gtree root. Nodes with an empty
// label are dropped together with their subtree; nil is returned when top
// itself is unnamed.
func Root(top *tree.Node) *gtree.Node {
	if strings.TrimSpace(top.Label()) == "" {
		return nil
	}
	g := gtree.NewRoot(top.Label())
	add(g, top)
	return g
}

func add(parent *gtree.Node, node *tree.Node) {
	for _, child := range node.Children() {
		if strings.TrimSpace(child.Label()) == "" {
			continue
		}
		add(parent.Add(child.Label()), child)
	}
}

// Output writes the tree in the given format.
func Output(w io.Writer, root *tree.Node, format Format) error {
	options := make([]gtree.Option, 0)
	switch format {
	case FormatJson:
		options = append(options, gtree.WithEncodeJSON())
	case FormatYaml:
		options = append(options, gtree.WithEncodeYAML())
	case FormatToml:
		options = append(options, gtree.WithEncodeTOML())
	case FormatTree, "":
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	for _, top := range root.Children() {
		g := Root(top)
		if g == nil {
			continue
		}
		if err := gtree.OutputFromRoot(w, g, options...); err != nil {
			return fmt.Errorf("unable to output %q: %w", top.Label(), err)
		}
	}
	return nil
}

func ContentType(format Format) string {
	switch format {
	case FormatJson:
		return "application/json"
	case FormatYaml:
		return "application/yaml"
	case FormatToml:
		return "application/toml"
	}
	return "text/plain; charset=utf-8"
}
