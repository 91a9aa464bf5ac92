package parser

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

const DefaultIndentWidth = 4

// Parser turns indentation-formatted text into a tree. One line is one node;
// its depth is the count of leading whitespace characters divided by
// IndentWidth. Tabs count as a single character each.
type Parser struct {
	IndentWidth int
}

func New(indentWidth int) *Parser {
	if indentWidth <= 0 {
		indentWidth = DefaultIndentWidth
	}
	return &Parser{
		IndentWidth: indentWidth,
	}
}

// Parse uses the default indent width.
func Parse(text string) *tree.Node {
	return New(DefaultIndentWidth).Parse(text)
}

func (r *Parser) Parse(text string) *tree.Node {
	root := tree.NewRoot()

	// * a whitespace-only document is a valid empty tree
	if strings.TrimSpace(text) == "" {
		return root
	}

	stack := []*tree.Node{root}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		depth := r.Depth(line)

		// * close ancestors deeper than the intended parent
		if len(stack) > depth+1 {
			stack = stack[:depth+1]
		}

		// * overshooting lines attach to the deepest open ancestor
		node := tree.NewNode(strings.TrimSpace(line))
		stack[len(stack)-1].AddChild(node)
		stack = append(stack, node)
	}

	return root
}

// ParseReader reads a whole file. The file's terminating newline ends the
// last line instead of opening an empty one; the returned text is verbatim.
func (r *Parser) ParseReader(reader io.Reader) (*tree.Node, string, error) {
	bytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", fmt.Errorf("unable to read input: %w", err)
	}
	text := string(bytes)
	body := strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
	return r.Parse(body), text, nil
}

// Depth computes the nesting level of a raw line.
func (r *Parser) Depth(line string) int {
	width := r.IndentWidth
	if width <= 0 {
		width = DefaultIndentWidth
	}
	return LeadingWhitespace(line) / width
}

// LeadingWhitespace counts whitespace runes before the first visible rune.
func LeadingWhitespace(line string) int {
	count := 0
	for _, c := range line {
		if !unicode.IsSpace(c) {
			break
		}
		count++
	}
	return count
}
