package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/serializer"
)

const (
	TextFileName       = "folder_structure.txt"
	TextContentType    = "text/plain"
	ScriptsFileName    = "folder_structure_scripts.md"
	MarkdownContent    = "text/markdown"
	directoryPerm      = 0o755
	artifactPermission = 0o644
)

type Artifact struct {
	Name        string
	ContentType string
	Content     []byte
}

// Text is the plain text export: the input exactly as typed.
func Text(input string) *Artifact {
	return &Artifact{
		Name:        TextFileName,
		ContentType: TextContentType,
		Content:     []byte(input),
	}
}

// Scripts bundles the three titled script blocks into one document.
func Scripts(blocks []*serializer.ScriptBlock) *Artifact {
	var builder strings.Builder
	for i, block := range blocks {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("### %s:\n\n```\n%s\n```\n", block.Title, block.Content))
	}
	return &Artifact{
		Name:        ScriptsFileName,
		ContentType: MarkdownContent,
		Content:     []byte(builder.String()),
	}
}

type Sink interface {
	Put(ctx context.Context, artifact *Artifact) (string, error)
}

// DirectorySink writes artifacts as files below Directory.
type DirectorySink struct {
	Directory string
}

func (r *DirectorySink) Put(_ context.Context, artifact *Artifact) (string, error) {
	if err := os.MkdirAll(r.Directory, directoryPerm); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", r.Directory, err)
	}

	path := filepath.Join(r.Directory, artifact.Name)
	if err := os.WriteFile(path, artifact.Content, artifactPermission); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
