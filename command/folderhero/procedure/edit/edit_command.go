package edit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
)

var (
	// ErrInvalidOperation means the edit would break the tree; nothing was changed.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrCancelled means the caller supplied no label or destination; nothing was changed.
	ErrCancelled = errors.New("edit cancelled")
)

const DefaultLabel = "New Node"

type Action string

const (
	ActionRename Action = "rename"
	ActionMove   Action = "move"
	ActionNest   Action = "nest"
	ActionDelete Action = "delete"
	ActionCreate Action = "create"
	ActionClone  Action = "clone"
)

var Actions = []Action{
	ActionRename,
	ActionMove,
	ActionNest,
	ActionDelete,
	ActionCreate,
	ActionClone,
}

func ParseAction(value string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(value)))
	for _, a := range Actions {
		if a == action {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", value)
}

// Structural reports whether the action changes parent/child relations or
// the node count, as opposed to a label-only change.
func (r Action) Structural() bool {
	return r != ActionRename
}

// Command is one edit request. A nil Target means the session selection.
// Label is the new name for Rename and the wrapper name for Nest;
// Destination is the new parent for Move.
type Command struct {
	Action      Action
	Target      *tree.Node
	Label       string
	Destination *tree.Node
}

type Result struct {
	Action  Action
	Changed bool
	// Node is the node the edit produced or touched: the created node, the
	// clone, the nest wrapper, or the target itself.
	Node *tree.Node
}
