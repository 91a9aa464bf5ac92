package edit

import (
	"context"
	"fmt"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Listener receives the "tree changed" signal after a successful edit.
type Listener func(s *session.Session, result *Result)

// Engine applies edit commands to a session tree. Every command is either
// applied completely or rejected before anything is touched.
type Engine struct {
	DefaultLabel string
	Logger       *zap.Logger
	listeners    []Listener
	counter      metric.Int64Counter
}

func New(logger *zap.Logger, defaultLabel string) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultLabel == "" {
		defaultLabel = DefaultLabel
	}

	// * a failing instrument only disables counting
	counter, err := otel.Meter("folderhero").Int64Counter(
		"folderhero.edit.applied",
		metric.WithDescription("Number of applied tree edits"),
	)
	if err != nil {
		logger.Warn("unable to create edit counter", zap.Error(err))
		counter = nil
	}

	return &Engine{
		DefaultLabel: defaultLabel,
		Logger:       logger,
		listeners:    make([]Listener, 0),
		counter:      counter,
	}
}

func (r *Engine) OnChange(listener Listener) {
	r.listeners = append(r.listeners, listener)
}

func (r *Engine) Apply(ctx context.Context, s *session.Session, command *Command) (*Result, error) {
	// * resolve target
	target := command.Target
	if target == nil {
		target = s.Selection
	}
	if target == nil {
		return nil, fmt.Errorf("%w: no target node", ErrInvalidOperation)
	}
	if !s.Contains(target) {
		return nil, fmt.Errorf("%w: target is not part of the tree", ErrInvalidOperation)
	}

	var result *Result
	var err error
	switch command.Action {
	case ActionRename:
		result, err = r.rename(target, command.Label)
	case ActionDelete:
		result, err = r.delete(s, target)
	case ActionCreate:
		result, err = r.create(target)
	case ActionClone:
		result, err = r.clone(target)
	case ActionMove:
		result, err = r.move(s, target, command.Destination)
	case ActionNest:
		result, err = r.nest(target, command.Label)
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidOperation, command.Action)
	}

	logger := r.Logger.With(
		zap.String("action", string(command.Action)),
		zap.Uint64("target", target.Id()),
	)
	if err != nil {
		logger.Debug("edit rejected", zap.Error(err))
		return nil, err
	}
	logger.Debug("edit applied", zap.Uint64("node", result.Node.Id()), zap.Bool("structural", command.Action.Structural()))

	// * signal change
	s.Touch()
	if r.counter != nil {
		r.counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("action", string(command.Action)),
			attribute.Bool("structural", command.Action.Structural()),
		))
	}
	for _, listener := range r.listeners {
		listener(s, result)
	}

	return result, nil
}

func (r *Engine) rename(target *tree.Node, label string) (*Result, error) {
	if target.IsRoot() {
		return nil, fmt.Errorf("%w: the root cannot be renamed", ErrInvalidOperation)
	}
	if label == "" {
		return nil, ErrCancelled
	}

	target.SetLabel(label)
	return &Result{Action: ActionRename, Changed: true, Node: target}, nil
}

func (r *Engine) delete(s *session.Session, target *tree.Node) (*Result, error) {
	parent := target.Parent()
	if parent == nil {
		return nil, fmt.Errorf("%w: the root cannot be deleted", ErrInvalidOperation)
	}

	// * move the selection out of the removed subtree
	if s.Selection != nil && target.IsAncestorOf(s.Selection) {
		s.Selection = parent
	}

	parent.RemoveChild(target)
	return &Result{Action: ActionDelete, Changed: true, Node: target}, nil
}

func (r *Engine) create(target *tree.Node) (*Result, error) {
	node := tree.NewNode(r.DefaultLabel)
	target.AddChild(node)
	return &Result{Action: ActionCreate, Changed: true, Node: node}, nil
}

func (r *Engine) clone(target *tree.Node) (*Result, error) {
	parent := target.Parent()
	if parent == nil {
		return nil, fmt.Errorf("%w: the root cannot be cloned", ErrInvalidOperation)
	}

	clone := target.Clone()
	parent.AddChild(clone)
	return &Result{Action: ActionClone, Changed: true, Node: clone}, nil
}

func (r *Engine) move(s *session.Session, target *tree.Node, destination *tree.Node) (*Result, error) {
	if target.IsRoot() {
		return nil, fmt.Errorf("%w: the root cannot be moved", ErrInvalidOperation)
	}
	if destination == nil {
		return nil, ErrCancelled
	}
	if !s.Contains(destination) {
		return nil, fmt.Errorf("%w: destination is not part of the tree", ErrInvalidOperation)
	}

	// * the destination may be neither the target nor below it
	if destination == target {
		return nil, fmt.Errorf("%w: cannot move a node into itself", ErrInvalidOperation)
	}
	if target.IsAncestorOf(destination) {
		return nil, fmt.Errorf("%w: cannot move a node into its own descendant", ErrInvalidOperation)
	}

	destination.AddChild(target)
	return &Result{Action: ActionMove, Changed: true, Node: target}, nil
}

func (r *Engine) nest(target *tree.Node, label string) (*Result, error) {
	parent := target.Parent()
	if parent == nil {
		return nil, fmt.Errorf("%w: the root cannot be nested", ErrInvalidOperation)
	}
	if label == "" {
		return nil, ErrCancelled
	}

	// * the wrapper takes the target's place among its siblings
	index := parent.IndexOf(target)
	wrapper := tree.NewNode(label)
	parent.RemoveChild(target)
	parent.InsertChild(index, wrapper)
	wrapper.AddChild(target)

	return &Result{Action: ActionNest, Changed: true, Node: wrapper}, nil
}
