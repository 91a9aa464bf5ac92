package view

import (
	"context"
	"io"

	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
)

const ImageFileName = "folder_structure.png"

// Capturer turns a rendered view into an image. Implementations live
// outside this module.
type Capturer interface {
	Capture(ctx context.Context, v *View, w io.Writer) error
}

// Binder keeps the view of one session current and translates element ids
// from UI events into edit commands.
type Binder struct {
	Session *session.Session
	View    *View
}

func Bind(s *session.Session) *Binder {
	b := &Binder{
		Session: s,
		View:    nil,
	}
	b.Reload()
	return b
}

// Reload discards the current view and renders the session tree again.
func (r *Binder) Reload() {
	r.View = Render(r.Session.Root)
}

// Listen re-renders whenever engine reports a change to this session.
func (r *Binder) Listen(engine *edit.Engine) {
	engine.OnChange(func(s *session.Session, _ *edit.Result) {
		if s == r.Session {
			r.Reload()
		}
	})
}

// Select makes the element the session selection.
func (r *Binder) Select(elementId string) error {
	node, err := r.View.Resolve(elementId)
	if err != nil {
		return err
	}
	return r.Session.SelectId(node.Id())
}

// Request is an edit addressed by element ids. An empty Element targets the
// current selection; an empty Destination means none was chosen.
type Request struct {
	Action      edit.Action
	Element     string
	Label       string
	Destination string
}

// Dispatch resolves the request against the current view and hands it to
// engine.
func (r *Binder) Dispatch(ctx context.Context, engine *edit.Engine, request *Request) (*edit.Result, error) {
	command := &edit.Command{
		Action:      request.Action,
		Target:      nil,
		Label:       request.Label,
		Destination: nil,
	}

	if request.Element != "" {
		node, err := r.View.Resolve(request.Element)
		if err != nil {
			return nil, err
		}
		command.Target = node
	}
	if request.Destination != "" {
		node, err := r.View.Resolve(request.Destination)
		if err != nil {
			return nil, err
		}
		command.Destination = node
	}

	return engine.Apply(ctx, r.Session, command)
}
