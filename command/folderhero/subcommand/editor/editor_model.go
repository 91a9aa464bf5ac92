package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/serializer"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/tree"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/view"
)

type Mode int

const (
	ModeBrowse Mode = iota
	ModeLabel
	ModeDestination
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

const help = "↑/↓ select • r rename • w nest • n create • c clone • m move • d delete • s save • q quit"

type Model struct {
	ctx         context.Context
	engine      *edit.Engine
	binder      *view.Binder
	input       textinput.Model
	mode        Mode
	pending     edit.Action
	marked      *tree.Node
	path        string
	indentWidth int
	status      string
	failed      bool
}

func New(ctx context.Context, s *session.Session, engine *edit.Engine, path string, indentWidth int) *Model {
	binder := view.Bind(s)
	binder.Listen(engine)

	input := textinput.New()
	input.CharLimit = 255

	m := &Model{
		ctx:         ctx,
		engine:      engine,
		binder:      binder,
		input:       input,
		mode:        ModeBrowse,
		pending:     "",
		marked:      nil,
		path:        path,
		indentWidth: indentWidth,
		status:      "",
		failed:      false,
	}

	// * start on the first folder
	if len(binder.View.Elements) > 1 {
		_ = binder.Select(binder.View.Elements[1].Id)
	} else {
		_ = binder.Select(binder.View.Elements[0].Id)
	}
	return m
}

func (r *Model) Init() tea.Cmd {
	return nil
}

func (r *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if r.mode == ModeLabel {
			var cmd tea.Cmd
			r.input, cmd = r.input.Update(msg)
			return r, cmd
		}
		return r, nil
	}
	if key.String() == "ctrl+c" {
		return r, tea.Quit
	}

	switch r.mode {
	case ModeLabel:
		return r.updateLabel(key)
	case ModeDestination:
		return r.updateDestination(key)
	}
	return r.updateBrowse(key)
}

func (r *Model) updateBrowse(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return r, tea.Quit
	case "up", "k":
		r.step(-1)
	case "down", "j":
		r.step(1)
	case "r":
		if selected := r.Session().Selection; selected != nil {
			return r, r.prompt(edit.ActionRename, selected.Label(), "new name")
		}
	case "w":
		return r, r.prompt(edit.ActionNest, "", "wrapper name")
	case "n":
		r.apply(&view.Request{Action: edit.ActionCreate})
	case "c":
		r.apply(&view.Request{Action: edit.ActionClone})
	case "d":
		r.apply(&view.Request{Action: edit.ActionDelete})
	case "m":
		if selected := r.Session().Selection; selected != nil {
			r.marked = selected
			r.mode = ModeDestination
			r.report(fmt.Sprintf("moving %q: choose the new parent and press enter", selected.Label()), false)
		}
	case "s":
		r.save()
	}
	return r, nil
}

func (r *Model) updateLabel(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		label := strings.TrimSpace(r.input.Value())
		r.leave()
		r.apply(&view.Request{Action: r.pending, Label: label})
		return r, nil
	case "esc":
		r.leave()
		r.report("cancelled", false)
		return r, nil
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(key)
	return r, cmd
}

func (r *Model) updateDestination(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		r.step(-1)
	case "down", "j":
		r.step(1)
	case "enter":
		marked := r.marked
		r.leave()
		r.apply(&view.Request{
			Action:      edit.ActionMove,
			Element:     view.ElementId(marked),
			Destination: view.ElementId(r.Session().Selection),
		})
	case "esc":
		r.leave()
		r.report("cancelled", false)
	}
	return r, nil
}

func (r *Model) Session() *session.Session {
	return r.binder.Session
}

func (r *Model) Mode() Mode {
	return r.mode
}

func (r *Model) Status() string {
	return r.status
}

// step moves the selection by delta rows, stopping at either end.
func (r *Model) step(delta int) {
	elements := r.binder.View.Elements
	index := r.binder.View.IndexOf(r.Session().Selection) + delta
	if index < 0 {
		index = 0
	}
	if index >= len(elements) {
		index = len(elements) - 1
	}
	_ = r.binder.Select(elements[index].Id)
}

func (r *Model) prompt(action edit.Action, value string, placeholder string) tea.Cmd {
	r.mode = ModeLabel
	r.pending = action
	r.input.Placeholder = placeholder
	r.input.SetValue(value)
	r.input.CursorEnd()
	return r.input.Focus()
}

func (r *Model) leave() {
	r.mode = ModeBrowse
	r.pending = ""
	r.marked = nil
	r.input.Blur()
	r.input.SetValue("")
}

func (r *Model) apply(request *view.Request) {
	result, err := r.binder.Dispatch(r.ctx, r.engine, request)
	if errors.Is(err, edit.ErrCancelled) {
		r.report("cancelled", false)
		return
	}
	if err != nil {
		r.report(err.Error(), true)
		return
	}

	// * follow the node the edit produced
	switch result.Action {
	case edit.ActionCreate, edit.ActionClone, edit.ActionNest, edit.ActionMove:
		_ = r.binder.Select(view.ElementId(result.Node))
	}
	r.report(string(result.Action)+" applied", false)
}

func (r *Model) save() {
	if r.path == "" {
		r.report(ErrNoSavePath.Error(), true)
		return
	}
	content := serializer.Text(r.Session().Root, r.indentWidth)
	if err := os.WriteFile(r.path, []byte(content+"\n"), 0o644); err != nil {
		r.report(err.Error(), true)
		return
	}
	r.report("saved to "+r.path, false)
}

func (r *Model) report(message string, failed bool) {
	r.status = message
	r.failed = failed
}

func (r *Model) View() string {
	var builder strings.Builder
	builder.WriteString(titleStyle.Render("folderhero"))
	builder.WriteString("\n\n")
	builder.WriteString(r.binder.View.Draw(view.DefaultStyle, r.Session().Selection))
	builder.WriteString("\n\n")

	if r.mode == ModeLabel {
		builder.WriteString(string(r.pending) + ": " + r.input.View())
		builder.WriteString("\n")
	}
	if r.status != "" {
		style := statusStyle
		if r.failed {
			style = errorStyle
		}
		builder.WriteString(style.Render(r.status))
		builder.WriteString("\n")
	}
	builder.WriteString(helpStyle.Render(help))
	return builder.String()
}
