package serve

import (
	"bytes"
	"errors"

	"github.com/bsthun/gut"
	"github.com/gofiber/fiber/v3"
	"github.com/nickmackenzie/folder-hero/command/folderhero/common/config"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/artifact"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/printer"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/serializer"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/view"
	"github.com/nickmackenzie/folder-hero/compat/response"
	"github.com/nickmackenzie/folder-hero/package/span"
	"github.com/nickmackenzie/folder-hero/package/telemetry"
)

// SourceTree selects the edited tree instead of the typed input as the
// export source.
const SourceTree = "tree"

type Handler struct {
	layer     *span.Layer
	store     *Store
	config    *config.Config
	telemetry *telemetry.Telemetry
}

func NewHandler(store *Store, config *config.Config, telemetry *telemetry.Telemetry) *Handler {
	return &Handler{
		layer:     span.NewLayer("session", "handler"),
		store:     store,
		config:    config,
		telemetry: telemetry,
	}
}

func (r *Handler) HandleSessionList(c fiber.Ctx) error {
	// * span
	s, _ := r.layer.With(c.Context())
	defer s.End()

	// * parse query
	query := &response.Paginate{
		Limit:  gut.Ptr(int32(20)),
		Offset: gut.Ptr(int32(0)),
	}
	if err := c.Bind().Query(query); err != nil {
		return s.Error("failed to parse query", err)
	}

	// * list sessions
	entries, total := r.store.List(int(*query.Limit), int(*query.Offset))
	sessions := make([]*SessionResponse, 0, len(entries))
	for _, entry := range entries {
		entry.Lock()
		sessions = append(sessions, Describe(entry))
		entry.Unlock()
	}

	// * response
	return c.JSON(response.Success(s, &SessionListResponse{
		Total:    &total,
		Sessions: sessions,
	}))
}

func (r *Handler) HandleSessionCreate(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * parse body
	body := new(SessionCreateRequest)
	if err := c.Bind().Body(body); err != nil {
		return s.Error("failed to parse body", err)
	}

	// * create session
	entry := r.store.Create(ctx, *body.Input)
	s.Variable("session", entry.Id)

	// * response
	entry.Lock()
	defer entry.Unlock()
	return c.Status(fiber.StatusCreated).JSON(response.Success(s, Describe(entry)))
}

func (r *Handler) HandleSessionGet(c fiber.Ctx) error {
	// * span
	s, _ := r.layer.With(c.Context())
	defer s.End()

	// * resolve session
	entry, err := r.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	entry.Lock()
	defer entry.Unlock()

	// * response
	return c.JSON(response.Success(s, Describe(entry)))
}

func (r *Handler) HandleSessionDelete(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * delete session
	if err := r.store.Delete(ctx, c.Params("id")); err != nil {
		return err
	}

	// * response
	return c.JSON(response.Success(s, "session deleted"))
}

func (r *Handler) HandleSessionInput(c fiber.Ctx) error {
	// * span
	s, _ := r.layer.With(c.Context())
	defer s.End()

	// * parse body
	body := new(SessionInputRequest)
	if err := c.Bind().Body(body); err != nil {
		return s.Error("failed to parse body", err)
	}

	// * resolve session
	entry, err := r.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	entry.Lock()
	defer entry.Unlock()

	// * replace tree
	entry.Session.Load(*body.Input)
	entry.Binder.Reload()

	// * response
	return c.JSON(response.Success(s, Describe(entry)))
}

func (r *Handler) HandleSessionSelect(c fiber.Ctx) error {
	// * span
	s, _ := r.layer.With(c.Context())
	defer s.End()

	// * parse body
	body := new(SessionSelectRequest)
	if err := c.Bind().Body(body); err != nil {
		return s.Error("failed to parse body", err)
	}

	// * resolve session
	entry, err := r.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	entry.Lock()
	defer entry.Unlock()

	// * select element
	if err := entry.Binder.Select(*body.Element); err != nil {
		return err
	}

	// * response
	return c.JSON(response.Success(s, Describe(entry)))
}

func (r *Handler) HandleSessionEdit(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * parse body
	body := new(SessionEditRequest)
	if err := c.Bind().Body(body); err != nil {
		return s.Error("failed to parse body", err)
	}
	action, err := edit.ParseAction(*body.Action)
	if err != nil {
		return s.Error("invalid action", err)
	}

	// * resolve session
	entry, err := r.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	entry.Lock()
	defer entry.Unlock()

	// * apply edit
	result, err := entry.Binder.Dispatch(ctx, entry.Engine, &view.Request{
		Action:      action,
		Element:     value(body.Element),
		Label:       value(body.Label),
		Destination: value(body.Destination),
	})
	if errors.Is(err, edit.ErrCancelled) {
		return c.JSON(response.Success(s, &SessionEditResponse{
			Result: &EditResult{
				Action:     gut.Ptr(string(action)),
				Changed:    gut.Ptr(false),
				Structural: gut.Ptr(action.Structural()),
				Element:    nil,
			},
			Session: Describe(entry),
		}))
	}
	if err != nil {
		return err
	}

	// * response
	return c.JSON(response.Success(s, &SessionEditResponse{
		Result: &EditResult{
			Action:     gut.Ptr(string(result.Action)),
			Changed:    &result.Changed,
			Structural: gut.Ptr(result.Action.Structural()),
			Element:    gut.Ptr(view.ElementId(result.Node)),
		},
		Session: Describe(entry),
	}))
}

func (r *Handler) HandleExportText(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * resolve session
	entry, err := r.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	entry.Lock()
	content := serializer.Input(entry.Session)
	if c.Query("source") == SourceTree {
		content = serializer.Text(entry.Session.Root, *r.config.IndentWidth)
	}
	entry.Unlock()

	// * response
	item := artifact.Text(content)
	r.telemetry.Instrument.ExportArtifact(ctx, item.Name)
	c.Attachment(item.Name)
	c.Set(fiber.HeaderContentType, item.ContentType)
	return c.Send(item.Content)
}

func (r *Handler) HandleExportScript(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * resolve session
	entry, err := r.store.Get(c.Params("id"))
	if err != nil {
		return err
	}
	entry.Lock()
	content := serializer.Input(entry.Session)
	if c.Query("source") == SourceTree {
		content = serializer.Text(entry.Session.Root, *r.config.IndentWidth)
	}
	entry.Unlock()

	// * response
	r.telemetry.Instrument.ExportArtifact(ctx, artifact.ScriptsFileName)
	return c.JSON(response.Success(s, serializer.Scripts(content)))
}

func (r *Handler) HandleExportTree(c fiber.Ctx) error {
	// * span
	s, ctx := r.layer.With(c.Context())
	defer s.End()

	// * parse query
	format, err := printer.ParseFormat(c.Query("format", string(printer.FormatTree)))
	if err != nil {
		return s.Error("invalid format", err)
	}

	// * resolve session
	entry, err := r.store.Get(c.Params("id"))
	if err != nil {
		return err
	}

	// * encode tree
	buffer := new(bytes.Buffer)
	entry.Lock()
	err = printer.Output(buffer, entry.Session.Root, format)
	entry.Unlock()
	if err != nil {
		return s.Error("failed to encode tree", err)
	}

	// * response
	r.telemetry.Instrument.ExportArtifact(ctx, string(format))
	c.Set(fiber.HeaderContentType, printer.ContentType(format))
	return c.Send(buffer.Bytes())
}

// Describe snapshots an entry. The caller holds the entry lock.
func Describe(entry *Entry) *SessionResponse {
	var selection *string
	if entry.Session.Selection != nil {
		selection = gut.Ptr(view.ElementId(entry.Session.Selection))
	}
	return &SessionResponse{
		Id:        &entry.Id,
		Version:   gut.Ptr(entry.Session.Version),
		Input:     gut.Ptr(entry.Session.Input),
		Selection: selection,
		Elements:  entry.Binder.View.Elements,
		Drawing:   gut.Ptr(entry.Binder.View.String()),
	}
}

func value(pointer *string) string {
	if pointer == nil {
		return ""
	}
	return *pointer
}
