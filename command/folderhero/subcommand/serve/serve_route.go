package serve

import (
	"github.com/gofiber/fiber/v3"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/edit"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/session"
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/view"
	"github.com/nickmackenzie/folder-hero/compat/common"
	"github.com/nickmackenzie/folder-hero/package/telemetry"
)

func Status() common.FiberStatus {
	return common.FiberStatus{
		edit.ErrInvalidOperation: fiber.StatusConflict,
		session.ErrNodeNotFound:  fiber.StatusNotFound,
		view.ErrUnknownElement:   fiber.StatusNotFound,
		ErrSessionNotFound:       fiber.StatusNotFound,
	}
}

func Register(app *fiber.App, handler *Handler, telemetry *telemetry.Telemetry) {
	app.Use(telemetry.Middleware())

	group := app.Group("/session")
	group.Get("", handler.HandleSessionList)
	group.Post("", handler.HandleSessionCreate)
	group.Get("/:id", handler.HandleSessionGet)
	group.Delete("/:id", handler.HandleSessionDelete)
	group.Put("/:id/input", handler.HandleSessionInput)
	group.Post("/:id/select", handler.HandleSessionSelect)
	group.Post("/:id/edit", handler.HandleSessionEdit)
	group.Get("/:id/export/text", handler.HandleExportText)
	group.Get("/:id/export/script", handler.HandleExportScript)
	group.Get("/:id/export/tree", handler.HandleExportTree)
}
