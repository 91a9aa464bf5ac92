package serve

import (
	"github.com/nickmackenzie/folder-hero/command/folderhero/procedure/view"
)

type SessionCreateRequest struct {
	Input *string `json:"input" validate:"required"`
}

type SessionInputRequest struct {
	Input *string `json:"input" validate:"required"`
}

type SessionSelectRequest struct {
	Element *string `json:"element" validate:"required"`
}

type SessionEditRequest struct {
	Action      *string `json:"action" validate:"required,oneof=rename move nest delete create clone"`
	Element     *string `json:"element"`
	Label       *string `json:"label"`
	Destination *string `json:"destination"`
}

type SessionResponse struct {
	Id        *string         `json:"id"`
	Version   *uint64         `json:"version"`
	Input     *string         `json:"input"`
	Selection *string         `json:"selection,omitempty"`
	Elements  []*view.Element `json:"elements"`
	Drawing   *string         `json:"drawing"`
}

type SessionListResponse struct {
	Total    *int               `json:"total"`
	Sessions []*SessionResponse `json:"sessions"`
}

type EditResult struct {
	Action     *string `json:"action"`
	Changed    *bool   `json:"changed"`
	Structural *bool   `json:"structural"`
	Element    *string `json:"element,omitempty"`
}

type SessionEditResponse struct {
	Result  *EditResult      `json:"result"`
	Session *SessionResponse `json:"session"`
}
