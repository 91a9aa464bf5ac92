package span

import (
	"errors"
)

// Error is a chain of messages collected while an error travels up through
// spans. Items[0] holds the original cause.
type Error struct {
	Items []*ErrorItem `json:"items,omitempty"`
}

type ErrorItem struct {
	Span    *Span   `json:"-"`
	Trace   *Caller `json:"trace,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   error   `json:"-"`
}

func (r *Error) Error() string {
	cause := r.Items[0]
	if cause.Error != nil {
		return *r.Items[len(r.Items)-1].Message + ": " + cause.Error.Error()
	}
	return *r.Items[len(r.Items)-1].Message
}

func (r *Error) Unwrap() error {
	return r.Items[0].Error
}

// Message is the message closest to the cause.
func (r *Error) Message() *string {
	return r.Items[0].Message
}

func NewError(span *Span, message string, err error) error {
	trace := NewCaller()
	if err == nil {
		return &Error{
			Items: []*ErrorItem{
				{
					Span:    span,
					Trace:   trace,
					Message: &message,
					Error:   nil,
				},
			},
		}
	}

	var e *Error
	if errors.As(err, &e) {
		e.Items = append(e.Items, &ErrorItem{
			Span:    span,
			Trace:   trace,
			Message: &message,
			Error:   nil,
		})
		return e
	}

	return &Error{
		Items: []*ErrorItem{
			{
				Span:    span,
				Trace:   trace,
				Message: &message,
				Error:   err,
			},
		},
	}
}
