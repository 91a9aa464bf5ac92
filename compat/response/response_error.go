package response

// ErrorResponse is the body written by the fiber error handler.
type ErrorResponse struct {
	Success *bool   `json:"success"`
	Message *string `json:"message,omitempty"`
	Error   *string `json:"error,omitempty"`
}
