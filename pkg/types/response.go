package types

import "net/http"

// Envelope is the uniform API response body. Success and error responses
// share the same shape; data is null on errors.
type Envelope struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// NewEnvelope builds a response envelope for the given HTTP status.
// The message defaults to the status text when empty.
func NewEnvelope(status int, message string, data any) Envelope {
	if message == "" {
		message = http.StatusText(status)
	}
	return Envelope{
		Code:    status,
		Status:  http.StatusText(status),
		Message: message,
		Data:    data,
	}
}
