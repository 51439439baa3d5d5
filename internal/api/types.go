package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Envelope is the backend's conventional response body.
// Data is left raw so callers decode into their own types.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// APIError is a structured backend rejection carrying a display message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// DisplayMessage converts any remote-call failure into a user-facing string,
// preferring the server-supplied message over the generic fallback.
func DisplayMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if fallback != "" {
		return fallback
	}
	return "Something went wrong. Please try again."
}
