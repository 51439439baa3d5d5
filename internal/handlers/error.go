// Package handlers contains the Echo route handlers for the gateway.
package handlers

// ErrorResponse is the standard gateway error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
