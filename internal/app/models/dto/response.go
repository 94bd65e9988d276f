package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Data      interface{} `json:"data,omitempty"`
	Message   string      `json:"message,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// EmptyTableMessage is returned when a collection query matches no rows.
// This is informational, not an error.
const EmptyTableMessage = "No records found. Add a statement to get started."
