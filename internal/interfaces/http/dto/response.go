package dto

import "time"

// MessageResponse acknowledges a successful write
type MessageResponse struct {
	Message string `json:"message" example:"Role added successfully"`
}

// ErrorResponse carries a failure description
type ErrorResponse struct {
	Error string `json:"error" example:"Failed to fetch user details"`
}

// Added returns the create acknowledgement for label
func Added(label string) MessageResponse {
	return MessageResponse{Message: label + " added successfully"}
}

// Updated returns the update acknowledgement for label
func Updated(label string) MessageResponse {
	return MessageResponse{Message: label + " updated successfully"}
}

// Deleted returns the delete acknowledgement for label
func Deleted(label string) MessageResponse {
	return MessageResponse{Message: label + " deleted successfully"}
}

// NewError wraps msg in an ErrorResponse
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ExportResponse points at an archived spreadsheet
type ExportResponse struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Rows      int       `json:"rows"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HealthResponse reports service and database state
type HealthResponse struct {
	Status   string     `json:"status" example:"ok"`
	Database string     `json:"database" example:"up"`
	Pool     *PoolStats `json:"pool,omitempty"`
}

// PoolStats is a snapshot of the connection pool
type PoolStats struct {
	MaxOpen int   `json:"max_open"`
	Open    int   `json:"open"`
	InUse   int   `json:"in_use"`
	Idle    int   `json:"idle"`
	Waits   int64 `json:"waits"`
}
