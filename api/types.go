package api

import (
	"time"

	"portscope/scanner"
)

// ScanTask represents a scan job managed by the API service.
type ScanTask struct {
	// ID is the immutable identifier of the scan task (UUID v4).
	ID string `json:"id" format:"uuid" example:"a3f5c62e-1234-4f72-a84a-1c2d3e4f5678"`
	// Status reflects the asynchronous lifecycle state of the task.
	Status string `json:"status" enums:"pending,running,completed,failed" example:"pending"`
	// Target is the hostname or IP submitted for the scan.
	Target string `json:"target" example:"scanme.nmap.org"`
	// Ports is the requested inclusive port range as "start-end".
	Ports string `json:"ports" example:"1-1024"`
	// Workers is the scan concurrency; 0 selects the service default.
	Workers int `json:"workers,omitempty" example:"100"`
	// Report holds the scan outcome once the task completes.
	Report *scanner.Report `json:"report,omitempty"`
	// CreatedAt records when the task was accepted.
	CreatedAt time.Time `json:"created_at" format:"date-time" example:"2024-01-02T15:04:05Z"`
	// CompletedAt is set once the task reaches a terminal state.
	CompletedAt *time.Time `json:"completed_at,omitempty" format:"date-time"`
	// Error contains context when a task fails.
	Error string `json:"error,omitempty" example:"could not resolve target"`
}

// CreateScanRequest is the payload for creating new scan tasks.
type CreateScanRequest struct {
	// Target is the hostname or IP address to probe.
	Target string `json:"target" binding:"required" example:"scanme.nmap.org"`
	// Ports expresses the inclusive range to scan as "start-end".
	Ports string `json:"ports" binding:"required" example:"1-1024"`
	// Workers optionally overrides the scan concurrency (50-500 recommended).
	Workers int `json:"workers" example:"100"`
}

// ScanAcceptedResponse is the acknowledgement returned after job submission.
type ScanAcceptedResponse struct {
	// ID is the queued task identifier clients poll with.
	ID string `json:"id" format:"uuid" example:"a3f5c62e-1234-4f72-a84a-1c2d3e4f5678"`
	// Status is always pending immediately after acceptance.
	Status string `json:"status" enums:"pending" example:"pending"`
}

// ErrorResponse provides a consistent structure for API error payloads.
type ErrorResponse struct {
	// Error is a human-readable explanation of why the request failed.
	Error string `json:"error" example:"task not found"`
}
