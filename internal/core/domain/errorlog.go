package domain

import "time"

// ErrorLog captures a failed external call as opaque text for later human
// inspection. Entries are never acted on automatically.
type ErrorLog struct {
	ErrorLogID string    `json:"errorLogID"`
	Timestamp  time.Time `json:"timestamp"`
	Traceback  string    `json:"traceback"`
}
