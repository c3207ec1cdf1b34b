package models

import "time"

// ErrorLog stores the text of a failed external call.
type ErrorLog struct {
	ErrorLogID string    `db:"error_log_id"`
	Timestamp  time.Time `db:"timestamp"`
	Traceback  string    `db:"traceback"`
}
