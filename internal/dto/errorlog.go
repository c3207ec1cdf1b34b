package dto

import (
	"time"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// ErrorLogResponse defines the data returned for an error-log entry.
type ErrorLogResponse struct {
	ErrorLogID string    `json:"errorLogID"`
	Timestamp  time.Time `json:"timestamp"`
	Traceback  string    `json:"traceback"`
}

// ToErrorLogResponse converts a domain.ErrorLog to ErrorLogResponse.
func ToErrorLogResponse(e *domain.ErrorLog) ErrorLogResponse {
	return ErrorLogResponse{
		ErrorLogID: e.ErrorLogID,
		Timestamp:  e.Timestamp,
		Traceback:  e.Traceback,
	}
}

// ListErrorLogsParams defines pagination parameters for listing error logs.
type ListErrorLogsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListErrorLogsResponse wraps the list of error-log entries.
type ListErrorLogsResponse struct {
	Errors []ErrorLogResponse `json:"errors"`
}
