package repositories

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// ErrorLogRepository persists failed external calls for human inspection.
type ErrorLogRepository interface {
	// SaveErrorLog appends an error record.
	SaveErrorLog(ctx context.Context, entry domain.ErrorLog) error

	// ListErrorLogs retrieves error records, newest first.
	ListErrorLogs(ctx context.Context, limit int, offset int) ([]domain.ErrorLog, error)
}
