package services

import (
	"context"
	"fmt"

	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
)

// errorLogService implements portssvc.ErrorLogSvc.
type errorLogService struct {
	BaseService
	errorLogRepo portsrepo.ErrorLogRepository
}

// NewErrorLogService creates the error log service.
func NewErrorLogService(errorLogRepo portsrepo.ErrorLogRepository) portssvc.ErrorLogSvc {
	return &errorLogService{errorLogRepo: errorLogRepo}
}

var _ portssvc.ErrorLogSvc = (*errorLogService)(nil)

func (s *errorLogService) ListErrorLogs(ctx context.Context, limit int, offset int) ([]domain.ErrorLog, error) {
	entries, err := s.errorLogRepo.ListErrorLogs(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list error logs: %w", err)
	}
	return entries, nil
}
