package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	"github.com/prospectr-app/prospectr/internal/models"
)

type PgxErrorLogRepository struct {
	pool *pgxpool.Pool
}

// NewPgxErrorLogRepository creates a new repository for error-log data.
func NewPgxErrorLogRepository(pool *pgxpool.Pool) portsrepo.ErrorLogRepository {
	return &PgxErrorLogRepository{pool: pool}
}

var _ portsrepo.ErrorLogRepository = (*PgxErrorLogRepository)(nil)

// SaveErrorLog appends an error record.
func (r *PgxErrorLogRepository) SaveErrorLog(ctx context.Context, entry domain.ErrorLog) error {
	query := `
		INSERT INTO error_logs (error_log_id, timestamp, traceback)
		VALUES ($1, $2, $3);
	`
	_, err := r.pool.Exec(ctx, query, entry.ErrorLogID, entry.Timestamp, entry.Traceback)
	if err != nil {
		return fmt.Errorf("failed to save error log: %w", err)
	}
	return nil
}

// ListErrorLogs retrieves error records, newest first.
func (r *PgxErrorLogRepository) ListErrorLogs(ctx context.Context, limit int, offset int) ([]domain.ErrorLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT error_log_id, timestamp, traceback
		FROM error_logs
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query error logs: %w", err)
	}
	defer rows.Close()

	entries := []domain.ErrorLog{}
	for rows.Next() {
		var m models.ErrorLog
		if err := rows.Scan(&m.ErrorLogID, &m.Timestamp, &m.Traceback); err != nil {
			return nil, fmt.Errorf("failed to scan error log row: %w", err)
		}
		entries = append(entries, domain.ErrorLog{
			ErrorLogID: m.ErrorLogID,
			Timestamp:  m.Timestamp,
			Traceback:  m.Traceback,
		})
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating error log rows: %w", rows.Err())
	}
	return entries, nil
}
