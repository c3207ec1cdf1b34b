package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prospectr-app/prospectr/internal/apperrors"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	"github.com/prospectr-app/prospectr/internal/models"
)

// accountFilterColumns is the closed set of fields callers may filter on.
// Anything else is rejected rather than interpolated.
var accountFilterColumns = map[string]string{
	"sfid":     "sfid",
	"doid":     "doid",
	"prep":     "prep",
	"status":   "status",
	"cleaned":  "cleaned",
	"enriched": "enriched",
	"name":     "name",
	"domain":   "domain",
}

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPgxAccountRepository creates a new repository for account data.
func NewPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// Helper to convert domain.Account to models.Account for DB storage
func toModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		SFID:      d.SFID,
		DOID:      d.DOID,
		Prep:      d.Prep,
		Status:    string(d.Status),
		Cleaned:   d.Cleaned,
		Enriched:  d.Enriched,
		Name:      d.Name,
		Domain:    d.Domain,
		Phone:     d.Phone,
		Hierarchy: d.Hierarchy,
		Summary:   d.Summary,
		Updated:   d.Updated,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Account from DB to domain.Account
func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		SFID:      m.SFID,
		DOID:      m.DOID,
		Prep:      m.Prep,
		Status:    domain.AccountStatus(m.Status),
		Cleaned:   m.Cleaned,
		Enriched:  m.Enriched,
		Name:      m.Name,
		Domain:    m.Domain,
		Phone:     m.Phone,
		Hierarchy: m.Hierarchy,
		Summary:   m.Summary,
		Updated:   m.Updated,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const accountColumns = `account_id, sfid, doid, prep, status, cleaned, enriched, name, domain, phone, hierarchy, summary, updated, created_at, last_updated_at`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	var doid, prep, phone, hierarchy, summary, updated sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.SFID,
		&doid,
		&prep,
		&m.Status,
		&m.Cleaned,
		&m.Enriched,
		&m.Name,
		&m.Domain,
		&phone,
		&hierarchy,
		&summary,
		&updated,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.DOID = doid.String
	m.Prep = prep.String
	m.Phone = phone.String
	m.Hierarchy = hierarchy.String
	m.Summary = summary.String
	m.Updated = updated.String
	return &m, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SaveAccount inserts a new account work item.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.SFID,
		nullIfEmpty(m.DOID),
		nullIfEmpty(m.Prep),
		m.Status,
		m.Cleaned,
		m.Enriched,
		m.Name,
		m.Domain,
		nullIfEmpty(m.Phone),
		nullIfEmpty(m.Hierarchy),
		nullIfEmpty(m.Summary),
		nullIfEmpty(m.Updated),
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account with sfid %s already exists", apperrors.ErrDuplicate, m.SFID)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its internal ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	d := toDomainAccount(*m)
	return &d, nil
}

// FindAccountBySFID retrieves an account by its CRM record ID.
func (r *PgxAccountRepository) FindAccountBySFID(ctx context.Context, sfid string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE sfid = $1;`

	m, err := scanAccount(r.pool.QueryRow(ctx, query, sfid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by sfid %s: %w", sfid, err)
	}

	d := toDomainAccount(*m)
	return &d, nil
}

// ListAccounts retrieves accounts matching the exact-match filter set.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var conditions []string
	args := []interface{}{}
	for field, value := range filters {
		column, ok := accountFilterColumns[field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown filter field %q", apperrors.ErrValidation, field)
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s::text = $%d", column, len(args)))
	}

	query := `SELECT ` + accountColumns + ` FROM accounts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListAccountsByStatus retrieves all accounts with the given status.
func (r *PgxAccountRepository) ListAccountsByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE status = $1 ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by status %s: %w", status, err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListCompletedAccounts retrieves accounts with both cleanup flags set.
func (r *PgxAccountRepository) ListCompletedAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE cleaned = TRUE AND enriched = TRUE;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query completed accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListAccountsWithPrep retrieves accounts that have a prospecting rep assigned.
func (r *PgxAccountRepository) ListAccountsWithPrep(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE prep IS NOT NULL AND prep <> '';`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts with prep: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// UpdateAccount updates an existing account's fields.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := toModelAccount(account)

	query := `
		UPDATE accounts
		SET sfid = $2, doid = $3, prep = $4, status = $5, cleaned = $6, enriched = $7,
		    name = $8, domain = $9, phone = $10, hierarchy = $11, summary = $12,
		    updated = $13, last_updated_at = $14
		WHERE account_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.SFID,
		nullIfEmpty(m.DOID),
		nullIfEmpty(m.Prep),
		m.Status,
		m.Cleaned,
		m.Enriched,
		m.Name,
		m.Domain,
		nullIfEmpty(m.Phone),
		nullIfEmpty(m.Hierarchy),
		nullIfEmpty(m.Summary),
		nullIfEmpty(m.Updated),
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccount removes an account; owned contacts cascade.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}
