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

// contactFilterColumns is the closed set of fields callers may filter on.
var contactFilterColumns = map[string]string{
	"accountID": "account_id",
	"sfid":      "sfid",
	"doid":      "doid",
	"ctype":     "ctype",
	"status":    "status",
	"patched":   "patched",
	"cleaned":   "cleaned",
	"rating":    "rating",
	"priority":  "priority",
	"name":      "name",
}

type PgxContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgxContactRepository creates a new repository for contact data.
func NewPgxContactRepository(pool *pgxpool.Pool) portsrepo.ContactRepository {
	return &PgxContactRepository{pool: pool}
}

var _ portsrepo.ContactRepository = (*PgxContactRepository)(nil)

func toModelContact(d domain.Contact) models.Contact {
	return models.Contact{
		ContactID: d.ContactID,
		AccountID: d.AccountID,
		SFID:      d.SFID,
		DOID:      d.DOID,
		CType:     string(d.CType),
		Status:    string(d.Status),
		Patched:   d.Patched,
		Cleaned:   d.Cleaned,
		Rating:    d.Rating,
		Priority:  d.Priority,
		Name:      d.Name,
		Title:     d.Title,
		Email:     d.Email,
		Office:    d.Office,
		Direct:    d.Direct,
		Mobile:    d.Mobile,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

func toDomainContact(m models.Contact) domain.Contact {
	return domain.Contact{
		ContactID: m.ContactID,
		AccountID: m.AccountID,
		SFID:      m.SFID,
		DOID:      m.DOID,
		CType:     domain.ContactType(m.CType),
		Status:    domain.ContactStatus(m.Status),
		Patched:   m.Patched,
		Cleaned:   m.Cleaned,
		Rating:    m.Rating,
		Priority:  m.Priority,
		Name:      m.Name,
		Title:     m.Title,
		Email:     m.Email,
		Office:    m.Office,
		Direct:    m.Direct,
		Mobile:    m.Mobile,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const contactColumns = `contact_id, account_id, sfid, doid, ctype, status, patched, cleaned, rating, priority, name, title, email, office, direct, mobile, created_at, last_updated_at`

func scanContact(row pgx.Row) (*models.Contact, error) {
	var m models.Contact
	var sfid, doid, title, email, office, direct, mobile sql.NullString
	err := row.Scan(
		&m.ContactID,
		&m.AccountID,
		&sfid,
		&doid,
		&m.CType,
		&m.Status,
		&m.Patched,
		&m.Cleaned,
		&m.Rating,
		&m.Priority,
		&m.Name,
		&title,
		&email,
		&office,
		&direct,
		&mobile,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.SFID = sfid.String
	m.DOID = doid.String
	m.Title = title.String
	m.Email = email.String
	m.Office = office.String
	m.Direct = direct.String
	m.Mobile = mobile.String
	return &m, nil
}

// SaveContact persists a new contact.
func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	m := toModelContact(contact)

	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ContactID,
		m.AccountID,
		nullIfEmpty(m.SFID),
		nullIfEmpty(m.DOID),
		m.CType,
		m.Status,
		m.Patched,
		m.Cleaned,
		m.Rating,
		m.Priority,
		m.Name,
		nullIfEmpty(m.Title),
		nullIfEmpty(m.Email),
		nullIfEmpty(m.Office),
		nullIfEmpty(m.Direct),
		nullIfEmpty(m.Mobile),
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // Unique violation on (account_id, name)
				return fmt.Errorf("%w: contact %q already exists under account %s", apperrors.ErrDuplicate, m.Name, m.AccountID)
			case "23503": // FK violation, owning account is gone
				return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
			}
		}
		return fmt.Errorf("failed to save contact %s: %w", m.ContactID, err)
	}
	return nil
}

// FindContactByID retrieves a contact by its internal ID.
func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1;`

	m, err := scanContact(r.pool.QueryRow(ctx, query, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact by ID %s: %w", contactID, err)
	}

	d := toDomainContact(*m)
	return &d, nil
}

// FindContactByAccountAndName retrieves the contact with the given name under
// the account.
func (r *PgxContactRepository) FindContactByAccountAndName(ctx context.Context, accountID string, name string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE account_id = $1 AND name = $2;`

	m, err := scanContact(r.pool.QueryRow(ctx, query, accountID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contact %q under account %s: %w", name, accountID, err)
	}

	d := toDomainContact(*m)
	return &d, nil
}

// ListContacts retrieves contacts matching the exact-match filter set.
func (r *PgxContactRepository) ListContacts(ctx context.Context, filters map[string]string, limit int, offset int) ([]domain.Contact, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var conditions []string
	args := []interface{}{}
	for field, value := range filters {
		column, ok := contactFilterColumns[field]
		if !ok {
			return nil, fmt.Errorf("%w: unknown filter field %q", apperrors.ErrValidation, field)
		}
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s::text = $%d", column, len(args)))
	}

	query := `SELECT ` + contactColumns + ` FROM contacts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

// ListContactsByAccount retrieves every contact under an account.
func (r *PgxContactRepository) ListContactsByAccount(ctx context.Context, accountID string) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE account_id = $1 ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

// ListAllContacts retrieves every contact in the store.
func (r *PgxContactRepository) ListAllContacts(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all contacts: %w", err)
	}
	defer rows.Close()

	return collectContacts(rows)
}

// UpdateContact updates an existing contact's fields.
func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	m := toModelContact(contact)

	query := `
		UPDATE contacts
		SET sfid = $2, doid = $3, ctype = $4, status = $5, patched = $6, cleaned = $7,
		    rating = $8, priority = $9, name = $10, title = $11, email = $12,
		    office = $13, direct = $14, mobile = $15, last_updated_at = $16
		WHERE contact_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.ContactID,
		nullIfEmpty(m.SFID),
		nullIfEmpty(m.DOID),
		m.CType,
		m.Status,
		m.Patched,
		m.Cleaned,
		m.Rating,
		m.Priority,
		m.Name,
		nullIfEmpty(m.Title),
		nullIfEmpty(m.Email),
		nullIfEmpty(m.Office),
		nullIfEmpty(m.Direct),
		nullIfEmpty(m.Mobile),
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact %s: %w", m.ContactID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteContact removes a contact.
func (r *PgxContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE contact_id = $1;`, contactID)
	if err != nil {
		return fmt.Errorf("failed to delete contact %s: %w", contactID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectContacts(rows pgx.Rows) ([]domain.Contact, error) {
	contacts := []domain.Contact{}
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, toDomainContact(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", rows.Err())
	}
	return contacts, nil
}
