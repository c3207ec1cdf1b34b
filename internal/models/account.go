package models

import "time"

// Account is the database representation of a CRM account work item.
type Account struct {
	AccountID string `db:"account_id"`
	SFID      string `db:"sfid"`
	DOID      string `db:"doid"` // Nullable
	Prep      string `db:"prep"` // Nullable
	Status    string `db:"status"`

	Cleaned  bool `db:"cleaned"`
	Enriched bool `db:"enriched"`

	Name   string `db:"name"`
	Domain string `db:"domain"`
	Phone  string `db:"phone"` // Nullable

	Hierarchy string `db:"hierarchy"` // Nullable
	Summary   string `db:"summary"`   // Nullable
	Updated   string `db:"updated"`   // Nullable, YYYY-MM-DD

	AuditFields
}

// AuditFields holds common timestamp columns.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
