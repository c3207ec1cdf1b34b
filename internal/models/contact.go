package models

// Contact is the database representation of a person under an account.
// The account_id FK cascades on delete.
type Contact struct {
	ContactID string `db:"contact_id"`
	AccountID string `db:"account_id"`
	SFID      string `db:"sfid"` // Nullable
	DOID      string `db:"doid"` // Nullable
	CType     string `db:"ctype"`
	Status    string `db:"status"`

	Patched bool `db:"patched"`
	Cleaned bool `db:"cleaned"`

	Rating   int `db:"rating"`
	Priority int `db:"priority"`

	Name  string `db:"name"`
	Title string `db:"title"` // Nullable

	Email  string `db:"email"`  // Nullable
	Office string `db:"office"` // Nullable
	Direct string `db:"direct"` // Nullable
	Mobile string `db:"mobile"` // Nullable

	AuditFields
}
