package models

// User is the database representation of a reviewer or satellite identity.
type User struct {
	UserID       string `db:"user_id"`
	Email        string `db:"email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
	SFID         string `db:"sfid"` // Nullable
	CID          string `db:"cid"`
	Status       string `db:"status"`
	APIToken     string `db:"api_token"`

	AuditFields
}
