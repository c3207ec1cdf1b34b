package domain

// UserStatus tracks account confirmation.
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusConfirmed UserStatus = "confirmed"
)

// User is a human reviewer or satellite service identity.
type User struct {
	UserID       string     `json:"userID"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	SFID         string     `json:"sfid"` // the reviewer's CRM user ID
	CID          string     `json:"-"`    // confirmation ID
	Status       UserStatus `json:"status"`
	APIToken     string     `json:"-"` // opaque bearer token for satellites

	AuditFields
}
