package domain

// ContactType distinguishes contacts already present in the CRM from ones
// discovered via the org-search provider.
type ContactType string

const (
	ContactTypeNew ContactType = "new" // discovered externally, not yet pushed
	ContactTypeOld ContactType = "old" // already in the CRM
)

// ContactStatus tracks a contact through review and upload.
type ContactStatus string

const (
	ContactStatusEnrich ContactStatus = "enrich"
	ContactStatusReview ContactStatus = "review"
	ContactStatusUpload ContactStatus = "upload"
	ContactStatusHold   ContactStatus = "hold"
)

// RatingUnqualified is the seed rating/priority before the qualifier has
// matched a title keyword.
const RatingUnqualified = 10

// Contact represents a person under an Account. Contacts are exclusively
// owned by their account and are deleted with it.
type Contact struct {
	ContactID string        `json:"contactID"`
	AccountID string        `json:"accountID"`
	SFID      string        `json:"sfid"` // present when sourced from the CRM
	DOID      string        `json:"doid"` // present when sourced from org-search
	CType     ContactType   `json:"ctype"`
	Status    ContactStatus `json:"status"`

	Patched bool `json:"patched"` // enrichment attempted
	Cleaned bool `json:"cleaned"` // human verified

	Rating   int `json:"rating"`
	Priority int `json:"priority"`

	Name  string `json:"name"`
	Title string `json:"title"`

	Email  string `json:"email"`
	Office string `json:"office"`
	Direct string `json:"direct"`
	Mobile string `json:"mobile"`

	AuditFields
}
