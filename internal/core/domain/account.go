package domain

// AccountStatus tracks an account through the enrichment pipeline.
type AccountStatus string

const (
	AccountStatusEnrich   AccountStatus = "enrich"
	AccountStatusQueued   AccountStatus = "queued"
	AccountStatusUpload   AccountStatus = "upload"
	AccountStatusDone     AccountStatus = "done"
	AccountStatusHold     AccountStatus = "hold"
	AccountStatusDeltaNew AccountStatus = "delta-new"
)

// Account represents a CRM account awaiting enrichment. It is a transient
// work item: the CRM stays the system of record, and the row is deleted once
// the completion push succeeds.
type Account struct {
	AccountID string        `json:"accountID"`
	SFID      string        `json:"sfid"` // CRM record ID, unique per store
	DOID      string        `json:"doid"` // org-search provider ID, optional
	Prep      string        `json:"prep"` // prospecting rep CRM user ID
	Status    AccountStatus `json:"status"`

	Cleaned  bool `json:"cleaned"`
	Enriched bool `json:"enriched"`

	Name   string `json:"name"`
	Domain string `json:"domain"`
	Phone  string `json:"phone"`

	Hierarchy string `json:"hierarchy"` // serialized org chart, optional
	Summary   string `json:"summary"`

	// Updated is the date (YYYY-MM-DD) of the last org-search pull; contact
	// collection skips the org-search provider when it matches today.
	Updated string `json:"updated"`

	AuditFields
}
