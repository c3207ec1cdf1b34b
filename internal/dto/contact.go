package dto

import (
	"time"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// CreateContactRequest defines the data needed to add a contact under an
// account. Name defaults to "New Contact" when omitted, matching the manual
// add-and-review flow.
type CreateContactRequest struct {
	AccountID string `json:"accountID" binding:"required"`
	Name      string `json:"name"`
	Title     string `json:"title"`
	Email     string `json:"email" binding:"omitempty,email"`
	Office    string `json:"office"`
	Direct    string `json:"direct"`
	Mobile    string `json:"mobile"`
	CType     string `json:"ctype" binding:"omitempty,oneof=new old"`
	Status    string `json:"status" binding:"omitempty,oneof=enrich review upload hold"`
}

// UpdateContactRequest is the explicit patch structure for contacts. Status,
// ctype and the review flags are managed through their own endpoints.
type UpdateContactRequest struct {
	Name   *string `json:"name"`
	Title  *string `json:"title"`
	Email  *string `json:"email"`
	Office *string `json:"office"`
	Direct *string `json:"direct"`
	Mobile *string `json:"mobile"`
}

// ContactResponse defines the data returned for a contact.
type ContactResponse struct {
	ContactID string `json:"contactID"`
	AccountID string `json:"accountID"`
	SFID      string `json:"sfid"`
	DOID      string `json:"doid"`
	CType     string `json:"ctype"`
	Status    string `json:"status"`

	Patched bool `json:"patched"`
	Cleaned bool `json:"cleaned"`

	Rating   int `json:"rating"`
	Priority int `json:"priority"`

	Name  string `json:"name"`
	Title string `json:"title"`

	Email  string `json:"email"`
	Office string `json:"office"`
	Direct string `json:"direct"`
	Mobile string `json:"mobile"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToContactResponse converts a domain.Contact to ContactResponse.
func ToContactResponse(c *domain.Contact) ContactResponse {
	return ContactResponse{
		ContactID:     c.ContactID,
		AccountID:     c.AccountID,
		SFID:          c.SFID,
		DOID:          c.DOID,
		CType:         string(c.CType),
		Status:        string(c.Status),
		Patched:       c.Patched,
		Cleaned:       c.Cleaned,
		Rating:        c.Rating,
		Priority:      c.Priority,
		Name:          c.Name,
		Title:         c.Title,
		Email:         c.Email,
		Office:        c.Office,
		Direct:        c.Direct,
		Mobile:        c.Mobile,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListContactResponse converts a slice of domain.Contact to responses.
func ToListContactResponse(contacts []domain.Contact) []ContactResponse {
	res := make([]ContactResponse, len(contacts))
	for i := range contacts {
		res[i] = ToContactResponse(&contacts[i])
	}
	return res
}

// ListContactsParams defines pagination parameters for listing contacts.
type ListContactsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListContactsResponse wraps the list of contacts.
type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}
