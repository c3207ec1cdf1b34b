package dto

import (
	"time"

	"github.com/prospectr-app/prospectr/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create an account work item.
type CreateAccountRequest struct {
	SFID    string `json:"sfid" binding:"required,sfid"`
	DOID    string `json:"doid"`
	Prep    string `json:"prep"`
	Name    string `json:"name" binding:"required"`
	Domain  string `json:"domain" binding:"required"`
	Phone   string `json:"phone"`
	Summary string `json:"summary"`
	Status  string `json:"status" binding:"omitempty,oneof=enrich queued upload done hold delta-new"`
}

// UpdateAccountRequest is the explicit patch structure for accounts. It lists
// the only fields callers may legally update; status and the cleanup flags
// have their own endpoints. Pointers distinguish absent from zero-value.
type UpdateAccountRequest struct {
	DOID    *string `json:"doid"`
	Prep    *string `json:"prep"`
	Name    *string `json:"name"`
	Domain  *string `json:"domain"`
	Phone   *string `json:"phone"`
	Summary *string `json:"summary"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string `json:"accountID"`
	SFID      string `json:"sfid"`
	DOID      string `json:"doid"`
	Prep      string `json:"prep"`
	Status    string `json:"status"`

	Cleaned  bool `json:"cleaned"`
	Enriched bool `json:"enriched"`

	Name   string `json:"name"`
	Domain string `json:"domain"`
	Phone  string `json:"phone"`

	Hierarchy string `json:"hierarchy,omitempty"`
	Summary   string `json:"summary,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		SFID:          acc.SFID,
		DOID:          acc.DOID,
		Prep:          acc.Prep,
		Status:        string(acc.Status),
		Cleaned:       acc.Cleaned,
		Enriched:      acc.Enriched,
		Name:          acc.Name,
		Domain:        acc.Domain,
		Phone:         acc.Phone,
		Hierarchy:     acc.Hierarchy,
		Summary:       acc.Summary,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to responses.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines pagination parameters for listing accounts.
// Arbitrary field filters come from the remaining query string.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
