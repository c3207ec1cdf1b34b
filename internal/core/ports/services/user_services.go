package services

import (
	"context"

	"github.com/prospectr-app/prospectr/internal/core/domain"
	"github.com/prospectr-app/prospectr/internal/dto"
)

// UserSvcFacade covers registration, login and satellite token checks.
type UserSvcFacade interface {
	// Register creates a user and issues their satellite API token. Sign-up
	// is restricted to the configured email domain.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies credentials and returns the user for JWT issuance.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error)

	// Confirm transitions a pending user to confirmed when the confirmation
	// ID matches.
	Confirm(ctx context.Context, email string, cid string) error

	// Authorize resolves an opaque API token to its user. Unknown tokens
	// yield ErrForbidden.
	Authorize(ctx context.Context, token string) (*domain.User, error)

	// GetUserByID retrieves a user by internal ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
