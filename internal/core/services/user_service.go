package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prospectr-app/prospectr/internal/apperrors"
	"github.com/prospectr-app/prospectr/internal/core/domain"
	portsrepo "github.com/prospectr-app/prospectr/internal/core/ports/repositories"
	portssvc "github.com/prospectr-app/prospectr/internal/core/ports/services"
	"github.com/prospectr-app/prospectr/internal/dto"
	"github.com/prospectr-app/prospectr/internal/utils"
)

// apiTokenBytes sizes the opaque satellite token (hex encoded, so twice this
// many characters).
const apiTokenBytes = 32

// userService implements portssvc.UserSvcFacade.
type userService struct {
	BaseService
	userRepo          portsrepo.UserRepository
	signupEmailDomain string
}

// NewUserService creates the user service. signupEmailDomain restricts who
// may register, e.g. "@prospectr.app".
func NewUserService(userRepo portsrepo.UserRepository, signupEmailDomain string) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, signupEmailDomain: signupEmailDomain}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if s.signupEmailDomain != "" && !strings.HasSuffix(email, s.signupEmailDomain) {
		return nil, fmt.Errorf("registration restricted to %s addresses: %w", s.signupEmailDomain, apperrors.ErrForbidden)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(apiTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate API token: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		SFID:         req.SFID,
		CID:          uuid.NewString(),
		Status:       domain.UserStatusPending,
		APIToken:     token,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to register user", slog.String("email", email))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("email", email))
	return &user, nil
}

func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrForbidden)
	}
	// Pending users can log in; confirmation only marks the email as
	// verified, it does not gate authentication.
	return user, nil
}

func (s *userService) Confirm(ctx context.Context, email string, cid string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return fmt.Errorf("failed to look up user for confirmation: %w", err)
	}

	if user.CID != cid {
		return fmt.Errorf("confirmation ID mismatch: %w", apperrors.ErrForbidden)
	}
	if user.Status == domain.UserStatusConfirmed {
		return nil
	}

	user.Status = domain.UserStatusConfirmed
	user.LastUpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to confirm user: %w", err)
	}

	s.LogInfo(ctx, "User confirmed", slog.String("user_id", user.UserID))
	return nil
}

func (s *userService) Authorize(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, fmt.Errorf("empty API token: %w", apperrors.ErrForbidden)
	}

	user, err := s.userRepo.FindUserByAPIToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("unknown API token: %w", apperrors.ErrForbidden)
		}
		return nil, fmt.Errorf("failed to resolve API token: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
