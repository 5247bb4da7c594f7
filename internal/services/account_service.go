package services

import (
	"context"
	"errors"

	"github.com/orbitlabs/orbit/internal/models"
	"github.com/orbitlabs/orbit/internal/repositories"
	"go.uber.org/zap"
)

// AccountRepository is the interface that wraps the user store methods
// needed by the account service
type AccountRepository interface {
	// GetBio retrieves a user's bio by id
	GetBio(ctx context.Context, userID int) (string, error)
	// UpdateBio updates a user's bio
	UpdateBio(ctx context.Context, userID int, bio string) error
	// UpdateRole updates a user's role
	UpdateRole(ctx context.Context, userID int, role models.Role) error
	// ListProfiles retrieves the directory view of all users
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
}

// accountService implements profile and role management
type accountService struct {
	accountRepo AccountRepository
	logger      *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(accountRepo AccountRepository, logger *zap.Logger) *accountService {
	return &accountService{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

// GetBio returns the caller's bio
func (s *accountService) GetBio(ctx context.Context, userID int) (string, error) {
	bio, err := s.accountRepo.GetBio(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return bio, nil
}

// UpdateBio stores the caller's bio and returns the stored value
func (s *accountService) UpdateBio(ctx context.Context, userID int, bio string) (string, error) {
	if err := s.accountRepo.UpdateBio(ctx, userID, bio); err != nil {
		return "", err
	}
	return bio, nil
}

// UpdateRole changes the caller's role. The value is validated against the
// closed role set before touching the store. The change takes effect on the
// next login, since role checks read the token claims.
func (s *accountService) UpdateRole(ctx context.Context, userID int, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	if err := s.accountRepo.UpdateRole(ctx, userID, role); err != nil {
		return err
	}

	s.logger.Info("user role updated", zap.Int("userId", userID), zap.String("role", string(role)))
	return nil
}

// ListUsers returns the directory view of all users
func (s *accountService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	return s.accountRepo.ListProfiles(ctx)
}
