package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/orbitlabs/orbit/internal/auth"
	"github.com/orbitlabs/orbit/internal/models"
	"github.com/orbitlabs/orbit/internal/repositories"
	"go.uber.org/zap"
)

// DefaultSignupRole is assigned to every new account. "admin" matches the
// observed behavior of the original API; least-privilege deployments should
// change this to models.RoleUser.
const DefaultSignupRole = models.RoleAdmin

// UserRepository is the interface that wraps the user store methods needed
// by the auth service
type UserRepository interface {
	// Create inserts a new user. repositories.ErrDuplicateEmail is returned
	// when the unique email index is violated.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail retrieves a user by lowercase-normalized email.
	// repositories.ErrNotFound is returned when no such user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// ExistsByEmail checks if a user with the email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Session is the outcome of a successful authentication or signup
type Session struct {
	Token     string
	ExpiresAt int64
	UserInfo  models.UserInfo
}

// authService implements the authentication flows
type authService struct {
	userRepo UserRepository
	issuer   *auth.TokenIssuer
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, issuer *auth.TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Authenticate verifies the credentials and mints a session. Unknown email
// and password mismatch both return ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, req *models.AuthenticateRequest) (*Session, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(user)
}

// SignUp creates a new account and mints a session. The pre-check and the
// insert are not atomic; a concurrent duplicate signup is caught by the
// unique index and mapped to the same ErrEmailExists.
func (s *authService) SignUp(ctx context.Context, req *models.SignupRequest) (*Session, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	if email == "" || firstName == "" || lastName == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email, firstName, lastName, and password are required", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrValidation)
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	user := &models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		Role:         DefaultSignupRole,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return s.issueSession(user)
}

// issueSession builds session claims from the user record (password and bio
// excluded) and signs a token for them.
func (s *authService) issueSession(user *models.User) (*Session, error) {
	info := user.Info()

	token, expiresAt, err := s.issuer.Issue(info)
	if err != nil {
		s.logger.Error("failed to issue session token", zap.Int("userId", user.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: expiresAt,
		UserInfo:  info,
	}, nil
}
