// Package repositories contains the MySQL data access layer
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/orbitlabs/orbit/internal/models"
	"go.uber.org/zap"
)

// Store-level sentinel errors
var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// email index. The index is the authoritative guard against concurrent
	// duplicate signups.
	ErrDuplicateEmail = errors.New("email already exists")
)

// mysqlDuplicateEntry is the MySQL error number for unique constraint violations
const mysqlDuplicateEntry = 1062

// userRepository implements the user store over MySQL
type userRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB, logger *zap.Logger) *userRepository {
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, first_name, last_name, password_hash, bio, role, avatar)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PasswordHash, user.Bio, user.Role, user.Avatar)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateEmail
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		r.logger.Error("failed to get last insert id", zap.Error(err))
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	user.ID = int(id)
	return nil
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash, bio, role, avatar
		FROM users
		WHERE email = ?
		LIMIT 1
	`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.Bio,
		&user.Role,
		&user.Avatar,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err))
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

// UpdateRole updates a user's role
func (r *userRepository) UpdateRole(ctx context.Context, userID int, role models.Role) error {
	query := `UPDATE users SET role = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, role, userID); err != nil {
		r.logger.Error("failed to update user role", zap.Error(err), zap.Int("userId", userID))
		return fmt.Errorf("failed to update user role: %w", err)
	}

	return nil
}

// GetBio retrieves a user's bio
func (r *userRepository) GetBio(ctx context.Context, userID int) (string, error) {
	query := `SELECT bio FROM users WHERE id = ?`

	var bio string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&bio)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		r.logger.Error("failed to get bio", zap.Error(err), zap.Int("userId", userID))
		return "", fmt.Errorf("failed to get bio: %w", err)
	}

	return bio, nil
}

// UpdateBio updates a user's bio and returns the stored value
func (r *userRepository) UpdateBio(ctx context.Context, userID int, bio string) error {
	query := `UPDATE users SET bio = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, bio, userID); err != nil {
		r.logger.Error("failed to update bio", zap.Error(err), zap.Int("userId", userID))
		return fmt.Errorf("failed to update bio: %w", err)
	}

	return nil
}

// ListProfiles retrieves the directory view of all users. Emails, roles and
// credentials stay out of this projection.
func (r *userRepository) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	query := `SELECT id, first_name, last_name, avatar, bio FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("failed to list user profiles", zap.Error(err))
		return nil, fmt.Errorf("failed to list user profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.UserProfile{}
	for rows.Next() {
		var p models.UserProfile
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Avatar, &p.Bio); err != nil {
			r.logger.Error("failed to scan user profile", zap.Error(err))
			return nil, fmt.Errorf("failed to scan user profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user profiles: %w", err)
	}

	return profiles, nil
}
