package models

// Role is the access level assigned to a user account.
type Role string

// Allowed role values
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the allowed values.
// Role arrives as free-form input on signup defaults and the role-update
// endpoint, so it must be validated at every boundary.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user record in the store
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Bio          string `json:"bio,omitempty"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
}

// UserInfo is the identity view embedded in session tokens and returned to
// the client after authentication. It excludes the password hash and bio.
type UserInfo struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
}

// Info builds the token/response view of a user record.
func (u *User) Info() UserInfo {
	return UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Avatar:    u.Avatar,
	}
}

// UserProfile is the directory view returned by the users listing.
// It intentionally omits email, role and credentials.
type UserProfile struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// AuthenticateRequest represents a login request
type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents an account creation request
type SignupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// AuthResponse is the body returned by both authentication endpoints
type AuthResponse struct {
	Message   string   `json:"message"`
	UserInfo  UserInfo `json:"userInfo"`
	ExpiresAt int64    `json:"expiresAt"`
}
