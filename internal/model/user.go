package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// IsValidRole reports whether r is a recognised role.
func IsValidRole(r string) bool {
	return r == RoleUser || r == RoleModerator || r == RoleAdmin
}

// User represents an account. PasswordHash never leaves the API.
type User struct {
	ID                     uuid.UUID `json:"_id" db:"id"`
	Name                   string    `json:"name" db:"name"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	Phone                  string    `json:"phone,omitempty" db:"phone"`
	Address                string    `json:"address,omitempty" db:"address"`
	IsActive               bool      `json:"isActive" db:"is_active"`
	IsNewsletterSubscribed bool      `json:"isNewsletterSubscribed" db:"is_newsletter_subscribed"`
	CreatedAt              time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt              time.Time `json:"updatedAt" db:"updated_at"`
}

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the registration request payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate is the profile update payload. Nil fields are left untouched.
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Token string    `json:"token"`
}
