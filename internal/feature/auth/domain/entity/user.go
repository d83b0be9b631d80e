// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User roles. Accounts always start as RoleUser; admins are promoted by the
// bootstrap command, never by registration input.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the display name shown on authored content.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password. It is never
	// serialized into API responses.
	Password string `gorm:"size:255;not null" json:"-"`

	// Role is either "user" or "admin".
	Role string `gorm:"size:32;not null;default:user" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
