package dto

import "github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"

// UserProfile is the public projection of a user record. The password hash
// never appears here.
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// NewUserProfile builds the public projection of a user.
func NewUserProfile(u *entity.User) UserProfile {
	return UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}
