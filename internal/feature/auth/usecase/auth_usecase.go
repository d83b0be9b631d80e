// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain"
	"github.com/Billie0903/vina-ET-training-center/internal/feature/auth/domain/entity"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// dummyHash is compared against when the email is unknown so that login
// always performs exactly one bcrypt comparison (timing attack mitigation).
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrEmailAlreadyExists
	// when a user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user matching the given email, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user matching the given ID, or
	// domain.ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenIssuer creates signed bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint) (string, error)
}

// AuthUsecase implements registration, login and profile lookup.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new AuthUsecase with the given dependencies.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// validatePassword checks that the password meets the minimum requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new account with a bcrypt-hashed password and returns
// the persisted user together with a fresh bearer token. The role is always
// "user" regardless of what the client sent.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (*entity.User, string, error) {
	if err := validatePassword(password); err != nil {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login authenticates a user and returns the user with a bearer token.
// The bcrypt comparison runs even when the email is unknown so that the
// response time does not reveal whether the account exists.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Profile returns the user record for the given ID. The password hash stays
// inside the entity and is excluded from serialization by the model.
func (u *AuthUsecase) Profile(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}
