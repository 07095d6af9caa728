package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"todolist/internal/models"
	"todolist/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// AuthService handles business logic for accounts: sign-up, login, and
// existence checks over the users collection.
type AuthService struct {
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// credentials is the validated shape of a sign-up or login request.
type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// HashPassword returns the hex-encoded SHA-256 digest of the UTF-8 encoded
// plaintext. The digest is unsalted; this matches the stored user documents
// and must not change without invalidating them.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// UserExists reports whether a user with the given username is registered.
func (s *AuthService) UserExists(username string) (bool, error) {
	_, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	return true, nil
}

// SignUp registers a new user, storing the password digest rather than the
// plaintext. Returns ErrInvalidInput for empty fields and ErrUsernameTaken
// for a duplicate username; the stored collection is untouched in both cases.
func (s *AuthService) SignUp(username, password string) error {
	if err := s.validate.Struct(credentials{Username: username, Password: password}); err != nil {
		return fmt.Errorf("%w: username and password cannot be empty", ErrInvalidInput)
	}

	user := &models.User{
		Username: username,
		Password: HashPassword(password),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return fmt.Errorf("%w: %s", ErrUsernameTaken, username)
		}
		return fmt.Errorf("failed to register user %q: %w", username, err)
	}
	return nil
}

// Login verifies a username/password pair against the stored digest. Returns
// ErrUserNotFound for an unknown username and ErrInvalidCredentials for a
// digest mismatch.
func (s *AuthService) Login(username, password string) error {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrUserNotFound, username)
		}
		return fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	if user.Password != HashPassword(password) {
		return ErrInvalidCredentials
	}
	return nil
}
