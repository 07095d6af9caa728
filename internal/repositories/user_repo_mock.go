package repositories

import (
	"fmt"
	"sync"

	"todolist/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users []models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// GetAll returns all users in insertion order.
func (r *MockUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

// GetByUsername returns a user by username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// Create appends a new user, rejecting duplicate usernames.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Username == user.Username {
			return fmt.Errorf("user %q: %w", user.Username, ErrDuplicate)
		}
	}
	r.users = append(r.users, *user)
	return nil
}
