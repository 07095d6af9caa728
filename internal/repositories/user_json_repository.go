package repositories

import (
	"fmt"

	"todolist/internal/models"
	"todolist/internal/storage"
)

// JSONUserRepository is a UserRepository backed by a whole-document JSON
// store. Every operation re-reads the full users document; mutations rewrite
// it in place.
type JSONUserRepository struct {
	store *storage.DocumentStore[models.User]
}

// NewJSONUserRepository creates a new instance of JSONUserRepository.
func NewJSONUserRepository(store *storage.DocumentStore[models.User]) *JSONUserRepository {
	return &JSONUserRepository{
		store: store,
	}
}

// GetAll returns every user in the document, in storage order.
func (r *JSONUserRepository) GetAll() ([]models.User, error) {
	users, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}

// GetByUsername retrieves a user by username. Returns ErrNotFound if no user
// has that username.
func (r *JSONUserRepository) GetByUsername(username string) (*models.User, error) {
	users, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
}

// Create appends a new user to the document. Returns ErrDuplicate if the
// username is already taken; usernames are the collection's unique key.
func (r *JSONUserRepository) Create(user *models.User) error {
	users, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	for i := range users {
		if users[i].Username == user.Username {
			return fmt.Errorf("user %q: %w", user.Username, ErrDuplicate)
		}
	}
	users = append(users, *user)
	if err := r.store.Save(users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
