package repositories

import "todolist/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
}
