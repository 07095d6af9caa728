package repositories

import "todolist/internal/models"

// TaskRepository defines the interface for task data access. Implementations
// must preserve insertion order: GetAll and GetByOwner return tasks in the
// order they were created.
type TaskRepository interface {
	GetAll() ([]models.Task, error)
	GetByID(id string) (*models.Task, error)
	GetByOwner(owner string) ([]models.Task, error)
	Create(task *models.Task) error
	Update(task *models.Task) error
}
