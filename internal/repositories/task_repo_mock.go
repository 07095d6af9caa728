package repositories

import (
	"fmt"
	"sync"

	"todolist/internal/models"
)

// MockTaskRepository is an in-memory implementation of TaskRepository.
// Tasks are held in a slice rather than a map so listing preserves
// insertion order, matching the JSON-document implementation.
type MockTaskRepository struct {
	tasks []models.Task
	mu    sync.RWMutex
}

// NewMockTaskRepository creates a new instance of MockTaskRepository.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

// GetAll returns all tasks in insertion order.
func (r *MockTaskRepository) GetAll() ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]models.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

// GetByID returns a task by its ID.
func (r *MockTaskRepository) GetByID(id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			task := r.tasks[i]
			return &task, nil
		}
	}
	return nil, fmt.Errorf("task %q: %w", id, ErrNotFound)
}

// GetByOwner returns the tasks owned by owner, in insertion order.
func (r *MockTaskRepository) GetByOwner(owner string) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if t.Owner == owner {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

// Create appends a new task, rejecting duplicate IDs.
func (r *MockTaskRepository) Create(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			return fmt.Errorf("task %q: %w", task.ID, ErrDuplicate)
		}
	}
	r.tasks = append(r.tasks, *task)
	return nil
}

// Update replaces an existing task in place.
func (r *MockTaskRepository) Update(task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			r.tasks[i] = *task
			return nil
		}
	}
	return fmt.Errorf("task %q: %w", task.ID, ErrNotFound)
}
