package repositories

import (
	"fmt"

	"todolist/internal/models"
	"todolist/internal/storage"
)

// JSONTaskRepository is a TaskRepository backed by a whole-document JSON
// store. The document's array order is the insertion order, so listing
// operations come back in creation order without re-sorting.
type JSONTaskRepository struct {
	store *storage.DocumentStore[models.Task]
}

// NewJSONTaskRepository creates a new instance of JSONTaskRepository.
func NewJSONTaskRepository(store *storage.DocumentStore[models.Task]) *JSONTaskRepository {
	return &JSONTaskRepository{
		store: store,
	}
}

// GetAll returns every task in the document, in storage order.
func (r *JSONTaskRepository) GetAll() ([]models.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

// GetByID retrieves a task by its ID. Returns ErrNotFound if absent.
func (r *JSONTaskRepository) GetByID(id string) (*models.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("task %q: %w", id, ErrNotFound)
}

// GetByOwner returns the tasks whose owner matches exactly, preserving
// storage order.
func (r *JSONTaskRepository) GetByOwner(owner string) ([]models.Task, error) {
	tasks, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	owned := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Owner == owner {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

// Create appends a new task to the document. Returns ErrDuplicate if a task
// with the same ID already exists; IDs are never reused.
func (r *JSONTaskRepository) Create(task *models.Task) error {
	tasks, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			return fmt.Errorf("task %q: %w", task.ID, ErrDuplicate)
		}
	}
	tasks = append(tasks, *task)
	if err := r.store.Save(tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// Update replaces the stored task with the same ID, keeping its position in
// the document. Returns ErrNotFound if no task has that ID.
func (r *JSONTaskRepository) Update(task *models.Task) error {
	tasks, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = *task
			if err := r.store.Save(tasks); err != nil {
				return fmt.Errorf("failed to save tasks: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("task %q: %w", task.ID, ErrNotFound)
}
