package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"todolist/internal/models"
	"todolist/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TodoService handles business logic related to tasks. Ownership is trusted:
// the service records the owner passed at creation and does not check the
// acting identity on later calls. Authorization is the caller's job.
type TodoService struct {
	taskRepo repositories.TaskRepository
	validate *validator.Validate
}

// NewTodoService creates a new TodoService.
func NewTodoService(taskRepo repositories.TaskRepository) *TodoService {
	return &TodoService{
		taskRepo: taskRepo,
		validate: validator.New(),
	}
}

// CreateTaskInput carries the fields required to create a task.
type CreateTaskInput struct {
	Title    string          `validate:"required"`
	Details  string          `validate:"required"`
	Priority models.Priority `validate:"required,oneof=HIGH MID LOW"`
	Owner    string          `validate:"required"`
}

// EditTaskInput carries the optional changes for an edit. A nil field keeps
// the task's current value.
type EditTaskInput struct {
	Title    *string
	Details  *string
	Priority *models.Priority
}

// TaskSummary is the list-view projection of a task.
type TaskSummary struct {
	ID    string
	Title string
}

// Create validates the input, stamps a fresh UUID and timestamps, and
// persists the new task with status PENDING.
func (s *TodoService) Create(input CreateTaskInput) (*models.Task, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: title, details, priority and owner are required", ErrInvalidInput)
	}

	now := time.Now()
	task := &models.Task{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Details:   input.Details,
		Priority:  input.Priority,
		Status:    models.StatusPending,
		Owner:     input.Owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// ListByOwner returns summaries of the tasks owned by owner, in the order
// they were created.
func (s *TodoService) ListByOwner(owner string) ([]TaskSummary, error) {
	tasks, err := s.taskRepo.GetByOwner(owner)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for %q: %w", owner, err)
	}

	summaries := make([]TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, TaskSummary{ID: t.ID, Title: t.Title})
	}
	return summaries, nil
}

// Get retrieves a single task by ID. Returns ErrTaskNotFound if absent.
func (s *TodoService) Get(id string) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		return nil, fmt.Errorf("failed to get task %q: %w", id, err)
	}
	return task, nil
}

// Complete marks a task COMPLETED and refreshes its updated_at timestamp.
// The transition is one-way; completing an already completed task returns
// ErrTaskAlreadyCompleted and leaves the record untouched.
func (s *TodoService) Complete(id string) error {
	task, err := s.Get(id)
	if err != nil {
		return err
	}
	if task.Status == models.StatusCompleted {
		return fmt.Errorf("%w: %s", ErrTaskAlreadyCompleted, id)
	}

	task.Status = models.StatusCompleted
	task.UpdatedAt = time.Now()
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task %q: %w", id, err)
	}
	return nil
}

// Edit applies the provided changes to a task and refreshes updated_at.
// Fields left nil are unchanged; a provided title or details must be
// non-empty, and updated_at is refreshed even when no field is provided.
func (s *TodoService) Edit(id string, changes EditTaskInput) error {
	task, err := s.Get(id)
	if err != nil {
		return err
	}

	if changes.Title != nil {
		if strings.TrimSpace(*changes.Title) == "" {
			return fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		task.Title = *changes.Title
	}
	if changes.Details != nil {
		if strings.TrimSpace(*changes.Details) == "" {
			return fmt.Errorf("%w: details cannot be empty", ErrInvalidInput)
		}
		task.Details = *changes.Details
	}
	if changes.Priority != nil {
		if _, err := models.ParsePriority(string(*changes.Priority)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		task.Priority = *changes.Priority
	}

	task.UpdatedAt = time.Now()
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task %q: %w", id, err)
	}
	return nil
}
