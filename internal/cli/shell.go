package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"todolist/internal/models"
	"todolist/internal/services"
)

const menuDivider = "========================================"

// Shell is the interactive text interface. It owns the menu loop, collects
// input, and dispatches to the account and task services. Authorization is
// enforced here: every view or mutation of a task first checks that the
// logged-in user owns it.
type Shell struct {
	auth *services.AuthService
	todo *services.TodoService
	in   *bufio.Reader
	out  io.Writer
}

// NewShell creates a Shell reading from in and writing to out.
func NewShell(auth *services.AuthService, todo *services.TodoService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		auth: auth,
		todo: todo,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

// Run drives the pre-login menu until the user exits or input is exhausted.
// Expected domain failures are reported to the user and the loop continues;
// only unexpected storage failures are returned.
func (s *Shell) Run() error {
	for {
		choice, err := s.showPreloginMenu()
		if err != nil {
			return exitError(err)
		}

		switch choice {
		case "1":
			user, err := s.handleLogin()
			if err != nil {
				return exitError(err)
			}
			if user != "" {
				if err := s.runSession(user); err != nil {
					return exitError(err)
				}
			}
		case "2":
			if err := s.handleSignUp(); err != nil {
				return exitError(err)
			}
		case "3":
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		}
	}
}

// exitError treats exhausted input as a normal exit.
func exitError(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// prompt prints a label and reads one trimmed line of input.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) showPreloginMenu() (string, error) {
	fmt.Fprintln(s.out, "\n"+menuDivider)
	fmt.Fprintln(s.out, "Welcome to the To-Do List Application")
	fmt.Fprintln(s.out, menuDivider)
	fmt.Fprintln(s.out, "[1] Login")
	fmt.Fprintln(s.out, "[2] Sign Up")
	fmt.Fprintln(s.out, "[3] Exit")
	fmt.Fprintln(s.out, menuDivider)

	for {
		choice, err := s.prompt("\nEnter your choice (1-3): ")
		if err != nil {
			return "", err
		}
		switch choice {
		case "1", "2", "3":
			return choice, nil
		}
		fmt.Fprintln(s.out, "Invalid choice. Please enter 1, 2, or 3.")
	}
}

func (s *Shell) showPostloginMenu(user string) (string, error) {
	fmt.Fprintln(s.out, "\n"+menuDivider)
	fmt.Fprintf(s.out, "To-Do List — logged in as %s\n", user)
	fmt.Fprintln(s.out, menuDivider)
	fmt.Fprintln(s.out, "[1] Add Task")
	fmt.Fprintln(s.out, "[2] View All Tasks")
	fmt.Fprintln(s.out, "[3] View Task Details")
	fmt.Fprintln(s.out, "[4] Edit Task")
	fmt.Fprintln(s.out, "[5] Mark Task as Completed")
	fmt.Fprintln(s.out, "[6] Logout")
	fmt.Fprintln(s.out, menuDivider)

	for {
		choice, err := s.prompt("\nEnter your choice (1-6): ")
		if err != nil {
			return "", err
		}
		switch choice {
		case "1", "2", "3", "4", "5", "6":
			return choice, nil
		}
		fmt.Fprintln(s.out, "Invalid choice. Please enter a number between 1 and 6.")
	}
}

// runSession drives the post-login menu for one user until logout.
func (s *Shell) runSession(user string) error {
	for {
		choice, err := s.showPostloginMenu(user)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.handleCreateTask(user)
		case "2":
			err = s.handleViewAllTasks(user)
		case "3":
			err = s.handleViewDetails(user)
		case "4":
			err = s.handleEditTask(user)
		case "5":
			err = s.handleMarkCompleted(user)
		case "6":
			fmt.Fprintf(s.out, "\nLogged out. See you soon, %s!\n", user)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// handleLogin returns the username on success and "" when login fails for an
// expected reason.
func (s *Shell) handleLogin() (string, error) {
	fmt.Fprintln(s.out, "\n--- Login ---")
	username, err := s.prompt("Username: ")
	if err != nil {
		return "", err
	}
	password, err := s.prompt("Password: ")
	if err != nil {
		return "", err
	}

	switch err := s.auth.Login(username, password); {
	case err == nil:
		fmt.Fprintf(s.out, "Login successful. Welcome, %s!\n", username)
		return username, nil
	case errors.Is(err, services.ErrUserNotFound):
		fmt.Fprintln(s.out, "User not found.")
		return "", nil
	case errors.Is(err, services.ErrInvalidCredentials):
		fmt.Fprintln(s.out, "Incorrect password.")
		return "", nil
	default:
		return "", err
	}
}

func (s *Shell) handleSignUp() error {
	fmt.Fprintln(s.out, "\n--- Sign Up ---")
	username, err := s.prompt("Username: ")
	if err != nil {
		return err
	}
	password, err := s.prompt("Password: ")
	if err != nil {
		return err
	}
	confirm, err := s.prompt("Confirm Password: ")
	if err != nil {
		return err
	}

	if username == "" || password == "" {
		fmt.Fprintln(s.out, "Username and password cannot be empty.")
		return nil
	}
	if password != confirm {
		fmt.Fprintln(s.out, "Passwords do not match.")
		return nil
	}

	switch err := s.auth.SignUp(username, password); {
	case err == nil:
		fmt.Fprintln(s.out, "Sign up successful. You can now log in.")
		return nil
	case errors.Is(err, services.ErrUsernameTaken):
		fmt.Fprintln(s.out, "Username already exists.")
		return nil
	case errors.Is(err, services.ErrInvalidInput):
		fmt.Fprintln(s.out, "Username and password cannot be empty.")
		return nil
	default:
		return err
	}
}

func (s *Shell) handleCreateTask(user string) error {
	fmt.Fprintln(s.out, "\n--- Add Task ---")
	title, err := s.prompt("Title: ")
	if err != nil {
		return err
	}
	details, err := s.prompt("Details: ")
	if err != nil {
		return err
	}
	priorityLabel, err := s.prompt("Priority (HIGH/MID/LOW): ")
	if err != nil {
		return err
	}

	if title == "" {
		fmt.Fprintln(s.out, "Title cannot be empty.")
		return nil
	}
	if details == "" {
		fmt.Fprintln(s.out, "Details cannot be empty.")
		return nil
	}
	priority, perr := models.ParsePriority(priorityLabel)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid priority. Choose HIGH, MID, or LOW.")
		return nil
	}

	task, err := s.todo.Create(services.CreateTaskInput{
		Title:    title,
		Details:  details,
		Priority: priority,
		Owner:    user,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			fmt.Fprintln(s.out, "Title and details cannot be empty.")
			return nil
		}
		return err
	}

	fmt.Fprintf(s.out, "Task created with ID: %s\n", task.ID)
	return nil
}

func (s *Shell) handleViewAllTasks(user string) error {
	tasks, err := s.todo.ListByOwner(user)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "\nYou have no tasks.")
		return nil
	}

	fmt.Fprintf(s.out, "\nYou have %d task(s):\n", len(tasks))
	for _, t := range tasks {
		fmt.Fprintf(s.out, "  [%s] %s\n", t.ID, t.Title)
	}
	return nil
}

// resolveOwnedTask prompts for a task ID and returns the task if it exists
// and belongs to user. Returns (nil, nil) after reporting an expected
// failure to the user.
func (s *Shell) resolveOwnedTask(user string) (*models.Task, error) {
	id, err := s.prompt("Task ID: ")
	if err != nil {
		return nil, err
	}

	task, err := s.todo.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			fmt.Fprintln(s.out, "Task not found.")
			return nil, nil
		}
		return nil, err
	}

	if task.Owner != user {
		fmt.Fprintln(s.out, "You don't have permission to access this task.")
		return nil, nil
	}
	return task, nil
}

func (s *Shell) handleViewDetails(user string) error {
	fmt.Fprintln(s.out, "\n--- Task Details ---")
	task, err := s.resolveOwnedTask(user)
	if err != nil || task == nil {
		return err
	}

	fmt.Fprintf(s.out, "ID:       %s\n", task.ID)
	fmt.Fprintf(s.out, "Title:    %s\n", task.Title)
	fmt.Fprintf(s.out, "Details:  %s\n", task.Details)
	fmt.Fprintf(s.out, "Priority: %s\n", task.Priority)
	fmt.Fprintf(s.out, "Status:   %s\n", task.Status)
	fmt.Fprintf(s.out, "Created:  %s\n", task.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(s.out, "Updated:  %s\n", task.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

func (s *Shell) handleMarkCompleted(user string) error {
	fmt.Fprintln(s.out, "\n--- Mark Task as Completed ---")
	task, err := s.resolveOwnedTask(user)
	if err != nil || task == nil {
		return err
	}

	switch err := s.todo.Complete(task.ID); {
	case err == nil:
		fmt.Fprintln(s.out, "Task marked as completed.")
		return nil
	case errors.Is(err, services.ErrTaskAlreadyCompleted):
		fmt.Fprintln(s.out, "Task is already completed.")
		return nil
	case errors.Is(err, services.ErrTaskNotFound):
		fmt.Fprintln(s.out, "Task not found.")
		return nil
	default:
		return err
	}
}

func (s *Shell) handleEditTask(user string) error {
	fmt.Fprintln(s.out, "\n--- Edit Task ---")
	task, err := s.resolveOwnedTask(user)
	if err != nil || task == nil {
		return err
	}

	title, err := s.prompt("New Title (leave blank to keep current): ")
	if err != nil {
		return err
	}
	details, err := s.prompt("New Details (leave blank to keep current): ")
	if err != nil {
		return err
	}
	changePriority, err := s.prompt("Change priority? (y/n): ")
	if err != nil {
		return err
	}

	var changes services.EditTaskInput
	if title != "" {
		changes.Title = &title
	}
	if details != "" {
		changes.Details = &details
	}
	if strings.EqualFold(changePriority, "y") {
		label, err := s.prompt("New Priority (HIGH/MID/LOW): ")
		if err != nil {
			return err
		}
		priority, perr := models.ParsePriority(label)
		if perr != nil {
			fmt.Fprintln(s.out, "Invalid priority. Choose HIGH, MID, or LOW.")
			return nil
		}
		changes.Priority = &priority
	}

	switch err := s.todo.Edit(task.ID, changes); {
	case err == nil:
		fmt.Fprintln(s.out, "Task updated.")
		return nil
	case errors.Is(err, services.ErrTaskNotFound):
		fmt.Fprintln(s.out, "Task not found.")
		return nil
	case errors.Is(err, services.ErrInvalidInput):
		fmt.Fprintln(s.out, "Invalid input; task not updated.")
		return nil
	default:
		return err
	}
}
