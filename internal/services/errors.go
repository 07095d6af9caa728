package services

import "errors"

// Expected domain failures returned by the services. Callers branch on these
// with errors.Is; they are ordinary results, not I/O faults. Anything the
// services return that does not match one of these wraps an underlying
// storage error and should be treated as fatal.
var (
	// ErrInvalidInput reports empty or malformed input to a service call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsernameTaken reports a sign-up attempt with a username that is
	// already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound reports a login attempt for an unknown username.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials reports a password digest mismatch on login.
	ErrInvalidCredentials = errors.New("incorrect password")

	// ErrTaskNotFound reports an operation on a task ID that does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskAlreadyCompleted reports a redundant completion attempt.
	ErrTaskAlreadyCompleted = errors.New("task is already completed")
)
