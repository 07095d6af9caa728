package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"todolist/internal/cli"
	"todolist/internal/models"
	"todolist/internal/repositories"
	"todolist/internal/services"
	"todolist/internal/storage"
)

func main() {
	// --- Configuration ---
	// Viper reads overrides from the environment; defaults keep the data
	// directory next to the binary.
	viper.SetDefault("TODO_DATA_DIR", "data")
	viper.SetDefault("TODO_USERS_FILE", "users.json")
	viper.SetDefault("TODO_TASKS_FILE", "todos.json")
	viper.AutomaticEnv()

	dataDir := viper.GetString("TODO_DATA_DIR")
	usersPath := filepath.Join(dataDir, viper.GetString("TODO_USERS_FILE"))
	tasksPath := filepath.Join(dataDir, viper.GetString("TODO_TASKS_FILE"))

	fs := afero.NewOsFs()

	// --- Document stores ---
	userStore := storage.NewDocumentStore[models.User](fs, usersPath)
	taskStore := storage.NewDocumentStore[models.Task](fs, tasksPath)

	// Seed empty documents on first run so every later load finds a
	// well-formed file.
	if err := userStore.Ensure(); err != nil {
		log.Fatalf("Failed to initialize users document: %v", err)
	}
	if err := taskStore.Ensure(); err != nil {
		log.Fatalf("Failed to initialize tasks document: %v", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewJSONUserRepository(userStore)
	taskRepo := repositories.NewJSONTaskRepository(taskStore)

	// --- Services ---
	authService := services.NewAuthService(userRepo)
	todoService := services.NewTodoService(taskRepo)

	// --- Interactive shell ---
	shell := cli.NewShell(authService, todoService, os.Stdin, os.Stdout)
	if err := shell.Run(); err != nil {
		log.Fatalf("Shell exited with error: %v", err)
	}
}
