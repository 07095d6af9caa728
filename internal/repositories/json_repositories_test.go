package repositories_test

import (
	"testing"
	"time"

	"todolist/internal/models"
	"todolist/internal/repositories"
	"todolist/internal/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(id, title, owner string) *models.Task {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return &models.Task{
		ID:        id,
		Title:     title,
		Details:   "details",
		Priority:  models.PriorityMid,
		Status:    models.StatusPending,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestJSONUserRepository_CreateAndGet(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := repositories.NewJSONUserRepository(
		storage.NewDocumentStore[models.User](fs, "data/users.json"))

	require.NoError(t, repo.Create(&models.User{Username: "alice", Password: "digest-a"}))
	require.NoError(t, repo.Create(&models.User{Username: "bob", Password: "digest-b"}))

	user, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "digest-a", user.Password)

	_, err = repo.GetByUsername("carol")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestJSONUserRepository_DuplicateUsername(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := repositories.NewJSONUserRepository(
		storage.NewDocumentStore[models.User](fs, "data/users.json"))

	require.NoError(t, repo.Create(&models.User{Username: "alice", Password: "digest-a"}))
	err := repo.Create(&models.User{Username: "alice", Password: "digest-b"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "digest-a", users[0].Password, "failed create leaves the document unchanged")
}

func TestJSONUserRepository_PersistsAcrossInstances(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := storage.NewDocumentStore[models.User](fs, "data/users.json")

	first := repositories.NewJSONUserRepository(store)
	require.NoError(t, first.Create(&models.User{Username: "alice", Password: "digest-a"}))

	// A fresh repository over the same filesystem sees the same document;
	// nothing is cached in memory between calls.
	second := repositories.NewJSONUserRepository(
		storage.NewDocumentStore[models.User](fs, "data/users.json"))
	user, err := second.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "digest-a", user.Password)
}

func TestJSONTaskRepository_InsertionOrderPreserved(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := repositories.NewJSONTaskRepository(
		storage.NewDocumentStore[models.Task](fs, "data/todos.json"))

	require.NoError(t, repo.Create(newTask("id-1", "Alice 1", "alice")))
	require.NoError(t, repo.Create(newTask("id-2", "Bob 1", "bob")))
	require.NoError(t, repo.Create(newTask("id-3", "Alice 2", "alice")))

	owned, err := repo.GetByOwner("alice")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "id-1", owned[0].ID)
	assert.Equal(t, "id-3", owned[1].ID)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "id-2", all[1].ID)
}

func TestJSONTaskRepository_DuplicateID(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := repositories.NewJSONTaskRepository(
		storage.NewDocumentStore[models.Task](fs, "data/todos.json"))

	require.NoError(t, repo.Create(newTask("id-1", "Task", "alice")))
	err := repo.Create(newTask("id-1", "Other", "bob"))
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestJSONTaskRepository_Update(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := repositories.NewJSONTaskRepository(
		storage.NewDocumentStore[models.Task](fs, "data/todos.json"))

	require.NoError(t, repo.Create(newTask("id-1", "Task", "alice")))
	require.NoError(t, repo.Create(newTask("id-2", "Other", "alice")))

	updated := newTask("id-1", "Renamed", "alice")
	updated.Status = models.StatusCompleted
	require.NoError(t, repo.Update(updated))

	got, err := repo.GetByID("id-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, models.StatusCompleted, got.Status)

	// Update keeps the record's position in the document.
	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "id-1", all[0].ID)

	err = repo.Update(newTask("no-such-id", "x", "alice"))
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestJSONTaskRepository_CorruptDocumentTreatedAsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/todos.json", []byte(`{"not":"an array"`), 0o644))

	repo := repositories.NewJSONTaskRepository(
		storage.NewDocumentStore[models.Task](fs, "data/todos.json"))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)

	// The next write replaces the corrupt document with a valid one.
	require.NoError(t, repo.Create(newTask("id-1", "Task", "alice")))
	all, err = repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
