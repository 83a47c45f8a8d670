package db

import (
	"errors"

	"go-todo/internal/domain/entity"
	"go-todo/pkg/msg"
)

// ErrNotFound is returned by mutating operations that target a missing task.
var ErrNotFound = errors.New(msg.GetMessage("todo.error.not-found"))

// TodoGateway is the storage strategy behind the mutation engine. The engine
// is written once against this interface; the file, sqlite, redis and remote
// stores are interchangeable behind it.
type TodoGateway interface {
	// FindAll returns the whole collection in stored order (newest first).
	FindAll() ([]entity.Todo, error)

	// FindByID returns the task with the given id, or (nil, nil) when it
	// does not exist.
	FindByID(id string) (*entity.Todo, error)

	// Create inserts a new task at the head of the collection.
	Create(todo entity.Todo) (*entity.Todo, error)

	// Update replaces the task with the given id. Updating a missing id
	// returns ErrNotFound and mutates nothing.
	Update(id string, todo entity.Todo) (*entity.Todo, error)

	// DeleteByID removes the task and its subtasks. Deleting a missing id
	// is a no-op.
	DeleteByID(id string) error
}
