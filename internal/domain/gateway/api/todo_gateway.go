package api

import (
	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/model"
)

// TodoAPIGateway defines the authenticated task CRUD calls against the
// external API. Every call attaches the session bearer token; a missing
// token short-circuits with session.ErrNoToken before any request is made,
// and an HTTP 401 invalidates the stored token and returns
// session.ErrExpired. Calls are never retried.
type TodoAPIGateway interface {
	// List returns all tasks of the authenticated user.
	List() ([]entity.Todo, error)

	// Create creates a task and returns the backend's version of it.
	Create(dto model.CreateTodoDTO) (*entity.Todo, error)

	// Update replaces all fields of the task with the given id.
	Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error)

	// Delete removes the task with the given id.
	Delete(id string) error

	// GetPublic fetches a task through the unauthenticated public
	// endpoint; (nil, nil) when it does not exist.
	GetPublic(id string) (*entity.Todo, error)
}
