package todo

import (
	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/model"
)

// UseCase is the single source of truth for how a user action transforms the
// task collection. It is written once against the storage-strategy gateway;
// which store backs it (file, sqlite, redis, remote) is wiring.
type UseCase interface {
	// Add creates a task from the DTO. A blank post-trim title is rejected
	// and the collection is left unchanged.
	Add(dto model.CreateTodoDTO) (*entity.Todo, error)

	// List returns the read-side projection of the collection: status
	// filter plus optional category filter. Never mutates stored data.
	List(filter model.Filter, category entity.Category) ([]entity.Todo, error)

	// Get returns a task by id, or (nil, nil) when absent.
	Get(id string) (*entity.Todo, error)

	// Stats summarizes the collection by status.
	Stats() (model.Stats, error)

	// Toggle flips completion: done reverts to todo, every other status
	// (including inprogress) advances to done.
	Toggle(id string) (*entity.Todo, error)

	// EditTitle replaces the title. A blank post-trim title is rejected
	// and nothing is mutated.
	EditTitle(id string, title string) (*entity.Todo, error)

	// Update applies a full-field edit, the only path that can store the
	// inprogress status.
	Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error)

	// Delete removes a task and all of its subtasks; idempotent.
	Delete(id string) error

	// ClearCompleted removes every task with status done, preserving the
	// order of the remainder. Returns how many were removed.
	ClearCompleted() (int, error)

	// AddSubtask appends a checklist item to the given task.
	AddSubtask(todoID string, title string) (*entity.Todo, error)

	// ToggleSubtask flips a subtask's completion, stamping or clearing
	// completedAt.
	ToggleSubtask(todoID string, subtaskID int64) (*entity.Todo, error)

	// EditSubtask replaces a subtask's title.
	EditSubtask(todoID string, subtaskID int64, title string) (*entity.Todo, error)

	// DeleteSubtask removes a checklist item from the given task.
	DeleteSubtask(todoID string, subtaskID int64) (*entity.Todo, error)
}
