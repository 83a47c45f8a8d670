package api

import (
	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/gateway/db"
	"go-todo/internal/domain/model"
)

// RemoteTodoGateway adapts the REST gateway to the storage-strategy
// interface, so the mutation engine works against the backend exactly as it
// does against a local store.
type RemoteTodoGateway struct {
	api TodoAPIGateway
}

var _ db.TodoGateway = (*RemoteTodoGateway)(nil)

func NewRemoteTodoGateway(apiGateway TodoAPIGateway) *RemoteTodoGateway {
	return &RemoteTodoGateway{api: apiGateway}
}

func (gateway *RemoteTodoGateway) FindAll() ([]entity.Todo, error) {
	return gateway.api.List()
}

// FindByID lists and scans: the authenticated surface has no single-task
// endpoint.
func (gateway *RemoteTodoGateway) FindByID(id string) (*entity.Todo, error) {
	todos, err := gateway.api.List()
	if err != nil {
		return nil, err
	}
	for _, todo := range todos {
		if todo.ID == id {
			found := todo
			return &found, nil
		}
	}
	return nil, nil
}

func (gateway *RemoteTodoGateway) Create(todo entity.Todo) (*entity.Todo, error) {
	created, err := gateway.api.Create(model.CreateTodoDTO{
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		Category:    todo.Category,
		DueDate:     todo.DueDate,
	})
	if err != nil {
		return nil, err
	}
	return normalize(created, todo), nil
}

func (gateway *RemoteTodoGateway) Update(id string, todo entity.Todo) (*entity.Todo, error) {
	updated, err := gateway.api.Update(id, model.UpdateTodoDTO{
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		Category:    todo.Category,
		Status:      todo.Status,
		DueDate:     todo.DueDate,
		Subtasks:    todo.Subtasks,
	})
	if err != nil {
		return nil, err
	}
	return normalize(updated, todo), nil
}

func (gateway *RemoteTodoGateway) DeleteByID(id string) error {
	return gateway.api.Delete(id)
}

// normalize backfills fields a subtask-unaware backend omits from its
// response, so local semantics survive a round trip.
func normalize(remote *entity.Todo, local entity.Todo) *entity.Todo {
	result := *remote
	if result.ID == "" {
		result.ID = local.ID
	}
	if result.Subtasks == nil {
		result.Subtasks = local.Subtasks
	}
	if result.CreatedAt == "" {
		result.CreatedAt = local.CreatedAt
	}
	if result.UpdatedAt == "" {
		result.UpdatedAt = local.UpdatedAt
	}
	return &result
}
