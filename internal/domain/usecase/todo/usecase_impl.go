package todo

import (
	"errors"
	"strings"

	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/gateway/db"
	"go-todo/internal/domain/model"
	"go-todo/pkg/msg"
)

type todoUseCase struct {
	gateway db.TodoGateway
}

func NewTodoUseCase(gateway db.TodoGateway) UseCase {
	return &todoUseCase{
		gateway: gateway,
	}
}

func (uc *todoUseCase) Add(dto model.CreateTodoDTO) (*entity.Todo, error) {
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, errors.New(msg.GetMessage("todo.error.empty-title"))
	}

	todo := entity.NewTodo(entity.Todo{
		Title:       title,
		Description: strings.TrimSpace(dto.Description),
		Priority:    dto.Priority,
		Category:    dto.Category,
		DueDate:     dto.DueDate,
	})

	return uc.gateway.Create(todo)
}

func (uc *todoUseCase) List(filter model.Filter, category entity.Category) ([]entity.Todo, error) {
	todos, err := uc.gateway.FindAll()
	if err != nil {
		return nil, err
	}
	return model.FilterByCategory(model.ApplyFilter(todos, filter), category), nil
}

func (uc *todoUseCase) Get(id string) (*entity.Todo, error) {
	return uc.gateway.FindByID(id)
}

func (uc *todoUseCase) Stats() (model.Stats, error) {
	todos, err := uc.gateway.FindAll()
	if err != nil {
		return model.Stats{}, err
	}
	return model.ComputeStats(todos), nil
}

// Toggle is binary even though three statuses exist: done reverts to todo,
// anything else advances to done. inprogress is therefore never a toggle
// result, only a dead end the toggle moves out of.
func (uc *todoUseCase) Toggle(id string) (*entity.Todo, error) {
	existing, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, db.ErrNotFound
	}

	if existing.Status == entity.StatusDone {
		existing.Status = entity.StatusTodo
	} else {
		existing.Status = entity.StatusDone
	}
	existing.Touch()

	return uc.gateway.Update(id, *existing)
}

func (uc *todoUseCase) EditTitle(id string, title string) (*entity.Todo, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, errors.New(msg.GetMessage("todo.error.empty-title"))
	}

	existing, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, db.ErrNotFound
	}

	existing.Title = trimmed
	existing.Touch()

	return uc.gateway.Update(id, *existing)
}

func (uc *todoUseCase) Update(id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	existing, err := uc.gateway.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, db.ErrNotFound
	}

	if title := strings.TrimSpace(dto.Title); title != "" {
		existing.Title = title
	}
	existing.Description = dto.Description
	if dto.Priority != "" {
		existing.Priority = dto.Priority
	}
	if dto.Category != "" {
		existing.Category = dto.Category
	}
	if dto.Status != "" {
		existing.Status = dto.Status
	}
	existing.DueDate = dto.DueDate
	if dto.Subtasks != nil {
		existing.Subtasks = dto.Subtasks
	}
	existing.Touch()

	return uc.gateway.Update(id, *existing)
}

func (uc *todoUseCase) Delete(id string) error {
	return uc.gateway.DeleteByID(id)
}

func (uc *todoUseCase) ClearCompleted() (int, error) {
	todos, err := uc.gateway.FindAll()
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, todo := range todos {
		if todo.Status != entity.StatusDone {
			continue
		}
		if err := uc.gateway.DeleteByID(todo.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

func (uc *todoUseCase) AddSubtask(todoID string, title string) (*entity.Todo, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, errors.New(msg.GetMessage("subtask.error.empty-title"))
	}

	existing, err := uc.gateway.FindByID(todoID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, db.ErrNotFound
	}

	existing.Subtasks = append(existing.Subtasks, entity.NewSubtask(todoID, trimmed))
	existing.Touch()

	return uc.gateway.Update(todoID, *existing)
}

func (uc *todoUseCase) ToggleSubtask(todoID string, subtaskID int64) (*entity.Todo, error) {
	return uc.mutateSubtask(todoID, subtaskID, func(subtask *entity.Subtask) {
		if subtask.IsCompleted == entity.CompletionYes {
			subtask.IsCompleted = entity.CompletionNo
			subtask.CompletedAt = nil
		} else {
			subtask.IsCompleted = entity.CompletionYes
			completedAt := entity.NowISO()
			subtask.CompletedAt = &completedAt
		}
		subtask.UpdatedAt = entity.NowISO()
	})
}

func (uc *todoUseCase) EditSubtask(todoID string, subtaskID int64, title string) (*entity.Todo, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, errors.New(msg.GetMessage("subtask.error.empty-title"))
	}

	return uc.mutateSubtask(todoID, subtaskID, func(subtask *entity.Subtask) {
		subtask.Title = trimmed
		subtask.UpdatedAt = entity.NowISO()
	})
}

func (uc *todoUseCase) DeleteSubtask(todoID string, subtaskID int64) (*entity.Todo, error) {
	existing, err := uc.gateway.FindByID(todoID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, db.ErrNotFound
	}

	remaining := make([]entity.Subtask, 0, len(existing.Subtasks))
	for _, subtask := range existing.Subtasks {
		if subtask.ID != subtaskID {
			remaining = append(remaining, subtask)
		}
	}
	existing.Subtasks = remaining
	existing.Touch()

	return uc.gateway.Update(todoID, *existing)
}

// mutateSubtask applies a transformation to one subtask of one parent and
// persists the parent. A missing parent or subtask mutates nothing.
func (uc *todoUseCase) mutateSubtask(todoID string, subtaskID int64, transform func(*entity.Subtask)) (*entity.Todo, error) {
	existing, err := uc.gateway.FindByID(todoID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, db.ErrNotFound
	}

	found := false
	for i := range existing.Subtasks {
		if existing.Subtasks[i].ID == subtaskID {
			transform(&existing.Subtasks[i])
			found = true
			break
		}
	}
	if !found {
		return nil, errors.New(msg.GetMessage("subtask.error.not-found"))
	}

	existing.Touch()
	return uc.gateway.Update(todoID, *existing)
}
