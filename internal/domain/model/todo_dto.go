package model

import "go-todo/internal/domain/entity"

// CreateTodoDTO carries the fields of a new task as sent to the backend.
type CreateTodoDTO struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    entity.Priority `json:"priority"`
	Category    entity.Category `json:"category"`
	DueDate     *string         `json:"due_date"`
}

// UpdateTodoDTO carries a full-field task edit, including status. It is the
// only write path through which the inprogress status can be stored. The
// subtask list rides along; backends without subtask support ignore it.
type UpdateTodoDTO struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    entity.Priority  `json:"priority"`
	Category    entity.Category  `json:"category"`
	Status      entity.Status    `json:"status"`
	DueDate     *string          `json:"due_date"`
	Subtasks    []entity.Subtask `json:"subtasks,omitempty"`
}
