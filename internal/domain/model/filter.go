package model

import "go-todo/internal/domain/entity"

// Filter is a read-side projection over the task collection. Filtering never
// alters stored data.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter maps a user-supplied filter name to a Filter, defaulting to
// FilterAll for unknown values.
func ParseFilter(value string) Filter {
	switch Filter(value) {
	case FilterActive:
		return FilterActive
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// ApplyFilter returns the subset of todos selected by the filter, preserving
// order: active keeps status != done, completed keeps status == done.
func ApplyFilter(todos []entity.Todo, filter Filter) []entity.Todo {
	if filter == FilterAll {
		return todos
	}

	result := make([]entity.Todo, 0, len(todos))
	for _, todo := range todos {
		switch filter {
		case FilterActive:
			if todo.Status != entity.StatusDone {
				result = append(result, todo)
			}
		case FilterCompleted:
			if todo.Status == entity.StatusDone {
				result = append(result, todo)
			}
		}
	}
	return result
}

// FilterByCategory returns the subset of todos in the given category,
// preserving order. An empty category selects everything.
func FilterByCategory(todos []entity.Todo, category entity.Category) []entity.Todo {
	if category == "" {
		return todos
	}

	result := make([]entity.Todo, 0, len(todos))
	for _, todo := range todos {
		if todo.Category == category {
			result = append(result, todo)
		}
	}
	return result
}

// Stats summarizes the collection by status.
type Stats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inprogress"`
	Done       int `json:"done"`
}

// ComputeStats counts todos per status.
func ComputeStats(todos []entity.Todo) Stats {
	stats := Stats{Total: len(todos)}
	for _, todo := range todos {
		switch todo.Status {
		case entity.StatusDone:
			stats.Done++
		case entity.StatusInProgress:
			stats.InProgress++
		default:
			stats.Todo++
		}
	}
	return stats
}
