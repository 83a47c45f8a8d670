package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-todo/internal/domain/entity"
)

func sampleTodos() []entity.Todo {
	return []entity.Todo{
		{ID: "1", Title: "one", Status: entity.StatusTodo, Category: entity.CategoryWork},
		{ID: "2", Title: "two", Status: entity.StatusInProgress, Category: entity.CategoryPersonal},
		{ID: "3", Title: "three", Status: entity.StatusDone, Category: entity.CategoryWork},
		{ID: "4", Title: "four", Status: entity.StatusDone, Category: entity.CategoryHealth},
	}
}

func TestParseFilter(t *testing.T) {
	assert.Equal(t, FilterAll, ParseFilter("all"))
	assert.Equal(t, FilterActive, ParseFilter("active"))
	assert.Equal(t, FilterCompleted, ParseFilter("completed"))
	assert.Equal(t, FilterAll, ParseFilter(""))
	assert.Equal(t, FilterAll, ParseFilter("bogus"))
}

func TestApplyFilter(t *testing.T) {
	todos := sampleTodos()

	all := ApplyFilter(todos, FilterAll)
	assert.Len(t, all, 4)

	active := ApplyFilter(todos, FilterActive)
	assert.Len(t, active, 2)
	for _, task := range active {
		assert.NotEqual(t, entity.StatusDone, task.Status)
	}

	completed := ApplyFilter(todos, FilterCompleted)
	assert.Len(t, completed, 2)
	for _, task := range completed {
		assert.Equal(t, entity.StatusDone, task.Status)
	}
}

func TestApplyFilterPreservesOrder(t *testing.T) {
	completed := ApplyFilter(sampleTodos(), FilterCompleted)
	assert.Equal(t, "3", completed[0].ID)
	assert.Equal(t, "4", completed[1].ID)
}

func TestFilterByCategory(t *testing.T) {
	todos := sampleTodos()

	work := FilterByCategory(todos, entity.CategoryWork)
	assert.Len(t, work, 2)

	// Empty category means no category filtering.
	assert.Len(t, FilterByCategory(todos, ""), 4)

	assert.Empty(t, FilterByCategory(todos, entity.CategoryShopping))
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleTodos())

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Todo)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 2, stats.Done)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, Stats{}, stats)
}
