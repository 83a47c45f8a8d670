package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo/internal/domain/entity"
)

func newSqliteGateway(t *testing.T) *GormTodoGateway {
	t.Helper()
	gateway, err := NewGormTodoGateway(filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	return gateway
}

func TestGormGatewayCRUD(t *testing.T) {
	gateway := newSqliteGateway(t)

	created, err := gateway.Create(entity.NewTodo(entity.Todo{ID: "1", Title: "stored"}))
	require.NoError(t, err)
	assert.NotZero(t, created.Position)

	found, err := gateway.FindByID("1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "stored", found.Title)

	found.Title = "renamed"
	updated, err := gateway.Update("1", *found)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)

	require.NoError(t, gateway.DeleteByID("1"))
	missing, err := gateway.FindByID("1")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGormGatewayFindAllNewestFirst(t *testing.T) {
	gateway := newSqliteGateway(t)

	for _, id := range []string{"1", "2", "3"} {
		_, err := gateway.Create(entity.NewTodo(entity.Todo{ID: id, Title: "task " + id}))
		require.NoError(t, err)
	}

	todos, err := gateway.FindAll()
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, "3", todos[0].ID)
	assert.Equal(t, "1", todos[2].ID)
}

func TestGormGatewayFindByIDMissing(t *testing.T) {
	gateway := newSqliteGateway(t)

	found, err := gateway.FindByID("nope")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGormGatewayUpdateMissing(t *testing.T) {
	gateway := newSqliteGateway(t)

	_, err := gateway.Update("ghost", entity.NewTodo(entity.Todo{Title: "x"}))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormGatewayUpdateReplacesSubtasks(t *testing.T) {
	gateway := newSqliteGateway(t)

	task := entity.NewTodo(entity.Todo{ID: "1", Title: "parent"})
	task.Subtasks = []entity.Subtask{entity.NewSubtask("1", "old step")}
	_, err := gateway.Create(task)
	require.NoError(t, err)

	task.Subtasks = []entity.Subtask{
		entity.NewSubtask("1", "step one"),
		entity.NewSubtask("1", "step two"),
	}

	_, err = gateway.Update("1", task)
	require.NoError(t, err)

	found, err := gateway.FindByID("1")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Subtasks, 2)
}

func TestGormGatewayDeleteCascadesSubtasks(t *testing.T) {
	gateway := newSqliteGateway(t)

	task := entity.NewTodo(entity.Todo{ID: "1", Title: "parent"})
	task.Subtasks = []entity.Subtask{entity.NewSubtask("1", "child")}
	_, err := gateway.Create(task)
	require.NoError(t, err)

	require.NoError(t, gateway.DeleteByID("1"))

	var count int64
	require.NoError(t, gateway.DB.Model(&entity.Subtask{}).Where("todo_id = ?", "1").Count(&count).Error)
	assert.Zero(t, count)
}

func TestGormGatewayDeleteIdempotent(t *testing.T) {
	gateway := newSqliteGateway(t)
	assert.NoError(t, gateway.DeleteByID("never-existed"))
}
