package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo/internal/domain/entity"
	"go-todo/internal/domain/gateway/db"
	"go-todo/internal/domain/model"
	"go-todo/pkg/msg"
)

func newUseCase(t *testing.T) UseCase {
	t.Helper()
	return NewTodoUseCase(db.NewFileTodoGateway(t.TempDir()))
}

func TestAddTrimsAndDefaults(t *testing.T) {
	useCase := newUseCase(t)

	created, err := useCase.Add(model.CreateTodoDTO{Title: "  buy milk  "})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Title)
	assert.Equal(t, entity.PriorityMedium, created.Priority)
	assert.Equal(t, entity.CategoryPersonal, created.Category)
	assert.Equal(t, entity.StatusTodo, created.Status)
}

func TestAddBlankTitleLeavesCollectionUnchanged(t *testing.T) {
	useCase := newUseCase(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := useCase.Add(model.CreateTodoDTO{Title: title})
		require.Error(t, err)
		assert.Equal(t, msg.GetMessage("todo.error.empty-title"), err.Error())
	}

	todos, err := useCase.List(model.FilterAll, "")
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestListFiltersByStatusAndCategory(t *testing.T) {
	useCase := newUseCase(t)

	work, err := useCase.Add(model.CreateTodoDTO{Title: "work item", Category: entity.CategoryWork})
	require.NoError(t, err)
	_, err = useCase.Add(model.CreateTodoDTO{Title: "personal item"})
	require.NoError(t, err)

	_, err = useCase.Toggle(work.ID)
	require.NoError(t, err)

	active, err := useCase.List(model.FilterActive, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "personal item", active[0].Title)

	completedWork, err := useCase.List(model.FilterCompleted, entity.CategoryWork)
	require.NoError(t, err)
	require.Len(t, completedWork, 1)
	assert.Equal(t, work.ID, completedWork[0].ID)
}

func TestToggleRoundTrip(t *testing.T) {
	useCase := newUseCase(t)
	created, err := useCase.Add(model.CreateTodoDTO{Title: "flip me"})
	require.NoError(t, err)

	toggled, err := useCase.Toggle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, toggled.Status)

	toggled, err = useCase.Toggle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusTodo, toggled.Status)
}

func TestToggleFromInProgressGoesToDone(t *testing.T) {
	useCase := newUseCase(t)
	created, err := useCase.Add(model.CreateTodoDTO{Title: "wip"})
	require.NoError(t, err)

	_, err = useCase.Update(created.ID, model.UpdateTodoDTO{Status: entity.StatusInProgress})
	require.NoError(t, err)

	toggled, err := useCase.Toggle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, toggled.Status)
}

func TestToggleMissing(t *testing.T) {
	useCase := newUseCase(t)

	_, err := useCase.Toggle("ghost")
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestEditTitleTrims(t *testing.T) {
	useCase := newUseCase(t)
	created, err := useCase.Add(model.CreateTodoDTO{Title: "old"})
	require.NoError(t, err)

	updated, err := useCase.EditTitle(created.ID, "  new title  ")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
}

func TestEditTitleBlankIsRejected(t *testing.T) {
	useCase := newUseCase(t)
	created, err := useCase.Add(model.CreateTodoDTO{Title: "keep me"})
	require.NoError(t, err)

	_, err = useCase.EditTitle(created.ID, "   ")
	require.Error(t, err)

	found, err := useCase.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "keep me", found.Title)
}

func TestUpdateAdvancesUpdatedAt(t *testing.T) {
	useCase := newUseCase(t)
	created, err := useCase.Add(model.CreateTodoDTO{Title: "stamp"})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	updated, err := useCase.Update(created.ID, model.UpdateTodoDTO{Title: "stamped"})
	require.NoError(t, err)

	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateBlankTitleKeepsExisting(t *testing.T) {
	useCase := newUseCase(t)
	created, err := useCase.Add(model.CreateTodoDTO{Title: "sticky"})
	require.NoError(t, err)

	updated, err := useCase.Update(created.ID, model.UpdateTodoDTO{
		Title:       "   ",
		Description: "described",
		Priority:    entity.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, "sticky", updated.Title)
	assert.Equal(t, "described", updated.Description)
	assert.Equal(t, entity.PriorityHigh, updated.Priority)
}

// Update is the only write path that can store inprogress and the only one
// that can clear a due date.
func TestUpdateStoresInProgressAndClearsDueDate(t *testing.T) {
	useCase := newUseCase(t)

	due := "2026-09-15"
	created, err := useCase.Add(model.CreateTodoDTO{Title: "deadline", DueDate: &due})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)

	updated, err := useCase.Update(created.ID, model.UpdateTodoDTO{Status: entity.StatusInProgress, DueDate: created.DueDate})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, updated.Status)
	require.NotNil(t, updated.DueDate)

	cleared, err := useCase.Update(created.ID, model.UpdateTodoDTO{DueDate: nil})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInProgress, cleared.Status, "empty status keeps the stored one")
	assert.Nil(t, cleared.DueDate)
}

func TestDeleteIsIdempotent(t *testing.T) {
	useCase := newUseCase(t)
	created, err := useCase.Add(model.CreateTodoDTO{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, useCase.Delete(created.ID))
	require.NoError(t, useCase.Delete(created.ID))

	found, err := useCase.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestClearCompletedRemovesExactlyDone(t *testing.T) {
	useCase := newUseCase(t)

	keep1, err := useCase.Add(model.CreateTodoDTO{Title: "keep one"})
	require.NoError(t, err)
	done1, err := useCase.Add(model.CreateTodoDTO{Title: "done one"})
	require.NoError(t, err)
	keep2, err := useCase.Add(model.CreateTodoDTO{Title: "keep two"})
	require.NoError(t, err)
	done2, err := useCase.Add(model.CreateTodoDTO{Title: "done two"})
	require.NoError(t, err)

	_, err = useCase.Toggle(done1.ID)
	require.NoError(t, err)
	_, err = useCase.Toggle(done2.ID)
	require.NoError(t, err)

	removed, err := useCase.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := useCase.List(model.FilterAll, "")
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	// Remaining tasks keep their relative order, newest first.
	assert.Equal(t, keep2.ID, remaining[0].ID)
	assert.Equal(t, keep1.ID, remaining[1].ID)

	// Clearing again removes nothing.
	removed, err = useCase.ClearCompleted()
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStats(t *testing.T) {
	useCase := newUseCase(t)

	_, err := useCase.Add(model.CreateTodoDTO{Title: "a"})
	require.NoError(t, err)
	b, err := useCase.Add(model.CreateTodoDTO{Title: "b"})
	require.NoError(t, err)
	_, err = useCase.Toggle(b.ID)
	require.NoError(t, err)

	stats, err := useCase.Stats()
	require.NoError(t, err)
	assert.Equal(t, model.Stats{Total: 2, Todo: 1, Done: 1}, stats)
}

func TestSubtaskLifecycle(t *testing.T) {
	useCase := newUseCase(t)
	parent, err := useCase.Add(model.CreateTodoDTO{Title: "parent"})
	require.NoError(t, err)

	withSub, err := useCase.AddSubtask(parent.ID, "  step one  ")
	require.NoError(t, err)
	require.Len(t, withSub.Subtasks, 1)
	subtask := withSub.Subtasks[0]
	assert.Equal(t, "step one", subtask.Title)
	assert.Equal(t, entity.CompletionNo, subtask.IsCompleted)

	toggled, err := useCase.ToggleSubtask(parent.ID, subtask.ID)
	require.NoError(t, err)
	require.Len(t, toggled.Subtasks, 1)
	assert.Equal(t, entity.CompletionYes, toggled.Subtasks[0].IsCompleted)
	assert.NotNil(t, toggled.Subtasks[0].CompletedAt)

	back, err := useCase.ToggleSubtask(parent.ID, subtask.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CompletionNo, back.Subtasks[0].IsCompleted)
	assert.Nil(t, back.Subtasks[0].CompletedAt)

	renamed, err := useCase.EditSubtask(parent.ID, subtask.ID, "step 1")
	require.NoError(t, err)
	assert.Equal(t, "step 1", renamed.Subtasks[0].Title)

	pruned, err := useCase.DeleteSubtask(parent.ID, subtask.ID)
	require.NoError(t, err)
	assert.Empty(t, pruned.Subtasks)
}

func TestSubtasksAppendInOrder(t *testing.T) {
	useCase := newUseCase(t)
	parent, err := useCase.Add(model.CreateTodoDTO{Title: "parent"})
	require.NoError(t, err)

	_, err = useCase.AddSubtask(parent.ID, "first")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	withBoth, err := useCase.AddSubtask(parent.ID, "second")
	require.NoError(t, err)

	require.Len(t, withBoth.Subtasks, 2)
	assert.Equal(t, "first", withBoth.Subtasks[0].Title)
	assert.Equal(t, "second", withBoth.Subtasks[1].Title)
}

func TestSubtaskMissingParentAndChild(t *testing.T) {
	useCase := newUseCase(t)

	_, err := useCase.AddSubtask("ghost", "x")
	assert.ErrorIs(t, err, db.ErrNotFound)

	parent, err := useCase.Add(model.CreateTodoDTO{Title: "parent"})
	require.NoError(t, err)

	_, err = useCase.ToggleSubtask(parent.ID, 999)
	require.Error(t, err)
	assert.Equal(t, msg.GetMessage("subtask.error.not-found"), err.Error())
}

func TestSubtaskBlankTitleRejected(t *testing.T) {
	useCase := newUseCase(t)
	parent, err := useCase.Add(model.CreateTodoDTO{Title: "parent"})
	require.NoError(t, err)

	_, err = useCase.AddSubtask(parent.ID, "   ")
	require.Error(t, err)

	found, err := useCase.Get(parent.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Subtasks)
}

func TestSingleTaskLifecycle(t *testing.T) {
	useCase := newUseCase(t)

	created, err := useCase.Add(model.CreateTodoDTO{
		Title:    "Buy milk",
		Category: entity.CategoryShopping,
		Priority: entity.PriorityLow,
	})
	require.NoError(t, err)

	todos, err := useCase.List(model.FilterAll, "")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, entity.StatusTodo, todos[0].Status)
	assert.NotEmpty(t, todos[0].CreatedAt)
	assert.NotEmpty(t, todos[0].UpdatedAt)

	toggled, err := useCase.Toggle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDone, toggled.Status)

	toggled, err = useCase.Toggle(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusTodo, toggled.Status)

	require.NoError(t, useCase.Delete(created.ID))
	todos, err = useCase.List(model.FilterAll, "")
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestDeletingParentRemovesSubtasks(t *testing.T) {
	useCase := newUseCase(t)

	parent, err := useCase.Add(model.CreateTodoDTO{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Empty(t, parent.Subtasks)

	withSub, err := useCase.AddSubtask(parent.ID, "Pick 2%")
	require.NoError(t, err)
	require.Len(t, withSub.Subtasks, 1)
	assert.Equal(t, entity.CompletionNo, withSub.Subtasks[0].IsCompleted)
	assert.Nil(t, withSub.Subtasks[0].CompletedAt)

	toggled, err := useCase.ToggleSubtask(parent.ID, withSub.Subtasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CompletionYes, toggled.Subtasks[0].IsCompleted)
	assert.NotNil(t, toggled.Subtasks[0].CompletedAt)

	require.NoError(t, useCase.Delete(parent.ID))

	gone, err := useCase.Get(parent.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	_, err = useCase.ToggleSubtask(parent.ID, withSub.Subtasks[0].ID)
	assert.Error(t, err, "subtasks die with their parent")
}

// End-to-end walk: create three tasks, finish one, clear, verify the rest.
func TestCollectionScenario(t *testing.T) {
	useCase := newUseCase(t)

	groceries, err := useCase.Add(model.CreateTodoDTO{Title: "groceries", Category: entity.CategoryShopping})
	require.NoError(t, err)
	_, err = useCase.Add(model.CreateTodoDTO{Title: "report", Category: entity.CategoryWork, Priority: entity.PriorityHigh})
	require.NoError(t, err)
	_, err = useCase.Add(model.CreateTodoDTO{Title: "run", Category: entity.CategoryHealth})
	require.NoError(t, err)

	_, err = useCase.Toggle(groceries.ID)
	require.NoError(t, err)

	removed, err := useCase.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	stats, err := useCase.Stats()
	require.NoError(t, err)
	assert.Equal(t, model.Stats{Total: 2, Todo: 2}, stats)

	work, err := useCase.List(model.FilterAll, entity.CategoryWork)
	require.NoError(t, err)
	require.Len(t, work, 1)
	assert.Equal(t, entity.PriorityHigh, work[0].Priority)
}
