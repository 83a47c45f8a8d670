package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-todo/internal/domain/entity"
)

func TestUnwrapEnvelopeWrapped(t *testing.T) {
	body := []byte(`{"data": {"id": "1", "title": "wrapped"}}`)

	var todo entity.Todo
	require.NoError(t, UnwrapEnvelope(body, &todo))
	assert.Equal(t, "1", todo.ID)
	assert.Equal(t, "wrapped", todo.Title)
}

func TestUnwrapEnvelopeBare(t *testing.T) {
	body := []byte(`{"id": "2", "title": "bare"}`)

	var todo entity.Todo
	require.NoError(t, UnwrapEnvelope(body, &todo))
	assert.Equal(t, "2", todo.ID)
	assert.Equal(t, "bare", todo.Title)
}

func TestUnwrapEnvelopeBareList(t *testing.T) {
	body := []byte(`[{"id": "a"}, {"id": "b"}]`)

	var todos []entity.Todo
	require.NoError(t, UnwrapEnvelope(body, &todos))
	require.Len(t, todos, 2)
	assert.Equal(t, "a", todos[0].ID)
}

func TestUnwrapEnvelopeWrappedList(t *testing.T) {
	body := []byte(`{"data": [{"id": "a"}]}`)

	var todos []entity.Todo
	require.NoError(t, UnwrapEnvelope(body, &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, "a", todos[0].ID)
}

func TestUnwrapEnvelopeInvalid(t *testing.T) {
	var todo entity.Todo
	assert.Error(t, UnwrapEnvelope([]byte(`not json`), &todo))
}
